package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/ecsup/internal/config"
	"github.com/imamik/ecsup/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isInteractive reports whether stdout is a terminal.
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

// Init writes a configuration file. On a terminal it runs the interactive
// wizard; otherwise it writes the built-in defaults without prompting.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Fprintf(stdout, "Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	var cfg *config.Config
	if isInteractive() {
		printWelcome()

		result, err := runWizard(ctx)
		if err != nil {
			return err
		}
		cfg = result.ToConfig()
	} else {
		cfg = config.Default()
	}

	if err := saveConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "ecsup - AWS deployment infrastructure for web apps")
	fmt.Fprintln(stdout, "==================================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard creates a provisioning configuration with sensible defaults.")
	fmt.Fprintln(stdout, "All resource names are derived from your project name.")
	fmt.Fprintln(stdout)
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configuration saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Target Summary")
	fmt.Fprintln(stdout, "--------------")
	fmt.Fprintf(stdout, "  Region:     %s\n", cfg.Region)
	fmt.Fprintf(stdout, "  Repository: %s\n", cfg.Repository)
	fmt.Fprintf(stdout, "  Cluster:    %s\n", cfg.Cluster)
	fmt.Fprintf(stdout, "  Service:    %s (%d task(s))\n", cfg.Service.Name, cfg.Service.DesiredCount)
	fmt.Fprintf(stdout, "  Task:       %s (%d CPU / %d MB, port %d)\n",
		cfg.Task.Family, cfg.Task.CPU, cfg.Task.Memory, cfg.Task.ContainerPort)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintln(stdout, "  1. Make sure your AWS credentials are configured:")
	fmt.Fprintln(stdout, "     aws sts get-caller-identity")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  2. Review %s if needed\n", outputPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  3. Provision the infrastructure:")
	fmt.Fprintln(stdout, "     ecsup provision")
	fmt.Fprintln(stdout)
}
