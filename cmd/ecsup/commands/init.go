package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ecsup/cmd/ecsup/handlers"
)

// Init returns the command for creating a configuration file.
//
// On an interactive terminal this runs a short wizard (project name, region,
// container port, task sizing); otherwise it writes the built-in defaults.
//
// Flags:
//
//	--output, -o: Path to output file (default "ecsup.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create an ecsup configuration file.

On a terminal this command asks a few questions (project name, region,
container port, task size) and derives all resource names from the project
name. In a non-interactive context it writes the default configuration
without prompting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "ecsup.yaml", "Output file path")

	return cmd
}
