// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/imamik/ecsup/internal/config"
	"github.com/imamik/ecsup/internal/platform/aws"
	"github.com/imamik/ecsup/internal/provisioning"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newInfraClient creates the cloud client for a configuration.
	newInfraClient = func(ctx context.Context, cfg *config.Config) (aws.InfrastructureManager, error) {
		return aws.NewRealClient(ctx, aws.ClientOptions{
			Region:               cfg.Region,
			AccessKey:            cfg.Credentials.AccessKey,
			SecretKey:            cfg.Credentials.SecretKey,
			RoleWaitMaxAttempts:  cfg.Timeouts.RoleWaitMaxAttempts,
			RoleWaitInitialDelay: cfg.Timeouts.RoleWaitDelay(),
		})
	}

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// runPhases executes the provisioning pipeline (for testing injection).
	runPhases = provisioning.RunPhases

	// stdout is the destination for user-facing output.
	stdout io.Writer = os.Stdout
)

// Provision reconciles the complete deployment infrastructure.
//
// The workflow:
//  1. Loads the configuration (auto-detects ecsup.yaml, falls back to the
//     built-in defaults so a config file is optional)
//  2. Initializes the AWS client from the ambient credential chain or the
//     static keys in the config
//  3. Runs the ordered provisioning phases, aborting on the first failure
//  4. Prints the four values a CI pipeline needs as secrets
func Provision(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Provisioning infrastructure in %s for repository %s", cfg.Region, cfg.Repository)

	infra, err := newInfraClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	pctx := provisioning.NewContext(ctx, cfg, infra)
	if err := runPhases(pctx, provisioning.DefaultPhases()); err != nil {
		return err
	}

	printProvisionSuccess(cfg, pctx.State)
	return nil
}

// loadConfig loads and validates the configuration. If no path is given it
// looks for ecsup.yaml in the current directory and its parents; when no
// file exists the built-in defaults are used.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			log.Printf("No config file found, using defaults (run 'ecsup init' to create one)")
			return config.Default(), nil
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, nil
}

// printProvisionSuccess outputs the completion message and the values a CI
// pipeline needs to push images and trigger deployments.
func printProvisionSuccess(cfg *config.Config, state *provisioning.State) {
	fmt.Fprintf(stdout, "\nProvisioning complete!\n\n")
	fmt.Fprintf(stdout, "Store these values as CI secrets:\n")
	fmt.Fprintf(stdout, "  ECR_REGISTRY=%s\n", state.RegistryHost)
	fmt.Fprintf(stdout, "  ECR_REPOSITORY=%s\n", cfg.Repository)
	fmt.Fprintf(stdout, "  ECS_CLUSTER=%s\n", cfg.Cluster)
	fmt.Fprintf(stdout, "  ECS_SERVICE=%s\n", cfg.Service.Name)
	fmt.Fprintf(stdout, "\nPush an image to %s and rerun 'ecsup provision' to roll it out.\n", state.RegistryURI)
}
