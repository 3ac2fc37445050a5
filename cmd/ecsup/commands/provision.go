package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ecsup/cmd/ecsup/handlers"
)

// Provision returns the command for creating or updating the deployment
// infrastructure.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect ecsup.yaml)
//
// Credentials come from the standard AWS environment (environment variables,
// shared config, instance profile) unless static keys are set in the config
// file.
func Provision() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create or update the deployment infrastructure",
		Long: `Create or update the AWS infrastructure for your application.

This command reconciles, in order: the ECR repository, the task execution
role, the ECS cluster, default-VPC networking, a security group, the
CloudWatch log group, a new task definition revision, the ECS service, and
the CI pipeline user. Resources that already exist are left in place; an
existing service is rolled out to the new task definition revision.

If no config file is specified, it looks for ecsup.yaml in the current
directory and its parents, falling back to built-in defaults. Use
'ecsup init' to create a configuration file.

Examples:
  # Provision using ecsup.yaml (or defaults)
  ecsup provision

  # Provision using a specific config file
  ecsup provision -c production.yaml

  # Re-run after a push to roll the service to a new image
  ecsup provision`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ecsup.yaml)")

	return cmd
}
