// Package wizard provides the interactive configuration flow for init.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/ecsup/internal/config"
)

// Result holds the user's choices from the init wizard.
type Result struct {
	Name          string
	Region        string
	ContainerPort string
	DesiredCount  int32
	CPU           int32
	Memory        int32
}

// Run runs the interactive configuration wizard.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{
		// Defaults
		Region:        "us-east-1",
		ContainerPort: "3001",
		DesiredCount:  1,
		CPU:           256,
		Memory:        512,
	}

	form := huh.NewForm(
		// Project identity
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used to derive repository, cluster and service names").
				Placeholder("my-webapp").
				Value(&result.Name).
				Validate(validateProjectName),
		),

		// Region selection
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("AWS region to provision into").
				Options(
					huh.NewOption("US East (N. Virginia) us-east-1", "us-east-1"),
					huh.NewOption("US West (Oregon) us-west-2", "us-west-2"),
					huh.NewOption("Europe (Ireland) eu-west-1", "eu-west-1"),
					huh.NewOption("Europe (Frankfurt) eu-central-1", "eu-central-1"),
					huh.NewOption("Asia Pacific (Singapore) ap-southeast-1", "ap-southeast-1"),
				).
				Value(&result.Region),
		),

		// Container sizing
		huh.NewGroup(
			huh.NewInput().
				Title("Container port").
				Description("Port your application listens on").
				Placeholder("3001").
				Value(&result.ContainerPort).
				Validate(validatePort),

			huh.NewSelect[int32]().
				Title("Task size").
				Description("Fargate CPU units and memory per task").
				Options(
					huh.NewOption("0.25 vCPU, 512 MB", int32(256)),
					huh.NewOption("0.5 vCPU, 1 GB", int32(512)),
					huh.NewOption("1 vCPU, 2 GB", int32(1024)),
				).
				Value(&result.CPU),

			huh.NewSelect[int32]().
				Title("Desired task count").
				Description("Number of tasks the service keeps running").
				Options(
					huh.NewOption("1 task", int32(1)),
					huh.NewOption("2 tasks", int32(2)),
					huh.NewOption("3 tasks", int32(3)),
				).
				Value(&result.DesiredCount),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a provisioning configuration.
// Resource names are derived from the project name.
func (r *Result) ToConfig() *config.Config {
	port, _ := strconv.ParseInt(r.ContainerPort, 10, 32)

	cfg := &config.Config{
		Region:     r.Region,
		Repository: r.Name,
		Cluster:    r.Name + "-cluster",
		Service: config.ServiceConfig{
			Name:         r.Name + "-service",
			DesiredCount: r.DesiredCount,
		},
		Task: config.TaskConfig{
			Family:        r.Name + "-task",
			CPU:           r.CPU,
			Memory:        memoryFor(r.CPU),
			ContainerPort: int32(port),
		},
		ExecutionRole: r.Name + "-execution-role",
		PipelineUser:  r.Name + "-pipeline",
	}
	cfg.ApplyDefaults()
	return cfg
}

// memoryFor maps the selected CPU units to a compatible Fargate memory size.
func memoryFor(cpu int32) int32 {
	switch cpu {
	case 512:
		return 1024
	case 1024:
		return 2048
	default:
		return 512
	}
}

// validateProjectName validates the project name.
func validateProjectName(s string) error {
	if s == "" {
		return fmt.Errorf("project name is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("project name must be 63 characters or less")
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("project name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return fmt.Errorf("project name cannot start or end with a hyphen")
	}
	return nil
}

// validatePort validates the container port input.
func validatePort(s string) error {
	if s == "" {
		return fmt.Errorf("container port is required")
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("container port must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("container port must be between 1 and 65535")
	}
	return nil
}
