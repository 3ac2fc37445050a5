package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the provider would reject.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}

	names := map[string]string{
		"repository":     c.Repository,
		"cluster":        c.Cluster,
		"service name":   c.Service.Name,
		"task family":    c.Task.Family,
		"execution role": c.ExecutionRole,
		"pipeline user":  c.PipelineUser,
	}
	for field, name := range names {
		if err := validateResourceName(name); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	if c.Service.DesiredCount < 1 {
		return fmt.Errorf("service desired count must be at least 1, got %d", c.Service.DesiredCount)
	}
	if c.Task.CPU <= 0 {
		return fmt.Errorf("task cpu must be positive, got %d", c.Task.CPU)
	}
	if c.Task.Memory <= 0 {
		return fmt.Errorf("task memory must be positive, got %d", c.Task.Memory)
	}
	if c.Task.ContainerPort < 1 || c.Task.ContainerPort > 65535 {
		return fmt.Errorf("container port must be in 1-65535, got %d", c.Task.ContainerPort)
	}

	if (c.Credentials.AccessKey == "") != (c.Credentials.SecretKey == "") {
		return fmt.Errorf("credentials require both access_key and secret_key")
	}

	return nil
}

func validateResourceName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("name must be 255 characters or less")
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			c == '-' || c == '_' || c == '/' || c == '.') {
			return fmt.Errorf("name %q contains invalid character %q", name, c)
		}
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return fmt.Errorf("name %q cannot start or end with a hyphen", name)
	}
	return nil
}
