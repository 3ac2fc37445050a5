// Package config defines the provisioning target configuration.
//
// Every resource name, the region and the container sizing used to be fixed
// constants; they live here as an explicit structure so multiple
// environments can be provisioned without code changes. All fields default
// to the canonical webapp-cicd values, so running without a config file
// reproduces the original fixed target.
package config

import "fmt"

// Config describes one provisioning target.
type Config struct {
	Region      string      `yaml:"region"`
	Credentials Credentials `yaml:"credentials,omitempty"`

	Repository    string        `yaml:"repository"`
	Cluster       string        `yaml:"cluster"`
	Service       ServiceConfig `yaml:"service"`
	Task          TaskConfig    `yaml:"task"`
	ExecutionRole string        `yaml:"execution_role"`
	PipelineUser  string        `yaml:"pipeline_user"`

	Timeouts Timeouts `yaml:"timeouts,omitempty"`
}

// Credentials are optional static API credentials. When empty the ambient
// provider credential chain is used.
type Credentials struct {
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
}

// ServiceConfig describes the long-running service.
type ServiceConfig struct {
	Name         string `yaml:"name"`
	DesiredCount int32  `yaml:"desired_count"`
}

// TaskConfig describes the task definition and its single container.
type TaskConfig struct {
	Family        string `yaml:"family"`
	CPU           int32  `yaml:"cpu"`
	Memory        int32  `yaml:"memory"`
	ContainerPort int32  `yaml:"container_port"`

	// Image is the container image reference embedded in the task
	// definition. When empty it resolves to <repository URI>:latest once
	// the registry is reconciled.
	Image string `yaml:"image,omitempty"`
}

// Default returns the canonical webapp-cicd provisioning target.
func Default() *Config {
	return &Config{
		Region:     "us-east-1",
		Repository: "my-webapp",
		Cluster:    "webapp-cicd-cluster",
		Service: ServiceConfig{
			Name:         "webapp-cicd-service",
			DesiredCount: 1,
		},
		Task: TaskConfig{
			Family:        "webapp-cicd-task",
			CPU:           256,
			Memory:        512,
			ContainerPort: 3001,
		},
		ExecutionRole: "webapp-cicd-execution-role",
		PipelineUser:  "webapp-cicd-pipeline",
		Timeouts:      DefaultTimeouts(),
	}
}

// ApplyDefaults fills unset fields from the canonical target.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Region == "" {
		c.Region = def.Region
	}
	if c.Repository == "" {
		c.Repository = def.Repository
	}
	if c.Cluster == "" {
		c.Cluster = def.Cluster
	}
	if c.Service.Name == "" {
		c.Service.Name = def.Service.Name
	}
	if c.Service.DesiredCount == 0 {
		c.Service.DesiredCount = def.Service.DesiredCount
	}
	if c.Task.Family == "" {
		c.Task.Family = def.Task.Family
	}
	if c.Task.CPU == 0 {
		c.Task.CPU = def.Task.CPU
	}
	if c.Task.Memory == 0 {
		c.Task.Memory = def.Task.Memory
	}
	if c.Task.ContainerPort == 0 {
		c.Task.ContainerPort = def.Task.ContainerPort
	}
	if c.ExecutionRole == "" {
		c.ExecutionRole = def.ExecutionRole
	}
	if c.PipelineUser == "" {
		c.PipelineUser = def.PipelineUser
	}
	c.Timeouts.applyDefaults()
}

// LogGroupName derives the log group name from the task family.
func (c *Config) LogGroupName() string {
	return "/ecs/" + c.Task.Family
}

// SecurityGroupName derives the security group name from the cluster name.
func (c *Config) SecurityGroupName() string {
	return c.Cluster + "-sg"
}

// ImageFor returns the container image reference, falling back to the
// latest tag of the given repository URI when no image is configured.
func (c *Config) ImageFor(repositoryURI string) string {
	if c.Task.Image != "" {
		return c.Task.Image
	}
	return fmt.Sprintf("%s:latest", repositoryURI)
}
