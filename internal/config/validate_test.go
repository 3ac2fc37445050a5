package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing region",
			mutate:  func(c *Config) { c.Region = "" },
			wantErr: "region is required",
		},
		{
			name:    "empty repository",
			mutate:  func(c *Config) { c.Repository = "" },
			wantErr: "repository",
		},
		{
			name:    "cluster with spaces",
			mutate:  func(c *Config) { c.Cluster = "my cluster" },
			wantErr: "invalid character",
		},
		{
			name:    "leading hyphen",
			mutate:  func(c *Config) { c.Service.Name = "-svc" },
			wantErr: "cannot start or end with a hyphen",
		},
		{
			name:    "zero desired count survives defaulting but negative fails",
			mutate:  func(c *Config) { c.Service.DesiredCount = -1 },
			wantErr: "desired count",
		},
		{
			name:    "negative cpu",
			mutate:  func(c *Config) { c.Task.CPU = -256 },
			wantErr: "cpu must be positive",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Task.ContainerPort = 70000 },
			wantErr: "container port",
		},
		{
			name:    "access key without secret",
			mutate:  func(c *Config) { c.Credentials.AccessKey = "AKIA123" },
			wantErr: "both access_key and secret_key",
		},
		{
			name: "both credentials set is valid",
			mutate: func(c *Config) {
				c.Credentials.AccessKey = "AKIA123"
				c.Credentials.SecretKey = "secret"
			},
		},
		{
			name:   "slashes and dots allowed in names",
			mutate: func(c *Config) { c.Repository = "team/my-webapp.v2" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateResourceName_TooLong(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	err := validateResourceName(string(long))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "255 characters")
}
