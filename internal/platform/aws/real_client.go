package aws

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// ClientOptions configures the real AWS client.
type ClientOptions struct {
	Region string

	// Optional static credentials. When empty the default credential chain
	// (environment, shared config, instance metadata) is used.
	AccessKey string
	SecretKey string

	// Readiness budget for identity propagation after first-time role
	// creation. Zero values fall back to the defaults below.
	RoleWaitMaxAttempts  int
	RoleWaitInitialDelay time.Duration
}

const (
	defaultRoleWaitMaxAttempts  = 6
	defaultRoleWaitInitialDelay = 2 * time.Second
)

// RealClient implements InfrastructureManager against the AWS APIs.
type RealClient struct {
	ecr  ECRAPI
	ecs  ECSAPI
	iam  IAMAPI
	ec2  EC2API
	logs LogsAPI

	region               string
	roleWaitMaxAttempts  int
	roleWaitInitialDelay time.Duration
}

// NewRealClient creates a client backed by the AWS SDK service clients.
func NewRealClient(ctx context.Context, opts ClientOptions) (*RealClient, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	c := &RealClient{
		ecr:                  ecr.NewFromConfig(cfg),
		ecs:                  ecs.NewFromConfig(cfg),
		iam:                  iam.NewFromConfig(cfg),
		ec2:                  ec2.NewFromConfig(cfg),
		logs:                 cloudwatchlogs.NewFromConfig(cfg),
		region:               opts.Region,
		roleWaitMaxAttempts:  opts.RoleWaitMaxAttempts,
		roleWaitInitialDelay: opts.RoleWaitInitialDelay,
	}
	c.applyWaitDefaults()
	return c, nil
}

func (c *RealClient) applyWaitDefaults() {
	if c.roleWaitMaxAttempts <= 0 {
		c.roleWaitMaxAttempts = defaultRoleWaitMaxAttempts
	}
	if c.roleWaitInitialDelay <= 0 {
		c.roleWaitInitialDelay = defaultRoleWaitInitialDelay
	}
}

// Region returns the region the client operates in.
func (c *RealClient) Region() string {
	return c.region
}

var _ InfrastructureManager = (*RealClient)(nil)
