// Package aws provides a wrapper around the AWS control-plane APIs used to
// provision the deployment infrastructure of a containerized web application.
package aws

import (
	"context"

	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// Network describes the discovered default VPC and its subnets.
// It is never created by this tool; absence is a hard failure.
type Network struct {
	VPCID     string
	SubnetIDs []string
}

// TaskDefinitionSpec carries everything needed to register a task definition
// revision. Registration is deliberately not idempotent: the provider's
// supported way to publish a new revision is to register again.
type TaskDefinitionSpec struct {
	Family           string
	CPU              int32
	Memory           int32
	Image            string
	ContainerPort    int32
	ExecutionRoleARN string
	LogGroup         string
	Region           string
}

// ServiceSpec carries everything needed to create or roll out the service.
type ServiceSpec struct {
	Cluster           string
	Name              string
	TaskDefinitionARN string
	DesiredCount      int32
	SubnetIDs         []string
	SecurityGroupID   string
}

// RegistryManager manages the container image registry.
type RegistryManager interface {
	// EnsureRepository ensures the image repository exists.
	// The boolean reports whether the creation branch ran.
	EnsureRepository(ctx context.Context, name string) (*ecrtypes.Repository, bool, error)
}

// IdentityManager manages IAM roles and users.
type IdentityManager interface {
	// EnsureExecutionRole ensures the task execution role exists with the
	// managed execution policy attached.
	EnsureExecutionRole(ctx context.Context, name string) (*iamtypes.Role, bool, error)

	// WaitForRoleVisible polls until a freshly created role is visible to
	// dependent APIs, bounded by the client's readiness budget.
	WaitForRoleVisible(ctx context.Context, name string) error

	// EnsurePipelineUser ensures the CI credentials user exists. Policy
	// attachments happen only on the creation branch.
	EnsurePipelineUser(ctx context.Context, name string) (*iamtypes.User, bool, error)
}

// ClusterManager manages the compute cluster, task definitions and services.
type ClusterManager interface {
	// EnsureCluster ensures the cluster exists and is ACTIVE. A cluster in
	// any other status counts as absent.
	EnsureCluster(ctx context.Context, name string) (*ecstypes.Cluster, bool, error)

	// RegisterTaskDefinition registers a new task definition revision.
	RegisterTaskDefinition(ctx context.Context, spec TaskDefinitionSpec) (*ecstypes.TaskDefinition, error)

	// EnsureService ensures the service exists and is ACTIVE. An existing
	// ACTIVE service is rolled out to the given task definition revision.
	EnsureService(ctx context.Context, spec ServiceSpec) (*ecstypes.Service, bool, error)
}

// NetworkManager discovers networking and manages security groups.
type NetworkManager interface {
	// DiscoverDefaultNetwork resolves the account's default VPC and its
	// subnets. There is no creation branch.
	DiscoverDefaultNetwork(ctx context.Context) (*Network, error)

	// EnsureSecurityGroup ensures the security group exists in the VPC,
	// returning its id. On creation one ingress rule is authorized for the
	// given port from any source.
	EnsureSecurityGroup(ctx context.Context, name, vpcID string, port int32) (string, bool, error)
}

// LogManager manages log groups.
type LogManager interface {
	// EnsureLogGroup ensures the log group exists. The lookup API matches by
	// prefix, so presence requires an exact name match in the listing.
	EnsureLogGroup(ctx context.Context, name string) (bool, error)
}

// InfrastructureManager aggregates everything the provisioning pipeline
// needs from the cloud provider.
type InfrastructureManager interface {
	RegistryManager
	IdentityManager
	ClusterManager
	NetworkManager
	LogManager
}
