package aws

import (
	"context"

	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// MockClient is a mock implementation of InfrastructureManager.
// Unset Func fields return zero values.
type MockClient struct {
	EnsureRepositoryFunc       func(ctx context.Context, name string) (*ecrtypes.Repository, bool, error)
	EnsureExecutionRoleFunc    func(ctx context.Context, name string) (*iamtypes.Role, bool, error)
	WaitForRoleVisibleFunc     func(ctx context.Context, name string) error
	EnsurePipelineUserFunc     func(ctx context.Context, name string) (*iamtypes.User, bool, error)
	EnsureClusterFunc          func(ctx context.Context, name string) (*ecstypes.Cluster, bool, error)
	RegisterTaskDefinitionFunc func(ctx context.Context, spec TaskDefinitionSpec) (*ecstypes.TaskDefinition, error)
	EnsureServiceFunc          func(ctx context.Context, spec ServiceSpec) (*ecstypes.Service, bool, error)
	DiscoverDefaultNetworkFunc func(ctx context.Context) (*Network, error)
	EnsureSecurityGroupFunc    func(ctx context.Context, name, vpcID string, port int32) (string, bool, error)
	EnsureLogGroupFunc         func(ctx context.Context, name string) (bool, error)
}

var _ InfrastructureManager = (*MockClient)(nil)

// EnsureRepository implements RegistryManager.
func (m *MockClient) EnsureRepository(ctx context.Context, name string) (*ecrtypes.Repository, bool, error) {
	if m.EnsureRepositoryFunc != nil {
		return m.EnsureRepositoryFunc(ctx, name)
	}
	return nil, false, nil
}

// EnsureExecutionRole implements IdentityManager.
func (m *MockClient) EnsureExecutionRole(ctx context.Context, name string) (*iamtypes.Role, bool, error) {
	if m.EnsureExecutionRoleFunc != nil {
		return m.EnsureExecutionRoleFunc(ctx, name)
	}
	return nil, false, nil
}

// WaitForRoleVisible implements IdentityManager.
func (m *MockClient) WaitForRoleVisible(ctx context.Context, name string) error {
	if m.WaitForRoleVisibleFunc != nil {
		return m.WaitForRoleVisibleFunc(ctx, name)
	}
	return nil
}

// EnsurePipelineUser implements IdentityManager.
func (m *MockClient) EnsurePipelineUser(ctx context.Context, name string) (*iamtypes.User, bool, error) {
	if m.EnsurePipelineUserFunc != nil {
		return m.EnsurePipelineUserFunc(ctx, name)
	}
	return nil, false, nil
}

// EnsureCluster implements ClusterManager.
func (m *MockClient) EnsureCluster(ctx context.Context, name string) (*ecstypes.Cluster, bool, error) {
	if m.EnsureClusterFunc != nil {
		return m.EnsureClusterFunc(ctx, name)
	}
	return nil, false, nil
}

// RegisterTaskDefinition implements ClusterManager.
func (m *MockClient) RegisterTaskDefinition(ctx context.Context, spec TaskDefinitionSpec) (*ecstypes.TaskDefinition, error) {
	if m.RegisterTaskDefinitionFunc != nil {
		return m.RegisterTaskDefinitionFunc(ctx, spec)
	}
	return nil, nil
}

// EnsureService implements ClusterManager.
func (m *MockClient) EnsureService(ctx context.Context, spec ServiceSpec) (*ecstypes.Service, bool, error) {
	if m.EnsureServiceFunc != nil {
		return m.EnsureServiceFunc(ctx, spec)
	}
	return nil, false, nil
}

// DiscoverDefaultNetwork implements NetworkManager.
func (m *MockClient) DiscoverDefaultNetwork(ctx context.Context) (*Network, error) {
	if m.DiscoverDefaultNetworkFunc != nil {
		return m.DiscoverDefaultNetworkFunc(ctx)
	}
	return nil, nil
}

// EnsureSecurityGroup implements NetworkManager.
func (m *MockClient) EnsureSecurityGroup(ctx context.Context, name, vpcID string, port int32) (string, bool, error) {
	if m.EnsureSecurityGroupFunc != nil {
		return m.EnsureSecurityGroupFunc(ctx, name, vpcID, port)
	}
	return "", false, nil
}

// EnsureLogGroup implements LogManager.
func (m *MockClient) EnsureLogGroup(ctx context.Context, name string) (bool, error) {
	if m.EnsureLogGroupFunc != nil {
		return m.EnsureLogGroupFunc(ctx, name)
	}
	return false, nil
}
