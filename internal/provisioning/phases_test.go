package provisioning

import (
	"context"
	"fmt"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ecsup/internal/platform/aws"
)

const testRegistryURI = "123456789012.dkr.ecr.us-east-1.amazonaws.com/my-webapp"

// happyMock tracks which creation branches ran so idempotence can be
// asserted across simulated runs.
type happyMock struct {
	*aws.MockClient

	createdRepo    bool
	createdRole    bool
	createdCluster bool
	createdGroup   bool
	createdLogs    bool
	createdUser    bool
	createdService bool

	roleWaits    int
	registered   []aws.TaskDefinitionSpec
	serviceSpecs []aws.ServiceSpec
}

// newHappyMock returns a mock where nothing exists yet: every Ensure call
// takes the creation branch on first use and the lookup branch afterwards.
func newHappyMock() *happyMock {
	m := &happyMock{MockClient: &aws.MockClient{}}
	revision := int32(0)

	m.EnsureRepositoryFunc = func(_ context.Context, name string) (*ecrtypes.Repository, bool, error) {
		created := !m.createdRepo
		m.createdRepo = true
		return &ecrtypes.Repository{
			RepositoryName: awssdk.String(name),
			RepositoryUri:  awssdk.String(testRegistryURI),
		}, created, nil
	}
	m.EnsureExecutionRoleFunc = func(_ context.Context, name string) (*iamtypes.Role, bool, error) {
		created := !m.createdRole
		m.createdRole = true
		return &iamtypes.Role{
			RoleName: awssdk.String(name),
			Arn:      awssdk.String("arn:aws:iam::123456789012:role/" + name),
		}, created, nil
	}
	m.WaitForRoleVisibleFunc = func(_ context.Context, _ string) error {
		m.roleWaits++
		return nil
	}
	m.EnsureClusterFunc = func(_ context.Context, name string) (*ecstypes.Cluster, bool, error) {
		created := !m.createdCluster
		m.createdCluster = true
		return &ecstypes.Cluster{
			ClusterName: awssdk.String(name),
			ClusterArn:  awssdk.String("arn:aws:ecs:us-east-1:123456789012:cluster/" + name),
		}, created, nil
	}
	m.DiscoverDefaultNetworkFunc = func(_ context.Context) (*aws.Network, error) {
		return &aws.Network{VPCID: "vpc-123", SubnetIDs: []string{"subnet-1", "subnet-2"}}, nil
	}
	m.EnsureSecurityGroupFunc = func(_ context.Context, _, _ string, _ int32) (string, bool, error) {
		created := !m.createdGroup
		m.createdGroup = true
		return "sg-123", created, nil
	}
	m.EnsureLogGroupFunc = func(_ context.Context, _ string) (bool, error) {
		created := !m.createdLogs
		m.createdLogs = true
		return created, nil
	}
	m.RegisterTaskDefinitionFunc = func(_ context.Context, spec aws.TaskDefinitionSpec) (*ecstypes.TaskDefinition, error) {
		m.registered = append(m.registered, spec)
		revision++
		return &ecstypes.TaskDefinition{
			TaskDefinitionArn: awssdk.String(fmt.Sprintf("arn:aws:ecs:us-east-1:123456789012:task-definition/%s:%d", spec.Family, revision)),
			Revision:          revision,
		}, nil
	}
	m.EnsureServiceFunc = func(_ context.Context, spec aws.ServiceSpec) (*ecstypes.Service, bool, error) {
		m.serviceSpecs = append(m.serviceSpecs, spec)
		created := !m.createdService
		m.createdService = true
		return &ecstypes.Service{
			ServiceName: awssdk.String(spec.Name),
			ServiceArn:  awssdk.String("arn:aws:ecs:us-east-1:123456789012:service/" + spec.Name),
		}, created, nil
	}
	m.EnsurePipelineUserFunc = func(_ context.Context, name string) (*iamtypes.User, bool, error) {
		created := !m.createdUser
		m.createdUser = true
		return &iamtypes.User{
			UserName: awssdk.String(name),
			Arn:      awssdk.String("arn:aws:iam::123456789012:user/" + name),
		}, created, nil
	}
	return m
}

func TestDefaultPhases_EndToEnd(t *testing.T) {
	mock := newHappyMock()
	ctx, _ := newTestContext(mock)

	require.NoError(t, RunPhases(ctx, DefaultPhases()))

	state := ctx.State
	assert.Equal(t, testRegistryURI, state.RegistryURI)
	assert.Equal(t, "123456789012.dkr.ecr.us-east-1.amazonaws.com", state.RegistryHost)
	assert.Equal(t, "arn:aws:iam::123456789012:role/webapp-cicd-execution-role", state.ExecutionRoleARN)
	assert.Equal(t, "vpc-123", state.VPCID)
	assert.Equal(t, []string{"subnet-1", "subnet-2"}, state.SubnetIDs)
	assert.Equal(t, "sg-123", state.SecurityGroupID)
	assert.Equal(t, "/ecs/webapp-cicd-task", state.LogGroupName)
	assert.NotEmpty(t, state.TaskDefinitionARN)
	assert.NotEmpty(t, state.ServiceARN)
	assert.True(t, state.ServiceCreated)

	// The role was created this run, so visibility was polled exactly once.
	assert.Equal(t, 1, mock.roleWaits)

	// Task definition wiring: role ARN, log group and defaulted image flow
	// from earlier phases into the registered spec.
	require.Len(t, mock.registered, 1)
	spec := mock.registered[0]
	assert.Equal(t, state.ExecutionRoleARN, spec.ExecutionRoleARN)
	assert.Equal(t, state.LogGroupName, spec.LogGroup)
	assert.Equal(t, testRegistryURI+":latest", spec.Image)
	assert.EqualValues(t, 256, spec.CPU)
	assert.EqualValues(t, 512, spec.Memory)
	assert.EqualValues(t, 3001, spec.ContainerPort)

	// Service wiring: network and task definition results flow in.
	require.Len(t, mock.serviceSpecs, 1)
	svc := mock.serviceSpecs[0]
	assert.Equal(t, state.TaskDefinitionARN, svc.TaskDefinitionARN)
	assert.Equal(t, state.SubnetIDs, svc.SubnetIDs)
	assert.Equal(t, state.SecurityGroupID, svc.SecurityGroupID)
	assert.EqualValues(t, 1, svc.DesiredCount)
}

func TestDefaultPhases_SecondRunIsIdempotent(t *testing.T) {
	mock := newHappyMock()

	first, _ := newTestContext(mock)
	require.NoError(t, RunPhases(first, DefaultPhases()))

	second, _ := newTestContext(mock)
	require.NoError(t, RunPhases(second, DefaultPhases()))

	// No role wait on the second run: the role already existed.
	assert.Equal(t, 1, mock.roleWaits)
	assert.False(t, second.State.RoleCreated)
	assert.False(t, second.State.ServiceCreated)

	// Task definition registration is the one deliberate exception to
	// check-then-create: each run publishes a fresh revision.
	assert.Len(t, mock.registered, 2)
	assert.NotEqual(t, first.State.TaskDefinitionARN, second.State.TaskDefinitionARN)

	// The second run rolls the existing service to the new revision.
	require.Len(t, mock.serviceSpecs, 2)
	assert.Equal(t, second.State.TaskDefinitionARN, mock.serviceSpecs[1].TaskDefinitionARN)
}

func TestExecutionRolePhase_NoWaitWhenRoleExists(t *testing.T) {
	mock := newHappyMock()
	mock.createdRole = true // pretend a previous run created it

	ctx, _ := newTestContext(mock)
	require.NoError(t, (&ExecutionRolePhase{}).Provision(ctx))

	assert.Equal(t, 0, mock.roleWaits)
	assert.False(t, ctx.State.RoleCreated)
}

func TestExecutionRolePhase_WaitFailureAborts(t *testing.T) {
	mock := newHappyMock()
	mock.WaitForRoleVisibleFunc = func(_ context.Context, _ string) error {
		return fmt.Errorf("still not visible")
	}

	ctx, _ := newTestContext(mock)
	err := (&ExecutionRolePhase{}).Provision(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not become visible")
}

func TestNetworkPhase_DiscoveryFailureAborts(t *testing.T) {
	mock := newHappyMock()
	mock.DiscoverDefaultNetworkFunc = func(_ context.Context) (*aws.Network, error) {
		return nil, fmt.Errorf("no default VPC found in this region")
	}

	ctx, _ := newTestContext(mock)
	err := RunPhases(ctx, DefaultPhases())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "network phase failed")
	// The service phase never ran.
	assert.Empty(t, mock.serviceSpecs)
}

func TestTaskDefinitionPhase_RequiresRoleAndLogGroup(t *testing.T) {
	ctx, _ := newTestContext(newHappyMock())

	err := (&TaskDefinitionPhase{}).Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution role")

	ctx.State.ExecutionRoleARN = "arn:aws:iam::123456789012:role/r"
	err = (&TaskDefinitionPhase{}).Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log group")
}

func TestServicePhase_RequiresNetworkAndTaskDefinition(t *testing.T) {
	ctx, _ := newTestContext(newHappyMock())

	err := (&ServicePhase{}).Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task definition")

	ctx.State.TaskDefinitionARN = "arn:aws:ecs:us-east-1:123456789012:task-definition/t:1"
	err = (&ServicePhase{}).Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network")
}

func TestTaskDefinitionPhase_CustomImageOverridesDefault(t *testing.T) {
	mock := newHappyMock()
	ctx, _ := newTestContext(mock)
	ctx.Config.Task.Image = "ghcr.io/acme/webapp:v3"

	require.NoError(t, RunPhases(ctx, DefaultPhases()))

	require.Len(t, mock.registered, 1)
	assert.Equal(t, "ghcr.io/acme/webapp:v3", mock.registered[0].Image)
}

func TestSecurityGroupPhase_UsesDiscoveredVPCAndPort(t *testing.T) {
	mock := newHappyMock()
	var gotName, gotVPC string
	var gotPort int32
	base := mock.EnsureSecurityGroupFunc
	mock.EnsureSecurityGroupFunc = func(ctx context.Context, name, vpcID string, port int32) (string, bool, error) {
		gotName, gotVPC, gotPort = name, vpcID, port
		return base(ctx, name, vpcID, port)
	}

	ctx, _ := newTestContext(mock)
	require.NoError(t, RunPhases(ctx, DefaultPhases()))

	assert.Equal(t, "webapp-cicd-cluster-sg", gotName)
	assert.Equal(t, "vpc-123", gotVPC)
	assert.EqualValues(t, 3001, gotPort)
}
