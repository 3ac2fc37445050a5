package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// Fake SDK clients with overridable behavior per method. Only the methods a
// test sets are expected to be called.

type fakeECR struct {
	describeRepositories func(*ecr.DescribeRepositoriesInput) (*ecr.DescribeRepositoriesOutput, error)
	createRepository     func(*ecr.CreateRepositoryInput) (*ecr.CreateRepositoryOutput, error)

	createCalls int
}

func (f *fakeECR) DescribeRepositories(_ context.Context, in *ecr.DescribeRepositoriesInput, _ ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error) {
	return f.describeRepositories(in)
}

func (f *fakeECR) CreateRepository(_ context.Context, in *ecr.CreateRepositoryInput, _ ...func(*ecr.Options)) (*ecr.CreateRepositoryOutput, error) {
	f.createCalls++
	return f.createRepository(in)
}

type fakeECS struct {
	describeClusters       func(*ecs.DescribeClustersInput) (*ecs.DescribeClustersOutput, error)
	createCluster          func(*ecs.CreateClusterInput) (*ecs.CreateClusterOutput, error)
	registerTaskDefinition func(*ecs.RegisterTaskDefinitionInput) (*ecs.RegisterTaskDefinitionOutput, error)
	describeServices       func(*ecs.DescribeServicesInput) (*ecs.DescribeServicesOutput, error)
	createService          func(*ecs.CreateServiceInput) (*ecs.CreateServiceOutput, error)
	updateService          func(*ecs.UpdateServiceInput) (*ecs.UpdateServiceOutput, error)

	createClusterCalls int
	createServiceCalls int
	updateServiceCalls int
}

func (f *fakeECS) DescribeClusters(_ context.Context, in *ecs.DescribeClustersInput, _ ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error) {
	return f.describeClusters(in)
}

func (f *fakeECS) CreateCluster(_ context.Context, in *ecs.CreateClusterInput, _ ...func(*ecs.Options)) (*ecs.CreateClusterOutput, error) {
	f.createClusterCalls++
	return f.createCluster(in)
}

func (f *fakeECS) RegisterTaskDefinition(_ context.Context, in *ecs.RegisterTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error) {
	return f.registerTaskDefinition(in)
}

func (f *fakeECS) DescribeServices(_ context.Context, in *ecs.DescribeServicesInput, _ ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	return f.describeServices(in)
}

func (f *fakeECS) CreateService(_ context.Context, in *ecs.CreateServiceInput, _ ...func(*ecs.Options)) (*ecs.CreateServiceOutput, error) {
	f.createServiceCalls++
	return f.createService(in)
}

func (f *fakeECS) UpdateService(_ context.Context, in *ecs.UpdateServiceInput, _ ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	f.updateServiceCalls++
	return f.updateService(in)
}

type fakeIAM struct {
	getRole          func(*iam.GetRoleInput) (*iam.GetRoleOutput, error)
	createRole       func(*iam.CreateRoleInput) (*iam.CreateRoleOutput, error)
	attachRolePolicy func(*iam.AttachRolePolicyInput) (*iam.AttachRolePolicyOutput, error)
	getUser          func(*iam.GetUserInput) (*iam.GetUserOutput, error)
	createUser       func(*iam.CreateUserInput) (*iam.CreateUserOutput, error)
	attachUserPolicy func(*iam.AttachUserPolicyInput) (*iam.AttachUserPolicyOutput, error)

	createRoleCalls       int
	createUserCalls       int
	attachedRolePolicies  []string
	attachedUserPolicies  []string
	getRoleCalls          int
}

func (f *fakeIAM) GetRole(_ context.Context, in *iam.GetRoleInput, _ ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	f.getRoleCalls++
	return f.getRole(in)
}

func (f *fakeIAM) CreateRole(_ context.Context, in *iam.CreateRoleInput, _ ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	f.createRoleCalls++
	return f.createRole(in)
}

func (f *fakeIAM) AttachRolePolicy(_ context.Context, in *iam.AttachRolePolicyInput, _ ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	f.attachedRolePolicies = append(f.attachedRolePolicies, *in.PolicyArn)
	if f.attachRolePolicy != nil {
		return f.attachRolePolicy(in)
	}
	return &iam.AttachRolePolicyOutput{}, nil
}

func (f *fakeIAM) GetUser(_ context.Context, in *iam.GetUserInput, _ ...func(*iam.Options)) (*iam.GetUserOutput, error) {
	return f.getUser(in)
}

func (f *fakeIAM) CreateUser(_ context.Context, in *iam.CreateUserInput, _ ...func(*iam.Options)) (*iam.CreateUserOutput, error) {
	f.createUserCalls++
	return f.createUser(in)
}

func (f *fakeIAM) AttachUserPolicy(_ context.Context, in *iam.AttachUserPolicyInput, _ ...func(*iam.Options)) (*iam.AttachUserPolicyOutput, error) {
	f.attachedUserPolicies = append(f.attachedUserPolicies, *in.PolicyArn)
	if f.attachUserPolicy != nil {
		return f.attachUserPolicy(in)
	}
	return &iam.AttachUserPolicyOutput{}, nil
}

type fakeEC2 struct {
	describeVpcs           func(*ec2.DescribeVpcsInput) (*ec2.DescribeVpcsOutput, error)
	describeSubnets        func(*ec2.DescribeSubnetsInput) (*ec2.DescribeSubnetsOutput, error)
	describeSecurityGroups func(*ec2.DescribeSecurityGroupsInput) (*ec2.DescribeSecurityGroupsOutput, error)
	createSecurityGroup    func(*ec2.CreateSecurityGroupInput) (*ec2.CreateSecurityGroupOutput, error)
	authorizeIngress       func(*ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error)

	createGroupCalls int
	ingressCalls     int
}

func (f *fakeEC2) DescribeVpcs(_ context.Context, in *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	return f.describeVpcs(in)
}

func (f *fakeEC2) DescribeSubnets(_ context.Context, in *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	return f.describeSubnets(in)
}

func (f *fakeEC2) DescribeSecurityGroups(_ context.Context, in *ec2.DescribeSecurityGroupsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	return f.describeSecurityGroups(in)
}

func (f *fakeEC2) CreateSecurityGroup(_ context.Context, in *ec2.CreateSecurityGroupInput, _ ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error) {
	f.createGroupCalls++
	return f.createSecurityGroup(in)
}

func (f *fakeEC2) AuthorizeSecurityGroupIngress(_ context.Context, in *ec2.AuthorizeSecurityGroupIngressInput, _ ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	f.ingressCalls++
	if f.authorizeIngress != nil {
		return f.authorizeIngress(in)
	}
	return &ec2.AuthorizeSecurityGroupIngressOutput{}, nil
}

type fakeLogs struct {
	describeLogGroups func(*cloudwatchlogs.DescribeLogGroupsInput) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
	createLogGroup    func(*cloudwatchlogs.CreateLogGroupInput) (*cloudwatchlogs.CreateLogGroupOutput, error)

	createCalls int
}

func (f *fakeLogs) DescribeLogGroups(_ context.Context, in *cloudwatchlogs.DescribeLogGroupsInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
	return f.describeLogGroups(in)
}

func (f *fakeLogs) CreateLogGroup(_ context.Context, in *cloudwatchlogs.CreateLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error) {
	f.createCalls++
	return f.createLogGroup(in)
}

// newTestClient wires a RealClient to the given fakes with a fast readiness
// budget.
func newTestClient(ecrAPI ECRAPI, ecsAPI ECSAPI, iamAPI IAMAPI, ec2API EC2API, logsAPI LogsAPI) *RealClient {
	c := &RealClient{
		ecr:                  ecrAPI,
		ecs:                  ecsAPI,
		iam:                  iamAPI,
		ec2:                  ec2API,
		logs:                 logsAPI,
		region:               "us-east-1",
		roleWaitMaxAttempts:  3,
		roleWaitInitialDelay: time.Millisecond,
	}
	return c
}
