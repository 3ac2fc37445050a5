package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/imamik/ecsup/internal/util/retry"
)

// ecsTasksTrustPolicy lets the container orchestrator assume the execution
// role when launching tasks.
const ecsTasksTrustPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"Service": "ecs-tasks.amazonaws.com"},
      "Action": "sts:AssumeRole"
    }
  ]
}`

// Managed policies attached at creation time.
const (
	executionRolePolicyARN  = "arn:aws:iam::aws:policy/service-role/AmazonECSTaskExecutionRolePolicy"
	registryAccessPolicyARN = "arn:aws:iam::aws:policy/AmazonEC2ContainerRegistryFullAccess"
	clusterAccessPolicyARN  = "arn:aws:iam::aws:policy/AmazonECS_FullAccess"
)

// EnsureExecutionRole ensures the task execution role exists. On the
// creation branch the managed execution policy is attached as well.
func (c *RealClient) EnsureExecutionRole(ctx context.Context, name string) (*iamtypes.Role, bool, error) {
	return reconcileResource(ctx, "execution role "+name, ReconcileFuncs[iamtypes.Role]{
		Get: func(ctx context.Context) (*iamtypes.Role, error) {
			return c.getRole(ctx, name)
		},
		Create: func(ctx context.Context) (*iamtypes.Role, error) {
			out, err := c.iam.CreateRole(ctx, &iam.CreateRoleInput{
				RoleName:                 aws.String(name),
				AssumeRolePolicyDocument: aws.String(ecsTasksTrustPolicy),
			})
			if err != nil {
				return nil, err
			}
			_, err = c.iam.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
				RoleName:  aws.String(name),
				PolicyArn: aws.String(executionRolePolicyARN),
			})
			if err != nil {
				return nil, err
			}
			return out.Role, nil
		},
	})
}

// WaitForRoleVisible polls until the role is visible, bounded by the
// client's readiness budget. Freshly created identities lag behind the
// control plane for a consistency window.
func (c *RealClient) WaitForRoleVisible(ctx context.Context, name string) error {
	return retry.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		role, err := c.getRole(ctx, name)
		if err != nil {
			return false, err
		}
		return role != nil, nil
	},
		retry.WithMaxAttempts(c.roleWaitMaxAttempts),
		retry.WithInitialDelay(c.roleWaitInitialDelay),
	)
}

// EnsurePipelineUser ensures the CI credentials user exists. The broad
// registry and cluster access policies are attached only on the creation
// branch; they are not re-verified on later runs.
func (c *RealClient) EnsurePipelineUser(ctx context.Context, name string) (*iamtypes.User, bool, error) {
	return reconcileResource(ctx, "pipeline user "+name, ReconcileFuncs[iamtypes.User]{
		Get: func(ctx context.Context) (*iamtypes.User, error) {
			out, err := c.iam.GetUser(ctx, &iam.GetUserInput{UserName: aws.String(name)})
			if err != nil {
				if isNotFound(err) {
					return nil, nil
				}
				return nil, err
			}
			return out.User, nil
		},
		Create: func(ctx context.Context) (*iamtypes.User, error) {
			out, err := c.iam.CreateUser(ctx, &iam.CreateUserInput{UserName: aws.String(name)})
			if err != nil {
				return nil, err
			}
			for _, policyARN := range []string{registryAccessPolicyARN, clusterAccessPolicyARN} {
				_, err := c.iam.AttachUserPolicy(ctx, &iam.AttachUserPolicyInput{
					UserName:  aws.String(name),
					PolicyArn: aws.String(policyARN),
				})
				if err != nil {
					return nil, err
				}
			}
			return out.User, nil
		},
	})
}

func (c *RealClient) getRole(ctx context.Context, name string) (*iamtypes.Role, error) {
	out, err := c.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return out.Role, nil
}
