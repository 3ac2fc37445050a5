package provisioning

import (
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/imamik/ecsup/internal/platform/aws"
)

// TaskDefinitionPhase registers a task definition revision. Unlike the
// other phases this one always creates: the provider's supported rollout
// mechanism is registering a fresh revision under the same family.
type TaskDefinitionPhase struct{}

// Name implements the Phase interface.
func (p *TaskDefinitionPhase) Name() string {
	return "task-definition"
}

// Provision implements the Phase interface.
func (p *TaskDefinitionPhase) Provision(ctx *Context) error {
	if ctx.State.ExecutionRoleARN == "" {
		return fmt.Errorf("execution role ARN is not resolved")
	}
	if ctx.State.LogGroupName == "" {
		return fmt.Errorf("log group is not resolved")
	}

	spec := aws.TaskDefinitionSpec{
		Family:           ctx.Config.Task.Family,
		CPU:              ctx.Config.Task.CPU,
		Memory:           ctx.Config.Task.Memory,
		Image:            ctx.Config.ImageFor(ctx.State.RegistryURI),
		ContainerPort:    ctx.Config.Task.ContainerPort,
		ExecutionRoleARN: ctx.State.ExecutionRoleARN,
		LogGroup:         ctx.State.LogGroupName,
		Region:           ctx.Config.Region,
	}

	taskDef, err := ctx.Infra.RegisterTaskDefinition(ctx, spec)
	if err != nil {
		return err
	}
	if taskDef == nil {
		return fmt.Errorf("task definition %s did not register", spec.Family)
	}

	arn := awssdk.ToString(taskDef.TaskDefinitionArn)
	ctx.State.TaskDefinitionARN = arn

	LogResourceCreated(ctx.Observer, p.Name(), "task definition",
		fmt.Sprintf("%s:%d", spec.Family, taskDef.Revision), arn)
	return nil
}
