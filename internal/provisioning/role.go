package provisioning

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// ExecutionRolePhase ensures the task execution role exists and, after a
// first-time creation, waits for it to become visible to dependent APIs
// before any later phase references its ARN.
type ExecutionRolePhase struct{}

// Name implements the Phase interface.
func (p *ExecutionRolePhase) Name() string {
	return "execution-role"
}

// Provision implements the Phase interface.
func (p *ExecutionRolePhase) Provision(ctx *Context) error {
	name := ctx.Config.ExecutionRole

	role, created, err := ctx.Infra.EnsureExecutionRole(ctx, name)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("role %s did not resolve", name)
	}

	arn := aws.ToString(role.Arn)
	if arn == "" {
		return fmt.Errorf("role %s has no ARN", name)
	}
	ctx.State.ExecutionRoleARN = arn
	ctx.State.RoleCreated = created

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "role", name, arn)
		// A freshly created role is not immediately visible to services
		// that assume it; poll until it resolves.
		if err := ctx.Infra.WaitForRoleVisible(ctx, name); err != nil {
			return fmt.Errorf("role %s did not become visible: %w", name, err)
		}
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "role", name, arn)
	}
	return nil
}
