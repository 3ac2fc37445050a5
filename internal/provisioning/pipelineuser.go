package provisioning

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// PipelineUserPhase ensures the CI credentials user exists. Policy
// attachments happen only when the user is first created; later runs do not
// re-verify them.
type PipelineUserPhase struct{}

// Name implements the Phase interface.
func (p *PipelineUserPhase) Name() string {
	return "pipeline-user"
}

// Provision implements the Phase interface.
func (p *PipelineUserPhase) Provision(ctx *Context) error {
	name := ctx.Config.PipelineUser

	user, created, err := ctx.Infra.EnsurePipelineUser(ctx, name)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s did not resolve", name)
	}

	arn := aws.ToString(user.Arn)

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "user", name, arn)
		ctx.Observer.Printf("[%s] create access keys for %s in the console and store them in CI", p.Name(), name)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "user", name, arn)
	}
	return nil
}
