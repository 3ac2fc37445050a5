package provisioning

import (
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/imamik/ecsup/internal/platform/aws"
)

// ServicePhase ensures the long-running service exists and runs the task
// definition revision registered this run. An existing ACTIVE service is
// rolled out to the new revision instead of being left on the old one.
type ServicePhase struct{}

// Name implements the Phase interface.
func (p *ServicePhase) Name() string {
	return "service"
}

// Provision implements the Phase interface.
func (p *ServicePhase) Provision(ctx *Context) error {
	if ctx.State.TaskDefinitionARN == "" {
		return fmt.Errorf("task definition ARN is not resolved")
	}
	if len(ctx.State.SubnetIDs) == 0 || ctx.State.SecurityGroupID == "" {
		return fmt.Errorf("network is not resolved")
	}

	spec := aws.ServiceSpec{
		Cluster:           ctx.Config.Cluster,
		Name:              ctx.Config.Service.Name,
		TaskDefinitionARN: ctx.State.TaskDefinitionARN,
		DesiredCount:      ctx.Config.Service.DesiredCount,
		SubnetIDs:         ctx.State.SubnetIDs,
		SecurityGroupID:   ctx.State.SecurityGroupID,
	}

	service, created, err := ctx.Infra.EnsureService(ctx, spec)
	if err != nil {
		return err
	}
	if service == nil {
		return fmt.Errorf("service %s did not resolve", spec.Name)
	}

	arn := awssdk.ToString(service.ServiceArn)
	ctx.State.ServiceARN = arn
	ctx.State.ServiceCreated = created

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "service", spec.Name, arn)
	} else {
		LogResourceUpdated(ctx.Observer, p.Name(), "service", spec.Name, arn)
	}
	return nil
}
