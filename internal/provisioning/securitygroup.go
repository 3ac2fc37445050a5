package provisioning

// SecurityGroupPhase ensures the service security group exists in the
// discovered VPC. On creation one ingress rule is opened for the container
// port; an existing group's rules are left untouched.
type SecurityGroupPhase struct{}

// Name implements the Phase interface.
func (p *SecurityGroupPhase) Name() string {
	return "security-group"
}

// Provision implements the Phase interface.
func (p *SecurityGroupPhase) Provision(ctx *Context) error {
	name := ctx.Config.SecurityGroupName()

	groupID, created, err := ctx.Infra.EnsureSecurityGroup(ctx, name, ctx.State.VPCID, ctx.Config.Task.ContainerPort)
	if err != nil {
		return err
	}

	ctx.State.SecurityGroupID = groupID

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "security group", name, groupID)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "security group", name, groupID)
	}
	return nil
}
