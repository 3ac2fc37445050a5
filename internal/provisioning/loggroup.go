package provisioning

// LogGroupPhase ensures the container log group exists before the task
// definition references it.
type LogGroupPhase struct{}

// Name implements the Phase interface.
func (p *LogGroupPhase) Name() string {
	return "log-group"
}

// Provision implements the Phase interface.
func (p *LogGroupPhase) Provision(ctx *Context) error {
	name := ctx.Config.LogGroupName()

	created, err := ctx.Infra.EnsureLogGroup(ctx, name)
	if err != nil {
		return err
	}

	ctx.State.LogGroupName = name

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "log group", name, name)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "log group", name, name)
	}
	return nil
}
