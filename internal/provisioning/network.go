package provisioning

// NetworkPhase discovers the default VPC and its subnets. Nothing is
// created here; an account without a default VPC fails the run.
type NetworkPhase struct{}

// Name implements the Phase interface.
func (p *NetworkPhase) Name() string {
	return "network"
}

// Provision implements the Phase interface.
func (p *NetworkPhase) Provision(ctx *Context) error {
	network, err := ctx.Infra.DiscoverDefaultNetwork(ctx)
	if err != nil {
		return err
	}

	ctx.State.VPCID = network.VPCID
	ctx.State.SubnetIDs = network.SubnetIDs

	LogResourceDiscovered(ctx.Observer, p.Name(), "default VPC", network.VPCID, network.VPCID)
	return nil
}
