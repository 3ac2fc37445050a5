package provisioning

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// ClusterPhase ensures the compute cluster exists and is ACTIVE.
type ClusterPhase struct{}

// Name implements the Phase interface.
func (p *ClusterPhase) Name() string {
	return "cluster"
}

// Provision implements the Phase interface.
func (p *ClusterPhase) Provision(ctx *Context) error {
	name := ctx.Config.Cluster

	cluster, created, err := ctx.Infra.EnsureCluster(ctx, name)
	if err != nil {
		return err
	}
	if cluster == nil {
		return fmt.Errorf("cluster %s did not resolve", name)
	}

	arn := aws.ToString(cluster.ClusterArn)
	ctx.State.ClusterARN = arn

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "cluster", name, arn)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "cluster", name, arn)
	}
	return nil
}
