package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// statusActive is the only status that counts as present for clusters and
// services. A lookup can return records in INACTIVE or DRAINING states.
const statusActive = "ACTIVE"

// EnsureCluster ensures the compute cluster exists and is ACTIVE.
func (c *RealClient) EnsureCluster(ctx context.Context, name string) (*ecstypes.Cluster, bool, error) {
	return reconcileResource(ctx, "cluster "+name, ReconcileFuncs[ecstypes.Cluster]{
		Get: func(ctx context.Context) (*ecstypes.Cluster, error) {
			out, err := c.ecs.DescribeClusters(ctx, &ecs.DescribeClustersInput{
				Clusters: []string{name},
			})
			if err != nil {
				if isNotFound(err) {
					return nil, nil
				}
				return nil, err
			}
			// A missing cluster is reported as a failure entry, not an error
			if len(out.Clusters) == 0 {
				return nil, nil
			}
			return &out.Clusters[0], nil
		},
		IsPresent: func(cluster *ecstypes.Cluster) bool {
			return aws.ToString(cluster.Status) == statusActive
		},
		Create: func(ctx context.Context) (*ecstypes.Cluster, error) {
			out, err := c.ecs.CreateCluster(ctx, &ecs.CreateClusterInput{
				ClusterName: aws.String(name),
			})
			if err != nil {
				return nil, err
			}
			return out.Cluster, nil
		},
	})
}
