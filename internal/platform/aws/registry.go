package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
)

// EnsureRepository ensures the image repository exists.
func (c *RealClient) EnsureRepository(ctx context.Context, name string) (*ecrtypes.Repository, bool, error) {
	return reconcileResource(ctx, "repository "+name, ReconcileFuncs[ecrtypes.Repository]{
		Get: func(ctx context.Context) (*ecrtypes.Repository, error) {
			out, err := c.ecr.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
				RepositoryNames: []string{name},
			})
			if err != nil {
				if isNotFound(err) {
					return nil, nil
				}
				return nil, err
			}
			if len(out.Repositories) == 0 {
				return nil, nil
			}
			return &out.Repositories[0], nil
		},
		Create: func(ctx context.Context) (*ecrtypes.Repository, error) {
			out, err := c.ecr.CreateRepository(ctx, &ecr.CreateRepositoryInput{
				RepositoryName: aws.String(name),
			})
			if err != nil {
				return nil, err
			}
			return out.Repository, nil
		},
	})
}
