package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// EnsureService ensures the service exists and is ACTIVE. An existing ACTIVE
// service is updated to the given task definition so the revision registered
// earlier in the run actually rolls out.
func (c *RealClient) EnsureService(ctx context.Context, spec ServiceSpec) (*ecstypes.Service, bool, error) {
	service, created, err := reconcileResource(ctx, "service "+spec.Name, ReconcileFuncs[ecstypes.Service]{
		Get: func(ctx context.Context) (*ecstypes.Service, error) {
			out, err := c.ecs.DescribeServices(ctx, &ecs.DescribeServicesInput{
				Cluster:  aws.String(spec.Cluster),
				Services: []string{spec.Name},
			})
			if err != nil {
				if isNotFound(err) {
					return nil, nil
				}
				return nil, err
			}
			// A missing service is reported as a failure entry, not an error
			if len(out.Services) == 0 {
				return nil, nil
			}
			return &out.Services[0], nil
		},
		IsPresent: func(service *ecstypes.Service) bool {
			return aws.ToString(service.Status) == statusActive
		},
		Create: func(ctx context.Context) (*ecstypes.Service, error) {
			out, err := c.ecs.CreateService(ctx, &ecs.CreateServiceInput{
				Cluster:              aws.String(spec.Cluster),
				ServiceName:          aws.String(spec.Name),
				TaskDefinition:       aws.String(spec.TaskDefinitionARN),
				DesiredCount:         aws.Int32(spec.DesiredCount),
				LaunchType:           ecstypes.LaunchTypeFargate,
				NetworkConfiguration: networkConfiguration(spec),
			})
			if err != nil {
				return nil, err
			}
			return out.Service, nil
		},
	})
	if err != nil {
		return nil, false, err
	}

	if !created && aws.ToString(service.TaskDefinition) != spec.TaskDefinitionARN {
		out, err := c.ecs.UpdateService(ctx, &ecs.UpdateServiceInput{
			Cluster:        aws.String(spec.Cluster),
			Service:        aws.String(spec.Name),
			TaskDefinition: aws.String(spec.TaskDefinitionARN),
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to roll out service %s: %w", spec.Name, err)
		}
		return out.Service, false, nil
	}

	return service, created, nil
}

func networkConfiguration(spec ServiceSpec) *ecstypes.NetworkConfiguration {
	return &ecstypes.NetworkConfiguration{
		AwsvpcConfiguration: &ecstypes.AwsVpcConfiguration{
			Subnets:        spec.SubnetIDs,
			SecurityGroups: []string{spec.SecurityGroupID},
			AssignPublicIp: ecstypes.AssignPublicIpEnabled,
		},
	}
}
