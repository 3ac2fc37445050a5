package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// RegisterTaskDefinition registers a new task definition revision. There is
// no presence check: the provider assigns a fresh revision number on every
// registration, which is how new container images get published.
func (c *RealClient) RegisterTaskDefinition(ctx context.Context, spec TaskDefinitionSpec) (*ecstypes.TaskDefinition, error) {
	out, err := c.ecs.RegisterTaskDefinition(ctx, &ecs.RegisterTaskDefinitionInput{
		Family:                  aws.String(spec.Family),
		RequiresCompatibilities: []ecstypes.Compatibility{ecstypes.CompatibilityFargate},
		NetworkMode:             ecstypes.NetworkModeAwsvpc,
		Cpu:                     aws.String(strconv.Itoa(int(spec.CPU))),
		Memory:                  aws.String(strconv.Itoa(int(spec.Memory))),
		ExecutionRoleArn:        aws.String(spec.ExecutionRoleARN),
		ContainerDefinitions: []ecstypes.ContainerDefinition{
			{
				Name:      aws.String(spec.Family),
				Image:     aws.String(spec.Image),
				Essential: aws.Bool(true),
				PortMappings: []ecstypes.PortMapping{
					{
						ContainerPort: aws.Int32(spec.ContainerPort),
						Protocol:      ecstypes.TransportProtocolTcp,
					},
				},
				LogConfiguration: &ecstypes.LogConfiguration{
					LogDriver: ecstypes.LogDriverAwslogs,
					Options: map[string]string{
						"awslogs-group":         spec.LogGroup,
						"awslogs-region":        spec.Region,
						"awslogs-stream-prefix": "ecs",
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register task definition %s: %w", spec.Family, err)
	}
	return out.TaskDefinition, nil
}
