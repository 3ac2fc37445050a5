package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// EnsureLogGroup ensures the log group exists. The lookup API lists groups
// matching a prefix, so a sibling like /ecs/other-task can come back when
// searching for /ecs/webapp-cicd-task; presence requires an exact match.
func (c *RealClient) EnsureLogGroup(ctx context.Context, name string) (bool, error) {
	out, err := c.logs.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(name),
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up log group %s: %w", name, err)
	}

	for _, group := range out.LogGroups {
		if aws.ToString(group.LogGroupName) == name {
			return false, nil
		}
	}

	_, err = c.logs.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil {
		return false, fmt.Errorf("failed to create log group %s: %w", name, err)
	}
	return true, nil
}
