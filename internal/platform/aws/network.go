package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DiscoverDefaultNetwork resolves the account's default VPC and its subnets.
// The network is pre-existing infrastructure; failing to find it aborts the
// run with no remediation.
func (c *RealClient) DiscoverDefaultNetwork(ctx context.Context) (*Network, error) {
	vpcs, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("isDefault"), Values: []string{"true"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up default VPC: %w", err)
	}
	if len(vpcs.Vpcs) == 0 {
		return nil, fmt.Errorf("no default VPC found in this region")
	}
	vpcID := aws.ToString(vpcs.Vpcs[0].VpcId)

	subnets, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up subnets of VPC %s: %w", vpcID, err)
	}
	if len(subnets.Subnets) == 0 {
		return nil, fmt.Errorf("default VPC %s has no subnets", vpcID)
	}

	network := &Network{VPCID: vpcID}
	for _, subnet := range subnets.Subnets {
		network.SubnetIDs = append(network.SubnetIDs, aws.ToString(subnet.SubnetId))
	}
	return network, nil
}

// EnsureSecurityGroup ensures the security group exists in the VPC and
// returns its id. The ingress rule permitting the application port from any
// source is authorized as part of creation, not reconciled separately.
func (c *RealClient) EnsureSecurityGroup(ctx context.Context, name, vpcID string, port int32) (string, bool, error) {
	group, created, err := reconcileResource(ctx, "security group "+name, ReconcileFuncs[ec2types.SecurityGroup]{
		Get: func(ctx context.Context) (*ec2types.SecurityGroup, error) {
			out, err := c.ec2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
				Filters: []ec2types.Filter{
					{Name: aws.String("group-name"), Values: []string{name}},
					{Name: aws.String("vpc-id"), Values: []string{vpcID}},
				},
			})
			if err != nil {
				if isNotFound(err) {
					return nil, nil
				}
				return nil, err
			}
			if len(out.SecurityGroups) == 0 {
				return nil, nil
			}
			return &out.SecurityGroups[0], nil
		},
		Create: func(ctx context.Context) (*ec2types.SecurityGroup, error) {
			out, err := c.ec2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
				GroupName:   aws.String(name),
				Description: aws.String("Allow inbound traffic to the web application"),
				VpcId:       aws.String(vpcID),
			})
			if err != nil {
				return nil, err
			}
			groupID := aws.ToString(out.GroupId)

			_, err = c.ec2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
				GroupId:    aws.String(groupID),
				IpProtocol: aws.String("tcp"),
				FromPort:   aws.Int32(port),
				ToPort:     aws.Int32(port),
				CidrIp:     aws.String("0.0.0.0/0"),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to authorize ingress on %s: %w", groupID, err)
			}

			return &ec2types.SecurityGroup{
				GroupId:   out.GroupId,
				GroupName: aws.String(name),
				VpcId:     aws.String(vpcID),
			}, nil
		},
	})
	if err != nil {
		return "", false, err
	}
	return aws.ToString(group.GroupId), created, nil
}
