package aws

import (
	"errors"

	"github.com/aws/smithy-go"

	logstypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// isNotFound reports whether the error means the looked-up resource does not
// exist. Every other API failure (permissions, throttling, network) must
// surface to the caller instead of triggering the creation branch.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	// Typed errors for the services that model not-found explicitly
	var repoNotFound *ecrtypes.RepositoryNotFoundException
	if errors.As(err, &repoNotFound) {
		return true
	}

	var noEntity *iamtypes.NoSuchEntityException
	if errors.As(err, &noEntity) {
		return true
	}

	var clusterNotFound *ecstypes.ClusterNotFoundException
	if errors.As(err, &clusterNotFound) {
		return true
	}

	var resourceNotFound *logstypes.ResourceNotFoundException
	if errors.As(err, &resourceNotFound) {
		return true
	}

	// EC2 has no typed not-found errors; fall back to API error codes
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "RepositoryNotFoundException",
			"NoSuchEntity",
			"NoSuchEntityException",
			"ClusterNotFoundException",
			"ServiceNotFoundException",
			"ResourceNotFoundException",
			"InvalidGroup.NotFound",
			"InvalidVpcID.NotFound":
			return true
		}
	}

	return false
}
