package provisioning

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// RegistryPhase ensures the container image repository exists and records
// its URI and registry host for later phases and the CI summary.
type RegistryPhase struct{}

// Name implements the Phase interface.
func (p *RegistryPhase) Name() string {
	return "registry"
}

// Provision implements the Phase interface.
func (p *RegistryPhase) Provision(ctx *Context) error {
	name := ctx.Config.Repository

	repo, created, err := ctx.Infra.EnsureRepository(ctx, name)
	if err != nil {
		return err
	}
	if repo == nil {
		return fmt.Errorf("repository %s did not resolve", name)
	}

	uri := aws.ToString(repo.RepositoryUri)
	if uri == "" {
		return fmt.Errorf("repository %s has no URI", name)
	}

	ctx.State.RegistryURI = uri
	// The registry host is the docker login target: everything up to the
	// first path separator of the repository URI.
	ctx.State.RegistryHost = strings.SplitN(uri, "/", 2)[0]

	if created {
		LogResourceCreated(ctx.Observer, p.Name(), "repository", name, uri)
	} else {
		LogResourceExists(ctx.Observer, p.Name(), "repository", name, uri)
	}
	return nil
}
