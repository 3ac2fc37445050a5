// Package provisioning orders the deployment infrastructure build-out into
// sequential phases.
//
// Each phase reconciles one cloud resource (registry, role, cluster, network,
// security group, log group, task definition, service, pipeline user) and
// records its result in the shared State. Phases run strictly in order and
// the pipeline aborts on the first failure; there is no rollback — rerunning
// the tool is the recovery path, which the check-then-create reconcilers make
// safe.
package provisioning
