package provisioning

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Registry results
	RegistryURI  string // full repository URI
	RegistryHost string // URI up to the first slash, the docker login host

	// Identity results
	ExecutionRoleARN string
	RoleCreated      bool // whether the creation branch ran this run

	// Cluster results
	ClusterARN string

	// Network results
	VPCID           string
	SubnetIDs       []string
	SecurityGroupID string

	// Logging results
	LogGroupName string

	// Deployment results
	TaskDefinitionARN string
	ServiceARN        string
	ServiceCreated    bool
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
