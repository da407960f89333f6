package kinds

// Kind selects one of the three resource drafts the form controller owns.
type Kind string

const (
	Pod        Kind = "pod"
	Deployment Kind = "deployment"
	Service    Kind = "service"
)

// All lists the kinds in the order the form renders them.
var All = []Kind{Pod, Deployment, Service}
