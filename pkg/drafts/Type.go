package drafts

import "github.com/kre8/kre8/pkg/kinds"

// Draft is the unvalidated input of one resource kind. Every field is a string as typed.
type Draft interface {
	GetKind() kinds.Kind
	Set(field string, value string) error
	Values() map[string]string
}

type PodDraft struct {
	PodName       string
	ContainerName string
	ImageName     string
}

type DeploymentDraft struct {
	DeploymentName string
	AppName        string
	ContainerName  string
	Image          string
	ContainerPort  string
	Replicas       string
}

type ServiceDraft struct {
	ServiceName string
	AppName     string
	Port        string
	TargetPort  string
}

// InputData holds one draft per kind; editing one never touches the others.
type InputData struct {
	Pod        PodDraft
	Deployment DeploymentDraft
	Service    ServiceDraft
}
