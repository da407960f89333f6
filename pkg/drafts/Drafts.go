package drafts

import (
	"fmt"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/pkg/errors"
)

var ErrUnknownField = errors.New("unknown draft field")

func New() *InputData {
	return &InputData{}
}

// Get returns the live draft of kind; mutations through it are visible in InputData.
func (in *InputData) Get(kind kinds.Kind) (Draft, error) {
	switch kind {
	case kinds.Pod:
		return &in.Pod, nil
	case kinds.Deployment:
		return &in.Deployment, nil
	case kinds.Service:
		return &in.Service, nil
	default:
		return nil, fmt.Errorf("%s kind does not exist", kind)
	}
}

func (in *InputData) Set(kind kinds.Kind, field string, value string) error {
	draft, err := in.Get(kind)

	if err != nil {
		return err
	}

	return draft.Set(field, value)
}

// Reset empties every field of the draft of kind.
func (in *InputData) Reset(kind kinds.Kind) error {
	switch kind {
	case kinds.Pod:
		in.Pod = PodDraft{}
	case kinds.Deployment:
		in.Deployment = DeploymentDraft{}
	case kinds.Service:
		in.Service = ServiceDraft{}
	default:
		return fmt.Errorf("%s kind does not exist", kind)
	}

	return nil
}

func unknownField(kind kinds.Kind, field string) error {
	return fmt.Errorf("%w: %s has no field %s", ErrUnknownField, kind, field)
}

func (d *PodDraft) GetKind() kinds.Kind {
	return kinds.Pod
}

func (d *PodDraft) Set(field string, value string) error {
	switch field {
	case "podName":
		d.PodName = value
	case "containerName":
		d.ContainerName = value
	case "imageName":
		d.ImageName = value
	default:
		return unknownField(kinds.Pod, field)
	}

	return nil
}

func (d *PodDraft) Values() map[string]string {
	return map[string]string{
		"podName":       d.PodName,
		"containerName": d.ContainerName,
		"imageName":     d.ImageName,
	}
}

func (d *DeploymentDraft) GetKind() kinds.Kind {
	return kinds.Deployment
}

func (d *DeploymentDraft) Set(field string, value string) error {
	switch field {
	case "deploymentName":
		d.DeploymentName = value
	case "appName":
		d.AppName = value
	case "containerName":
		d.ContainerName = value
	case "image":
		d.Image = value
	case "containerPort":
		d.ContainerPort = value
	case "replicas":
		d.Replicas = value
	default:
		return unknownField(kinds.Deployment, field)
	}

	return nil
}

func (d *DeploymentDraft) Values() map[string]string {
	return map[string]string{
		"deploymentName": d.DeploymentName,
		"appName":        d.AppName,
		"containerName":  d.ContainerName,
		"image":          d.Image,
		"containerPort":  d.ContainerPort,
		"replicas":       d.Replicas,
	}
}

func (d *ServiceDraft) GetKind() kinds.Kind {
	return kinds.Service
}

func (d *ServiceDraft) Set(field string, value string) error {
	switch field {
	case "serviceName":
		d.ServiceName = value
	case "appName":
		d.AppName = value
	case "port":
		d.Port = value
	case "targetPort":
		d.TargetPort = value
	default:
		return unknownField(kinds.Service, field)
	}

	return nil
}

func (d *ServiceDraft) Values() map[string]string {
	return map[string]string{
		"serviceName": d.ServiceName,
		"appName":     d.AppName,
		"port":        d.Port,
		"targetPort":  d.TargetPort,
	}
}
