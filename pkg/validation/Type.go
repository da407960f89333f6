package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/kre8/kre8/pkg/kinds"
)

// Payload is the normalized, typed form of a draft that is ready to be provisioned.
type Payload interface {
	GetKind() kinds.Kind
	GetName() string
}

type PodPayload struct {
	PodName       string `json:"podName" validate:"required,lowercase"`
	ContainerName string `json:"containerName" validate:"required"`
	ImageName     string `json:"imageName" validate:"required"`
}

type DeploymentPayload struct {
	DeploymentName string `json:"deploymentName" validate:"required,lowercase"`
	AppName        string `json:"appName" validate:"required,lowercase"`
	ContainerName  string `json:"containerName" validate:"required,lowercase"`
	Image          string `json:"image" validate:"required,lowercase"`
	ContainerPort  int    `json:"containerPort" validate:"gt=0"`
	Replicas       int    `json:"replicas" validate:"gt=0,lte=4"`
}

type ServicePayload struct {
	ServiceName string `json:"serviceName" validate:"required,lowercase"`
	AppName     string `json:"appName" validate:"required,lowercase"`
	Port        int    `json:"port" validate:"gt=0"`
	TargetPort  int    `json:"targetPort" validate:"gt=0"`
}

// FieldErrors maps a field name to a human readable message. Only failed fields are present.
type FieldErrors map[string]string

type FieldType int

const (
	String FieldType = iota
	Number
)

// Field declares one entry of a kind's schema.
type Field struct {
	Name      string
	Type      FieldType
	Lowercase bool
}

type Schema struct {
	Kind   kinds.Kind
	Fields []Field
	new    func() Payload
}

type Engine struct {
	validate *validator.Validate
	schemas  map[kinds.Kind]*Schema
}
