package validation

import "github.com/kre8/kre8/pkg/kinds"

var PodSchema = &Schema{
	Kind: kinds.Pod,
	Fields: []Field{
		{Name: "podName", Type: String, Lowercase: true},
		{Name: "containerName", Type: String},
		{Name: "imageName", Type: String},
	},
	new: func() Payload { return &PodPayload{} },
}

var DeploymentSchema = &Schema{
	Kind: kinds.Deployment,
	Fields: []Field{
		{Name: "deploymentName", Type: String, Lowercase: true},
		{Name: "appName", Type: String, Lowercase: true},
		{Name: "containerName", Type: String, Lowercase: true},
		{Name: "image", Type: String, Lowercase: true},
		{Name: "containerPort", Type: Number},
		{Name: "replicas", Type: Number},
	},
	new: func() Payload { return &DeploymentPayload{} },
}

var ServiceSchema = &Schema{
	Kind: kinds.Service,
	Fields: []Field{
		{Name: "serviceName", Type: String, Lowercase: true},
		{Name: "appName", Type: String, Lowercase: true},
		{Name: "port", Type: Number},
		{Name: "targetPort", Type: Number},
	},
	new: func() Payload { return &ServicePayload{} },
}

func (s *Schema) Lookup(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

// FieldNames returns the declared fields in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))

	for _, field := range s.Fields {
		names = append(names, field.Name)
	}

	return names
}

func (p *PodPayload) GetKind() kinds.Kind { return kinds.Pod }
func (p *PodPayload) GetName() string { return p.PodName }
func (d *DeploymentPayload) GetKind() kinds.Kind { return kinds.Deployment }
func (d *DeploymentPayload) GetName() string { return d.DeploymentName }
func (s *ServicePayload) GetKind() kinds.Kind { return kinds.Service }
func (s *ServicePayload) GetName() string { return s.ServiceName }
