package provisioner

import (
	"context"
	"github.com/kre8/kre8/pkg/kinds"
	"k8s.io/apimachinery/pkg/runtime"
)

//go:generate mockgen -source=Type.go -destination=mock/Type.go

// Applier creates the rendered resource in the cluster.
type Applier interface {
	Apply(ctx context.Context, manifest *Manifest) (*Result, error)
}

type Manifest struct {
	Kind      kinds.Kind
	Name      string
	Namespace string
	Object    runtime.Object
	YAML      []byte
}

type Result struct {
	Kind      kinds.Kind `json:"kind"`
	Name      string     `json:"name"`
	Namespace string     `json:"namespace"`
	Output    string     `json:"output,omitempty"`
	DryRun    bool       `json:"dryRun"`
}

type Kubectl struct {
	args []string
}

type DryRun struct{}
