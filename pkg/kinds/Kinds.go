package kinds

import (
	"fmt"
	"github.com/kre8/kre8/pkg/static"
)

func New(kind string) (Kind, error) {
	switch kind {
	case static.KIND_POD:
		return Pod, nil
	case static.KIND_DEPLOYMENT:
		return Deployment, nil
	case static.KIND_SERVICE:
		return Service, nil
	default:
		return "", fmt.Errorf("%s kind does not exist", kind)
	}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Valid() bool {
	_, err := New(string(k))
	return err == nil
}

// CreateEvent is the outbound event carrying a normalized payload of this kind.
func (k Kind) CreateEvent() string {
	switch k {
	case Pod:
		return static.CREATE_POD
	case Deployment:
		return static.CREATE_DEPLOYMENT
	case Service:
		return static.CREATE_SERVICE
	}

	return ""
}

// HandleEvent is the inbound event the backend sends once this kind is provisioned.
func (k Kind) HandleEvent() string {
	switch k {
	case Pod:
		return static.HANDLE_NEW_POD
	case Deployment:
		return static.HANDLE_NEW_DEPLOYMENT
	case Service:
		return static.HANDLE_NEW_SERVICE
	}

	return ""
}

func (k Kind) DocsEvent() string {
	switch k {
	case Pod:
		return static.SHOW_KUBE_DOCS_POD
	case Deployment:
		return static.SHOW_KUBE_DOCS_DEPLOYMENT
	case Service:
		return static.SHOW_KUBE_DOCS_SERVICE
	}

	return ""
}

func (k Kind) DocsURL() string {
	switch k {
	case Pod:
		return static.DOCS_POD
	case Deployment:
		return static.DOCS_DEPLOYMENT
	case Service:
		return static.DOCS_SERVICE
	}

	return ""
}

// FromEvent maps any of the per-kind event names back to its kind.
func FromEvent(event string) (Kind, bool) {
	for _, k := range All {
		if event == k.CreateEvent() || event == k.HandleEvent() || event == k.DocsEvent() {
			return k, true
		}
	}

	return "", false
}
