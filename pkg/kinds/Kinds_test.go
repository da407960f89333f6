package kinds

import (
	"github.com/kre8/kre8/pkg/static"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name        string
		kind        string
		expected    Kind
		expectError bool
	}{
		{"Pod", "pod", Pod, false},
		{"Deployment", "deployment", Deployment, false},
		{"Service", "service", Service, false},
		{"Unknown kind", "statefulset", "", true},
		{"Case matters", "Pod", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := New(tc.kind)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestEvents(t *testing.T) {
	assert.Equal(t, static.CREATE_DEPLOYMENT, Deployment.CreateEvent())
	assert.Equal(t, static.HANDLE_NEW_SERVICE, Service.HandleEvent())
	assert.Equal(t, static.SHOW_KUBE_DOCS_POD, Pod.DocsEvent())
	assert.Equal(t, "", Kind("job").CreateEvent())

	for _, k := range All {
		for _, event := range []string{k.CreateEvent(), k.HandleEvent(), k.DocsEvent()} {
			found, ok := FromEvent(event)

			assert.True(t, ok, event)
			assert.Equal(t, k, found)
		}
	}

	_, ok := FromEvent(static.START_LOADING_ICON)
	assert.False(t, ok)
}
