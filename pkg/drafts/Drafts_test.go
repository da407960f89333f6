package drafts

import (
	"errors"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSetTouchesOnlyOneDraft(t *testing.T) {
	in := New()
	in.Pod = PodDraft{PodName: "old", ContainerName: "c1", ImageName: "nginx"}
	in.Service = ServiceDraft{ServiceName: "front", AppName: "shop", Port: "80", TargetPort: "8080"}

	require.NoError(t, in.Set(kinds.Pod, "podName", "X"))
	require.NoError(t, in.Set(kinds.Deployment, "appName", "Y"))

	assert.Equal(t, PodDraft{PodName: "X", ContainerName: "c1", ImageName: "nginx"}, in.Pod)
	assert.Equal(t, DeploymentDraft{AppName: "Y"}, in.Deployment)
	assert.Equal(t, ServiceDraft{ServiceName: "front", AppName: "shop", Port: "80", TargetPort: "8080"}, in.Service)
}

func TestSetUnknown(t *testing.T) {
	in := New()

	err := in.Set(kinds.Pod, "replicas", "3")
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Equal(t, PodDraft{}, in.Pod)

	err = in.Set(kinds.Kind("job"), "name", "x")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	in := New()
	in.Deployment = DeploymentDraft{DeploymentName: "web", Replicas: "2"}
	in.Pod = PodDraft{PodName: "keep"}

	require.NoError(t, in.Reset(kinds.Deployment))

	assert.Equal(t, DeploymentDraft{}, in.Deployment)
	assert.Equal(t, "keep", in.Pod.PodName)

	for field, value := range in.Deployment.Values() {
		assert.Equal(t, "", value, field)
	}
}

func TestValuesMatchSchema(t *testing.T) {
	engine := validation.New()
	in := New()

	for _, kind := range kinds.All {
		draft, err := in.Get(kind)
		require.NoError(t, err)

		schema, ok := engine.Schema(kind)
		require.True(t, ok)

		values := draft.Values()
		assert.Len(t, values, len(schema.Fields))

		for _, name := range schema.FieldNames() {
			_, ok := values[name]
			assert.True(t, ok, "%s misses %s", kind, name)
			assert.NoError(t, draft.Set(name, "v"))
		}
	}
}
