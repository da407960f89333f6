package provisioner

import (
	"context"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"os"
	"path/filepath"
	"sigs.k8s.io/yaml"
	"testing"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name     string
		payload  validation.Payload
		kind     kinds.Kind
		contains []string
	}{
		{
			"Pod",
			&validation.PodPayload{PodName: "web-1", ContainerName: "c1", ImageName: "nginx"},
			kinds.Pod,
			[]string{"kind: Pod", "name: web-1", "image: nginx", "namespace: shop"},
		},
		{
			"Deployment",
			&validation.DeploymentPayload{DeploymentName: "web", AppName: "shop", ContainerName: "nginx", Image: "nginx:1.25", ContainerPort: 80, Replicas: 3},
			kinds.Deployment,
			[]string{"apiVersion: apps/v1", "kind: Deployment", "replicas: 3", "containerPort: 80", "app: shop"},
		},
		{
			"Service",
			&validation.ServicePayload{ServiceName: "front", AppName: "shop", Port: 8080, TargetPort: 80},
			kinds.Service,
			[]string{"kind: Service", "port: 8080", "targetPort: 80", "app.kubernetes.io/managed-by: kre8"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manifest, err := Render(tc.payload, "shop")

			require.NoError(t, err)
			assert.Equal(t, tc.kind, manifest.Kind)
			assert.Equal(t, tc.payload.GetName(), manifest.Name)
			assert.Equal(t, "shop", manifest.Namespace)

			for _, fragment := range tc.contains {
				assert.Contains(t, string(manifest.YAML), fragment)
			}
		})
	}
}

func TestRenderDeploymentRoundTrip(t *testing.T) {
	manifest, err := Render(&validation.DeploymentPayload{
		DeploymentName: "web",
		AppName:        "shop",
		ContainerName:  "nginx",
		Image:          "nginx",
		ContainerPort:  80,
		Replicas:       2,
	}, "default")
	require.NoError(t, err)

	var parsed appsv1.Deployment
	require.NoError(t, yaml.Unmarshal(manifest.YAML, &parsed))

	require.NotNil(t, parsed.Spec.Replicas)
	assert.Equal(t, int32(2), *parsed.Spec.Replicas)
	assert.Equal(t, map[string]string{LabelApp: "shop"}, parsed.Spec.Selector.MatchLabels)
	assert.Equal(t, parsed.Spec.Selector.MatchLabels, parsed.Spec.Template.Labels)
	assert.Equal(t, int32(80), parsed.Spec.Template.Spec.Containers[0].Ports[0].ContainerPort)

	var service corev1.Service
	manifest, err = Render(&validation.ServicePayload{ServiceName: "front", AppName: "shop", Port: 80, TargetPort: 8080}, "default")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(manifest.YAML, &service))
	assert.Equal(t, 8080, service.Spec.Ports[0].TargetPort.IntValue())
}

func TestKubectl(t *testing.T) {
	manifest, err := Render(&validation.PodPayload{PodName: "web", ContainerName: "c1", ImageName: "nginx"}, "default")
	require.NoError(t, err)

	kubectl, err := NewKubectl("cat")
	require.NoError(t, err)

	result, err := kubectl.Apply(context.Background(), manifest)
	require.NoError(t, err)
	assert.Equal(t, kinds.Pod, result.Kind)
	assert.False(t, result.DryRun)
	assert.Contains(t, result.Output, "name: web")

	failing, err := NewKubectl(`sh -c "echo denied >&2; exit 3"`)
	require.NoError(t, err)

	_, err = failing.Apply(context.Background(), manifest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")

	_, err = NewKubectl("")
	assert.Error(t, err)

	_, err = NewKubectl(`kubectl "apply`)
	assert.Error(t, err)
}

func TestDryRun(t *testing.T) {
	manifest, err := Render(&validation.ServicePayload{ServiceName: "front", AppName: "shop", Port: 80, TargetPort: 80}, "default")
	require.NoError(t, err)

	result, err := NewDryRun().Apply(context.Background(), manifest)

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, string(manifest.YAML), result.Output)
}

func TestSave(t *testing.T) {
	manifest, err := Render(&validation.PodPayload{PodName: "web", ContainerName: "c1", ImageName: "nginx"}, "default")
	require.NoError(t, err)

	dir := t.TempDir()

	path, err := Save(manifest, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pod-web.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, manifest.YAML, data)
}
