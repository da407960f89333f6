package provisioner

import (
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/validation"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
	"os"
	"path/filepath"
	"sigs.k8s.io/yaml"
)

const (
	LabelApp       = "app"
	LabelManagedBy = "app.kubernetes.io/managed-by"
	ManagedBy      = "kre8"
)

// Render turns a validated payload into the object kubectl applies.
func Render(payload validation.Payload, namespace string) (*Manifest, error) {
	var object runtime.Object

	switch p := payload.(type) {
	case *validation.PodPayload:
		object = pod(p, namespace)
	case *validation.DeploymentPayload:
		object = deployment(p, namespace)
	case *validation.ServicePayload:
		object = service(p, namespace)
	default:
		return nil, fmt.Errorf("cannot render payload of type %T", payload)
	}

	bytes, err := yaml.Marshal(object)

	if err != nil {
		return nil, fmt.Errorf("failed to render %s/%s: %w", payload.GetKind(), payload.GetName(), err)
	}

	return &Manifest{
		Kind:      payload.GetKind(),
		Name:      payload.GetName(),
		Namespace: namespace,
		Object:    object,
		YAML:      bytes,
	}, nil
}

func meta(name string, namespace string, labels map[string]string) metav1.ObjectMeta {
	merged := map[string]string{LabelManagedBy: ManagedBy}

	for key, value := range labels {
		merged[key] = value
	}

	return metav1.ObjectMeta{
		Name:      name,
		Namespace: namespace,
		Labels:    merged,
	}
}

func pod(p *validation.PodPayload, namespace string) *corev1.Pod {
	return &corev1.Pod{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Pod"},
		ObjectMeta: meta(p.PodName, namespace, nil),
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{
					Name:  p.ContainerName,
					Image: p.ImageName,
				},
			},
		},
	}
}

func deployment(d *validation.DeploymentPayload, namespace string) *appsv1.Deployment {
	selector := map[string]string{LabelApp: d.AppName}

	return &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: meta(d.DeploymentName, namespace, selector),
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(int32(d.Replicas)),
			Selector: &metav1.LabelSelector{
				MatchLabels: selector,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: selector,
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  d.ContainerName,
							Image: d.Image,
							Ports: []corev1.ContainerPort{
								{ContainerPort: int32(d.ContainerPort)},
							},
						},
					},
				},
			},
		},
	}
}

func service(s *validation.ServicePayload, namespace string) *corev1.Service {
	selector := map[string]string{LabelApp: s.AppName}

	return &corev1.Service{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: meta(s.ServiceName, namespace, selector),
		Spec: corev1.ServiceSpec{
			Selector: selector,
			Ports: []corev1.ServicePort{
				{
					Port:       int32(s.Port),
					TargetPort: intstr.FromInt32(int32(s.TargetPort)),
				},
			},
		},
	}
}

// Save writes the manifest into dir as <kind>-<name>.yaml and returns the path.
func Save(manifest *Manifest, dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.yaml", manifest.Kind, manifest.Name))

	err := os.WriteFile(path, manifest.YAML, 0644)

	if err != nil {
		return "", err
	}

	return path, helpers.ChownToRealUser(path)
}
