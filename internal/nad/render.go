package nad

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// ToYAML renders a manifest the way it would be submitted, for
// dry-run previews. Label and annotation values pass through the YAML
// encoder rather than string templating, so no quoting hazards.
func ToYAML(manifest *NetworkAttachmentDefinition) ([]byte, error) {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}

// ToUnstructured converts a manifest for submission over the dynamic
// client.
func ToUnstructured(manifest *NetworkAttachmentDefinition) (*unstructured.Unstructured, error) {
	obj, err := runtime.DefaultUnstructuredConverter.ToUnstructured(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to convert manifest: %w", err)
	}
	return &unstructured.Unstructured{Object: obj}, nil
}
