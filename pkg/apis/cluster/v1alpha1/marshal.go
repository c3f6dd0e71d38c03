package v1alpha1

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

type clusterOutput struct {
	APIVersion string      `json:"apiVersion"`
	Kind       string      `json:"kind"`
	Spec       ClusterSpec `json:"spec"`
}

// ToYAML renders s as a versioned YAML document.
func (s ClusterSpec) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(clusterOutput{APIVersion: APIVersion, Kind: Kind, Spec: s})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cluster spec: %w", err)
	}

	return out, nil
}
