package v1alpha1

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports every topology violation in s, joined into a single error.
// The name is not otherwise restricted; k3d applies its own naming rules.
func (s ClusterSpec) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ErrClusterNameRequired)
	}

	if s.ControlPlanes < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidControlPlanes, s.ControlPlanes))
	}

	if s.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidWorkers, s.Workers))
	}

	for i, port := range s.Ports {
		if strings.TrimSpace(port) == "" {
			errs = append(errs, fmt.Errorf("%w: position %d", ErrInvalidPort, i))
		}
	}

	return errors.Join(errs...)
}
