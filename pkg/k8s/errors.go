package k8s

import "errors"

// ErrContextNameEmpty is returned when a clientset is requested without a context.
var ErrContextNameEmpty = errors.New("kubeconfig context name is empty")
