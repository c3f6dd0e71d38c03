package v1alpha1

import "errors"

// ErrClusterNameRequired is returned when the cluster name is empty.
var ErrClusterNameRequired = errors.New("cluster name is required")

// ErrInvalidControlPlanes is returned when fewer than one control-plane node is requested.
var ErrInvalidControlPlanes = errors.New("at least one control-plane node is required")

// ErrInvalidWorkers is returned when a negative number of worker nodes is requested.
var ErrInvalidWorkers = errors.New("worker count must not be negative")

// ErrInvalidPort is returned when a port mapping is empty.
var ErrInvalidPort = errors.New("port mapping must not be empty")
