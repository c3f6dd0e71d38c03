// Package client groups the external tool clients k3d-manager drives.
//
//   - kubectl: invocation builders for inspecting a freshly created cluster
package client
