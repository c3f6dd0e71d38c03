// Package utils provides utility packages for common operations.
//
//   - notify: formatted progress markers with symbols, colors and timing
//   - runner: external process execution with output forwarding and typed failures
//   - timer: execution time tracking for single and multi-stage operations
package utils
