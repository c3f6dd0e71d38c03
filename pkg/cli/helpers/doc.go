// Package helpers provides common CLI utilities for command handling.
//
// Key functionality:
//   - Flag handling utilities including timing detection (IsTimingEnabled, MaybeTimer)
//   - Environment-aware configuration binding (NewViper)
//   - Diagnostic log level setup (ConfigureLogging)
package helpers
