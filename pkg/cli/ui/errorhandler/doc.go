// Package errorhandler runs the cobra command tree and turns its failures into
// operator-facing messages and exit codes.
package errorhandler
