// Package notify writes the short, human-readable progress markers shown between
// external tool invocations.
//
// Each [MessageType] has its own symbol and color (✔ success, ✗ error, ⚠ warning,
// ℹ info, ► activity) and title messages lead with an emoji. The
// [StageSeparatingWriter] inserts a blank line before each title so consecutive
// stages are visually separated from the forwarded tool output.
package notify
