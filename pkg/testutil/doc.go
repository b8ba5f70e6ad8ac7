// Package testutil provides utilities for testing iacinit components.
//
// Key components:
//   - FakeRunner: records commands instead of executing them
//   - File helpers for both the real filesystem and filesystem.FS
//   - Template set builders backed by fstest.MapFS
//
// Usage guidelines:
//   - Scaffolding tests run against filesystem.NewMemory() and a FakeRunner
//   - Only pkg/exec tests run real processes
package testutil
