// Package platform provides the filesystem primitives used when placing
// files into a consumer project: idempotent directory creation, existence
// checks, and atomic file writes that never leave a partially written file
// behind. Permission changes are skipped on Windows.
package platform
