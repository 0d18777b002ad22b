// Package scaffold renders the file bodies the CLI can write without the
// registry. Templates are embedded in the binary under scaffolds/ and
// executed with text/template.
package scaffold
