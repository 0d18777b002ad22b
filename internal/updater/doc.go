// Package updater checks GitHub Releases for a newer version of the CLI.
package updater
