// Package installer places component source files into a consumer project.
//
// An Installer resolves component metadata through the registry, fetches the
// component body (and its optional type declarations), writes them under a
// target directory, and returns the dependency identifiers the component
// needs: the ones declared in the registry index plus a configurable
// baseline shared by every component. Installing every component stops at
// the first failure; files written before the failure are kept.
package installer
