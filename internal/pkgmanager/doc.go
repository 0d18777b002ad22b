// Package pkgmanager installs npm packages into a consumer project.
//
// It reads the dependencies the project already declares in package.json,
// filters them out of the requested set, picks a package manager (lockfile
// first, then whatever is executable on PATH, with the user confirming or
// choosing), and runs a single install command in the project directory.
package pkgmanager
