// Package cli defines the Cobra command tree for the natively CLI. Each file
// registers one top-level command (init, add, list, config, version) with the
// root command. Commands only parse flags, ask questions, and format output;
// fetching and writing components lives in internal/installer and installing
// npm packages in internal/pkgmanager.
package cli
