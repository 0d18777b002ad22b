// Package registry fetches component artifacts from the remote component
// repository. It resolves the catalog of available components from the
// registry index, exposes per-component metadata, and performs the raw
// byte-level fetch of source files. The client never retries and never falls
// back to defaults; callers decide how to recover from a FetchError.
package registry
