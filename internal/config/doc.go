// Package config manages user-level settings stored at ~/.natively/config.yaml.
// Settings can be overridden with NATIVELY_* environment variables or a .env
// file in the target project. It covers the registry URL, the per-fetch
// timeout, the baseline dependency set, and default project directories.
package config
