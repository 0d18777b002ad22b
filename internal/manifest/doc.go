// Package manifest parses and validates the component registry index, the
// document at registry/v1/components.json that lists every installable
// component with its package dependencies. Documents are validated against an
// embedded JSON Schema before decoding, and the optional version field is
// checked against the supported major version. Unknown fields are ignored.
package manifest
