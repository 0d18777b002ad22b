package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the semver constraint an index's version field must
// satisfy. Documents without a version are treated as compatible.
const SupportedVersions = "^1"

// InvalidError is returned when a document does not match the index schema
// or breaks an invariant the schema cannot express.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return "invalid registry index: " + strings.Join(parts, "; ")
}

// Parse validates data against the schema and decodes it into an Index.
func Parse(data []byte) (*Index, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decoding registry index: %w", err)
	}

	if err := CheckVersion(idx.Version); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(idx.Components))
	var issues []ValidationIssue
	for i, c := range idx.Components {
		if seen[c.Name] {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("/components/%d/name", i),
				Message: fmt.Sprintf("duplicate component name %q", c.Name),
				Keyword: "unique",
			})
		}
		seen[c.Name] = true
	}
	if len(issues) > 0 {
		return nil, &InvalidError{Issues: issues}
	}

	return &idx, nil
}

// CheckVersion reports whether an index version is readable by this CLI.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("registry index version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("registry index version %s is not supported (need %s); upgrade the CLI", version, SupportedVersions)
	}
	return nil
}
