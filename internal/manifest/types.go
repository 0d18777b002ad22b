package manifest

// Path is the registry-relative location of the index document.
const Path = "registry/v1/components.json"

// Index is the decoded registry index document.
type Index struct {
	Version    string      `json:"version,omitempty"`
	Components []Component `json:"components"`
}

// Component describes one installable unit.
type Component struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}
