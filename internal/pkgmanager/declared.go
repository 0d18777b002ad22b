package pkgmanager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestFile is the project manifest declared dependencies are read from.
const ManifestFile = "package.json"

// Index maps declared package names to their version ranges.
type Index map[string]string

// Has reports whether name is declared.
func (i Index) Has(name string) bool {
	_, ok := i[name]
	return ok
}

// ManifestReadError reports a package.json that exists but cannot be read
// or parsed.
type ManifestReadError struct {
	Path string
	Err  error
}

func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ManifestReadError) Unwrap() error {
	return e.Err
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DetectDeclared returns the union of dependencies and devDependencies in
// projectDir/package.json. A missing file yields an empty index. A file that
// cannot be read or parsed yields an empty index and a *ManifestReadError.
func DetectDeclared(projectDir string) (Index, error) {
	path := filepath.Join(projectDir, ManifestFile)
	idx := Index{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return idx, &ManifestReadError{Path: path, Err: err}
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return idx, &ManifestReadError{Path: path, Err: err}
	}

	for name, version := range pkg.Dependencies {
		idx[name] = version
	}
	for name, version := range pkg.DevDependencies {
		if _, ok := idx[name]; !ok {
			idx[name] = version
		}
	}
	return idx, nil
}

// FilterMissing returns the requested packages not in declared, in
// request order and without duplicates.
func FilterMissing(requested []string, declared Index) []string {
	missing := []string{}
	seen := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		if name == "" || declared.Has(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	return missing
}
