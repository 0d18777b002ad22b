//go:build integration

package integration_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/natively-ui/natively/internal/pkgmanager"
)

// testEnv holds an isolated project directory and a local registry.
type testEnv struct {
	ProjectDir  string
	RegistryURL string

	mu       sync.Mutex
	files    map[string]string // request path → body; "!<code>" answers with that status
	requests []string
}

// setupTestEnv creates a temp project and starts a registry serving a
// synthetic index with button, card and input.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	t.Setenv("NATIVELY_CONFIG_DIR", t.TempDir())

	env := &testEnv{
		ProjectDir: t.TempDir(),
		files: map[string]string{
			"/registry/v1/components.json": `{
  "version": "1.2.0",
  "components": [
    {"name": "button", "description": "Pressable button", "dependencies": ["react-native"]},
    {"name": "card", "description": "Surface container", "dependencies": ["react-native", "react-native-svg"]},
    {"name": "input", "description": "Text field"}
  ]
}`,
			"/components/button/index.tsx": "export const Button = () => null;\n",
			"/components/button/types.ts":  "export type ButtonProps = { variant?: 'default' };\n",
			"/components/card/index.tsx":   "export const Card = () => null;\n",
			"/components/input/index.tsx":  "export const Input = () => null;\n",
			"/utils/utils.ts":              "export function cn(...inputs) { return inputs.join(' '); }\n",
		},
	}

	server := httptest.NewServer(http.HandlerFunc(env.serve))
	t.Cleanup(server.Close)
	env.RegistryURL = server.URL
	return env
}

func (e *testEnv) serve(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	e.requests = append(e.requests, r.URL.Path)
	body, ok := e.files[r.URL.Path]
	e.mu.Unlock()

	switch {
	case !ok:
		http.NotFound(w, r)
	case body == "!500":
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.Write([]byte(body))
	}
}

func (e *testEnv) setFile(path, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.files[path] = body
}

func (e *testEnv) removeFile(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.files, path)
}

func (e *testEnv) requested(path string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.requests {
		if p == path {
			return true
		}
	}
	return false
}

// fakeRunner stands in for npm, yarn and pnpm.
type fakeRunner struct {
	available map[string]string // manager → version output
	exitCode  int
	installs  []pkgmanager.Command
}

func (f *fakeRunner) Run(_ context.Context, c pkgmanager.Command) (*pkgmanager.Output, error) {
	version, ok := f.available[c.Name]
	if !ok {
		return nil, os.ErrNotExist
	}
	if len(c.Args) == 1 && c.Args[0] == "--version" {
		return &pkgmanager.Output{Stdout: version + "\n"}, nil
	}
	f.installs = append(f.installs, c)
	return &pkgmanager.Output{ExitCode: f.exitCode}, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q:\n%s", path, substr, data)
	}
}

func assertEqualSlices(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "\x00") != strings.Join(want, "\x00") || len(got) != len(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
