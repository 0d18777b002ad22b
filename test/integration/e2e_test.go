//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/natively-ui/natively/internal/console"
	"github.com/natively-ui/natively/internal/installer"
	"github.com/natively-ui/natively/internal/pkgmanager"
	"github.com/natively-ui/natively/internal/prompt"
	"github.com/natively-ui/natively/internal/registry"
)

// TestFullFlowInitAddInstall covers the complete flow:
// set up the utility module -> add a component -> install missing deps once.
func TestFullFlowInitAddInstall(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	var out bytes.Buffer
	sink := console.New(&out)

	writeFile(t, filepath.Join(env.ProjectDir, "package.json"), `{
  "name": "demo",
  "dependencies": {"react-native": "0.74.1"}
}`)
	writeFile(t, filepath.Join(env.ProjectDir, "yarn.lock"), "")

	comps := installer.New(registry.New(env.RegistryURL), sink)

	// Step 1: utility module.
	utilDeps, err := comps.InstallUtility(ctx, filepath.Join(env.ProjectDir, "lib"))
	if err != nil {
		t.Fatalf("InstallUtility: %v", err)
	}
	assertFileContains(t, filepath.Join(env.ProjectDir, "lib", "utils.ts"), "export function cn")

	// Step 2: a component with a types file.
	uiDir := filepath.Join(env.ProjectDir, "components", "ui")
	compDeps, err := comps.InstallComponent(ctx, "button", uiDir)
	if err != nil {
		t.Fatalf("InstallComponent: %v", err)
	}
	assertFileExists(t, filepath.Join(uiDir, "button.tsx"))
	assertFileContains(t, filepath.Join(uiDir, "button.types.ts"), "ButtonProps")
	assertEqualSlices(t, compDeps, []string{"react-native", "clsx", "tailwind-merge"})

	// Step 3: one install over the union; react-native is already declared.
	all := installer.NewDependencySet(utilDeps...)
	all.Add(compDeps...)

	runner := &fakeRunner{available: map[string]string{"npm": "10.5.0", "yarn": "1.22.22"}}
	deps := pkgmanager.NewInstaller(env.ProjectDir, runner, prompt.Defaults{}, sink)
	if err := deps.Install(ctx, all.Items()); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if deps.State() != pkgmanager.Succeeded {
		t.Errorf("state = %s, want succeeded", deps.State())
	}
	if len(runner.installs) != 1 {
		t.Fatalf("expected one install command, got %d", len(runner.installs))
	}
	got := runner.installs[0]
	if got.Name != "yarn" || got.Dir != env.ProjectDir {
		t.Errorf("install ran %s in %s, want yarn in %s", got.Name, got.Dir, env.ProjectDir)
	}
	assertEqualSlices(t, got.Args, []string{"add", "clsx", "tailwind-merge"})

	if !strings.Contains(out.String(), "Dependencies installed successfully") {
		t.Errorf("missing success message in output:\n%s", out.String())
	}
}

// TestInstallFailureReportsManualCommand verifies a failing package manager
// is reported with the command to run by hand and is not retried.
func TestInstallFailureReportsManualCommand(t *testing.T) {
	env := setupTestEnv(t)
	var out bytes.Buffer

	runner := &fakeRunner{available: map[string]string{"pnpm": "9.0.0"}, exitCode: 1}
	deps := pkgmanager.NewInstaller(env.ProjectDir, runner, prompt.Defaults{}, console.New(&out))

	err := deps.Install(context.Background(), []string{"clsx", "tailwind-merge"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if deps.State() != pkgmanager.Failed {
		t.Errorf("state = %s, want failed", deps.State())
	}
	if len(runner.installs) != 1 {
		t.Errorf("expected exactly one install attempt, got %d", len(runner.installs))
	}
	if !strings.Contains(out.String(), "pnpm add clsx tailwind-merge") {
		t.Errorf("manual command missing from output:\n%s", out.String())
	}
}
