package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/natively-ui/natively/internal/console"
	"github.com/natively-ui/natively/internal/manifest"
	"github.com/natively-ui/natively/internal/platform"
	"github.com/natively-ui/natively/internal/registry"
	"github.com/natively-ui/natively/internal/scaffold"
)

// UtilityName is the name of the shared utility module.
const UtilityName = "utils"

// FallbackComponents is listed when the catalog cannot be loaded.
var FallbackComponents = []string{"button"}

// DefaultBaseline is the dependency set every component implicitly needs:
// the packages the utility module's class-name helper imports.
var DefaultBaseline = []string{"clsx", "tailwind-merge"}

// Fetcher is the registry surface the installer depends on.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (*registry.Catalog, error)
	FetchArtifact(ctx context.Context, relPath string) (string, error)
}

// Installer writes registry components into a project.
type Installer struct {
	fetcher         Fetcher
	sink            console.Sink
	logger          *log.Logger
	baseline        []string
	utilityFallback bool

	catalog *registry.Catalog
}

// Option configures an Installer.
type Option func(*Installer)

// WithBaseline replaces the baseline dependency set.
func WithBaseline(deps []string) Option {
	return func(in *Installer) {
		in.baseline = slices.Clone(deps)
	}
}

// WithUtilityFallback allows InstallUtility to write the built-in utility
// module when the registry copy cannot be fetched.
func WithUtilityFallback(enabled bool) Option {
	return func(in *Installer) {
		in.utilityFallback = enabled
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(in *Installer) {
		in.logger = l
	}
}

// New creates an Installer that reports progress to sink.
func New(fetcher Fetcher, sink console.Sink, opts ...Option) *Installer {
	in := &Installer{
		fetcher:  fetcher,
		sink:     sink,
		logger:   console.NopLogger(),
		baseline: slices.Clone(DefaultBaseline),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// loadCatalog fetches the catalog once per Installer. Failures are not
// remembered, so a later call retries the fetch.
func (in *Installer) loadCatalog(ctx context.Context) (*registry.Catalog, error) {
	if in.catalog != nil {
		return in.catalog, nil
	}
	c, err := in.fetcher.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	in.catalog = c
	return c, nil
}

// Catalog returns the component catalog, or an error when the registry
// index cannot be fetched or parsed.
func (in *Installer) Catalog(ctx context.Context) (*registry.Catalog, error) {
	return in.loadCatalog(ctx)
}

// ListComponents returns the names of all available components. When the
// catalog cannot be loaded it warns and returns FallbackComponents.
func (in *Installer) ListComponents(ctx context.Context) []string {
	c, err := in.loadCatalog(ctx)
	if err != nil {
		in.sink.Warn("Could not load the component list (%v). Falling back to: %s", err, strings.Join(FallbackComponents, ", "))
		return slices.Clone(FallbackComponents)
	}
	return c.Names()
}

// ComponentMetadata looks up name in the catalog. A catalog that cannot be
// loaded is reported as an error event and the component treated as absent.
func (in *Installer) ComponentMetadata(ctx context.Context, name string) (manifest.Component, bool) {
	c, err := in.loadCatalog(ctx)
	if err != nil {
		in.sink.Error("Could not load metadata for %s: %v", name, err)
		return manifest.Component{}, false
	}
	return c.Lookup(name)
}

// InstallComponent writes <targetDir>/<name>.tsx (and <name>.types.ts when
// the registry has one) and returns the component's declared dependencies
// followed by the baseline set, without duplicates.
func (in *Installer) InstallComponent(ctx context.Context, name, targetDir string) ([]string, error) {
	meta, ok := in.ComponentMetadata(ctx, name)
	if !ok {
		return nil, &UnknownComponentError{Name: name, Available: in.knownNames()}
	}

	if err := in.ensureDir(targetDir); err != nil {
		return nil, err
	}

	body, err := in.fetcher.FetchArtifact(ctx, registry.ComponentPath(name))
	if err != nil {
		return nil, err
	}
	if err := in.writeFile(filepath.Join(targetDir, name+".tsx"), body); err != nil {
		return nil, err
	}

	if err := in.installTypes(ctx, name, targetDir); err != nil {
		return nil, err
	}

	deps := NewDependencySet(meta.Dependencies...)
	deps.Add(in.baseline...)

	in.sink.Success("Component %s downloaded successfully", name)
	in.logger.Debug("component installed", "name", name, "deps", deps.Items())
	return deps.Items(), nil
}

// installTypes fetches the optional standalone type declarations of a
// component. Their absence is normal; other fetch failures are reported
// and skipped because the component body is already in place.
func (in *Installer) installTypes(ctx context.Context, name, targetDir string) error {
	body, err := in.fetcher.FetchArtifact(ctx, registry.ComponentTypesPath(name))
	switch {
	case registry.IsNotFound(err):
		in.sink.Info("No separate types file found for %s", name)
		return nil
	case err != nil:
		in.sink.Warn("Could not fetch types for %s (%v); installed without them", name, err)
		return nil
	}
	return in.writeFile(filepath.Join(targetDir, name+".types.ts"), body)
}

// InstallUtility writes the shared utility module to <targetDir>/utils.ts
// and returns the baseline dependencies it needs. If the fetch fails and
// the utility fallback is enabled, the built-in module is written instead
// and a warning says so.
func (in *Installer) InstallUtility(ctx context.Context, targetDir string) ([]string, error) {
	if err := in.ensureDir(targetDir); err != nil {
		return nil, err
	}

	src := registry.UtilityPath(UtilityName)
	dest := filepath.Join(targetDir, UtilityName+".ts")

	body, err := in.fetcher.FetchArtifact(ctx, src)
	builtin := false
	if err != nil {
		if !in.utilityFallback {
			return nil, err
		}
		in.sink.Warn("Could not fetch %s (%v). Writing the built-in utility module instead", src, err)
		out, renderErr := scaffold.Render(UtilityName+".ts", scaffold.NewData(src))
		if renderErr != nil {
			return nil, fmt.Errorf("rendering built-in utility module: %w", renderErr)
		}
		body = string(out)
		builtin = true
	}

	if err := in.writeFile(dest, body); err != nil {
		return nil, err
	}

	if builtin {
		in.sink.Warn("%s is the built-in version, not the registry copy", dest)
	} else {
		in.sink.Success("Utility %s downloaded successfully", UtilityName)
	}
	return NewDependencySet(in.baseline...).Items(), nil
}

// InstallAll installs every catalog component in order and returns the
// union of their dependencies. A catalog that cannot be loaded fails the
// run before anything is written. The first component failure stops the
// run and is returned as a *BatchError; components already written stay
// on disk.
func (in *Installer) InstallAll(ctx context.Context, targetDir string) ([]string, error) {
	catalog, err := in.loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading component catalog: %w", err)
	}
	deps := NewDependencySet()
	var completed []string

	for _, name := range catalog.Names() {
		got, err := in.InstallComponent(ctx, name, targetDir)
		if err != nil {
			return nil, &BatchError{Component: name, Completed: completed, Err: err}
		}
		deps.Add(got...)
		completed = append(completed, name)
	}

	return deps.Items(), nil
}

func (in *Installer) knownNames() []string {
	if in.catalog == nil {
		return nil
	}
	return in.catalog.Names()
}

func (in *Installer) ensureDir(dir string) error {
	created, err := platform.EnsureDir(dir)
	if err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	if created {
		in.sink.Info("Created directory: %s", dir)
	}
	return nil
}

func (in *Installer) writeFile(path, body string) error {
	if err := platform.WriteFileAtomic(path, []byte(body), platform.FilePerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	in.sink.Success("Created file: %s", path)
	return nil
}
