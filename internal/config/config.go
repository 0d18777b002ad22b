package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/natively-ui/natively/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRegistryURL          = "registry_url"
	KeyFetchTimeout         = "fetch_timeout"
	KeyBaselineDependencies = "baseline_dependencies"
	KeyUtilityFallback      = "utility_fallback"
	KeyComponentsDir        = "components_dir"
	KeyUtilsDir             = "utils_dir"
	KeyPackageManager       = "package_manager"
)

// Defaults for keys that are not set anywhere.
const (
	DefaultFetchTimeout  = 15 * time.Second
	DefaultComponentsDir = "components/ui"
	DefaultUtilsDir      = "lib"
)

// DefaultBaselineDependencies are the packages every component needs for
// class-name merging (the utility module imports both).
var DefaultBaselineDependencies = []string{"clsx", "tailwind-merge"}

// Dir returns the path to the user config directory (~/.natively/).
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("CONFIG_DIR")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.natively/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file, the environment, and
// an optional .env file in projectDir. Values already present in the process
// environment win over the .env file.
func Load(projectDir string) error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyRegistryURL, branding.RegistryURL())
	viper.SetDefault(KeyFetchTimeout, DefaultFetchTimeout)
	viper.SetDefault(KeyBaselineDependencies, DefaultBaselineDependencies)
	viper.SetDefault(KeyUtilityFallback, false)
	viper.SetDefault(KeyComponentsDir, DefaultComponentsDir)
	viper.SetDefault(KeyUtilsDir, DefaultUtilsDir)
	viper.SetDefault(KeyPackageManager, "")

	if projectDir != "" {
		envFile := filepath.Join(projectDir, ".env")
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
	return nil
}

// Get returns a config value by key. Returns empty string if not set. List
// values are joined with commas, the form Set accepts.
func Get(key string) string {
	switch v := viper.Get(key).(type) {
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return viper.GetString(key)
	}
}

// Set writes a config key-value pair to the config file and applies it to
// the running process. The file keeps only the values written to it;
// defaults, environment variables and project .env values stay out.
func Set(key, value string) error {
	if key == KeyFetchTimeout {
		if _, err := ParseTimeout(value); err != nil {
			return err
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)

	_, err := os.Stat(configFile)
	switch {
	case err == nil:
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking config file %s: %w", configFile, err)
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// Keys returns every known setting key in sorted order.
func Keys() []string {
	keys := []string{
		KeyRegistryURL,
		KeyFetchTimeout,
		KeyBaselineDependencies,
		KeyUtilityFallback,
		KeyComponentsDir,
		KeyUtilsDir,
		KeyPackageManager,
	}
	sort.Strings(keys)
	return keys
}

// RegistryURL returns the base URL component artifacts are fetched from.
func RegistryURL() string {
	return strings.TrimRight(viper.GetString(KeyRegistryURL), "/")
}

// FetchTimeout returns the per-request timeout for registry fetches. A
// value that does not parse falls back to DefaultFetchTimeout.
func FetchTimeout() time.Duration {
	if d, ok := viper.Get(KeyFetchTimeout).(time.Duration); ok && d > 0 {
		return d
	}
	d, err := ParseTimeout(viper.GetString(KeyFetchTimeout))
	if err != nil {
		return DefaultFetchTimeout
	}
	return d
}

// ParseTimeout reads a fetch timeout such as "30s" or "2m". A bare number
// is taken as seconds.
func ParseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	d, err := time.ParseDuration(value)
	if n, convErr := strconv.ParseInt(value, 10, 64); convErr == nil {
		d, err = time.Duration(n)*time.Second, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid fetch timeout %q: use a duration such as 30s or a number of seconds", value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("fetch timeout must be positive, got %q", value)
	}
	return d, nil
}

// BaselineDependencies returns the packages added to every installed
// component's dependency list. A comma-separated string (as set through
// the environment or `config set`) is accepted as well as a YAML list.
func BaselineDependencies() []string {
	var out []string
	for _, item := range viper.GetStringSlice(KeyBaselineDependencies) {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// UtilityFallback reports whether a built-in utility module may be written
// when the remote one cannot be fetched.
func UtilityFallback() bool {
	return viper.GetBool(KeyUtilityFallback)
}

// ComponentsDir returns the default project-relative component directory.
func ComponentsDir() string {
	return viper.GetString(KeyComponentsDir)
}

// UtilsDir returns the project-relative directory of the utility module.
func UtilsDir() string {
	return viper.GetString(KeyUtilsDir)
}

// PackageManager returns the package manager to always install with, or ""
// to detect one per project.
func PackageManager() string {
	return strings.TrimSpace(viper.GetString(KeyPackageManager))
}
