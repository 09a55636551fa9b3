package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shawn-sandy/acss/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "acss.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete acss.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Build contains static build configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Theme contains theming layer configuration.
	Theme ThemeConfig `json:"theme,omitempty"`

	// Publish contains publish target configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server configuration.
type PreviewConfig struct {
	// Host is the bind host.
	Host string `json:"host,omitempty"`

	// Port is the bind port.
	Port int `json:"port,omitempty"`

	// Open controls opening a browser on start.
	Open bool `json:"open,omitempty"`
}

// BuildConfig contains static build configuration.
type BuildConfig struct {
	// Output is the output directory for the built gallery.
	Output string `json:"output,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// ThemeConfig contains theming layer configuration.
type ThemeConfig struct {
	// Stylesheets are CSS files linked into every gallery page and
	// watched by the preview server.
	Stylesheets []string `json:"stylesheets,omitempty"`
}

// PublishConfig contains publish target configuration.
type PublishConfig struct {
	// Dir is a local directory target.
	Dir string `json:"dir,omitempty"`

	// Bucket is an S3 bucket target.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Name: "acss",
		Preview: PreviewConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").Wrap(err)
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").Wrap(err)
	}
	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find walks up from dir looking for acss.json and loads it. When no file
// exists anywhere up the tree, the defaults are returned.
func Find(dir string) (*Config, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New("E100").Wrap(err)
	}
	for {
		path := filepath.Join(current, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return Default(), nil
		}
		current = parent
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E102").WithDetailf("preview.port %d is out of range", c.Preview.Port)
	}
	if c.Build.Output == "" {
		return errors.New("E102").WithDetail("build.output must not be empty")
	}
	for _, s := range c.Theme.Stylesheets {
		if s == "" {
			return errors.New("E102").WithDetail("theme.stylesheets entries must not be empty")
		}
	}
	return nil
}

// Dir returns the directory the config was loaded from, or the working
// directory for defaults.
func (c *Config) Dir() string {
	if c.configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "."
		}
		return wd
	}
	return filepath.Dir(c.configPath)
}

// Addr returns the preview server bind address.
func (c *Config) Addr() string {
	host := c.Preview.Host
	if host == "" {
		host = DefaultHost
	}
	port := c.Preview.Port
	if port == 0 {
		port = DefaultPort
	}
	return host + ":" + strconv.Itoa(port)
}

// OutputDir returns the build output directory resolved against the
// config's directory.
func (c *Config) OutputDir() string {
	out := c.Build.Output
	if out == "" {
		out = DefaultOutput
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(c.Dir(), out)
}

func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
}
