// Package config loads stickering.toml through viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	stickering "github.com/SeamusWaldron/gocube_stickering"
)

// FileName is the config file looked up in the working directory and in
// ~/.stickering.
const FileName = "stickering.toml"

// EnvPrefix prefixes environment overrides, e.g. STICKERING_DATABASE_PATH.
const EnvPrefix = "STICKERING"

// Config is the full tool configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Content  ContentConfig  `mapstructure:"content" toml:"content"`
	Render   RenderConfig   `mapstructure:"render" toml:"render"`
	Builder  BuilderConfig  `mapstructure:"builder" toml:"builder"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

// DatabaseConfig configures the preset database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// ContentConfig configures the docs tree scanned for stickering definitions.
type ContentConfig struct {
	Dir        string   `mapstructure:"dir" toml:"dir"`
	Extensions []string `mapstructure:"extensions" toml:"extensions"`
	DebounceMS int      `mapstructure:"debounce_ms" toml:"debounce_ms"` // watcher quiet period
}

// RenderConfig configures the HTML preview page.
type RenderConfig struct {
	Output    string `mapstructure:"output" toml:"output"`
	ScriptURL string `mapstructure:"script_url" toml:"script_url"`
	Title     string `mapstructure:"title" toml:"title"`
}

// BuilderConfig configures mask building.
type BuilderConfig struct {
	DefaultOption string `mapstructure:"default_option" toml:"default_option"`
}

// LogConfig configures logging.
type LogConfig struct {
	JSON    bool `mapstructure:"json" toml:"json"`
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "stickering.db")

	v.SetDefault("content.dir", "docs")
	v.SetDefault("content.extensions", []string{".md", ".mdx"})
	v.SetDefault("content.debounce_ms", 250)

	v.SetDefault("render.output", "stickerings.html")
	v.SetDefault("render.script_url", "https://cdn.cubing.net/v0/js/cubing/twisty")
	v.SetDefault("render.title", "Stickerings")

	v.SetDefault("builder.default_option", string(stickering.Ignored))

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// New returns a viper instance with defaults, environment binding and, when
// found, the config file. An explicit configFile must exist.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
		return v, nil
	}

	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".stickering"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	return v, nil
}

// Load reads the configuration from configFile, or from the default search
// path when configFile is empty.
func Load(configFile string) (*Config, error) {
	v, err := New(configFile)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every default applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if _, err := stickering.ParseOption(c.Builder.DefaultOption); err != nil {
		return errors.Wrap(err, "builder.default_option")
	}
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	if c.Content.DebounceMS < 0 {
		return errors.Newf("content.debounce_ms must not be negative, got %d", c.Content.DebounceMS)
	}
	for _, ext := range c.Content.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Newf("content.extensions: %q should start with a dot", ext)
		}
	}
	return nil
}

// DefaultOption returns the configured builder default as an Option.
func (c *Config) DefaultOption() stickering.Option {
	o, _ := stickering.ParseOption(c.Builder.DefaultOption)
	return o
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// WriteDefault writes a config file holding every default. An existing file
// is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Newf("config file %s already exists", path),
				"pass --force to overwrite it")
		}
	}

	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}
