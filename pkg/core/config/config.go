package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tcerror "github.com/msto63/textcase/foundation/core/error"
	tclog "github.com/msto63/textcase/foundation/core/log"
	"github.com/msto63/textcase/pkg/textcase"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "TEXTCASE_CONFIG"

// MaxWorkers bounds convert.workers
const MaxWorkers = 256

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Cache      CacheConfig      `toml:"cache" yaml:"cache"`
	Random     RandomConfig     `toml:"random" yaml:"random"`
	Inflection InflectionConfig `toml:"inflection" yaml:"inflection"`
	Convert    ConvertConfig    `toml:"convert" yaml:"convert"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// CacheConfig controls memoization of conversions
type CacheConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// RandomConfig holds random string settings
type RandomConfig struct {
	DefaultLength int `toml:"default_length" yaml:"default_length"`
}

// InflectionConfig holds per-word inflection exceptions
type InflectionConfig struct {
	Plural      map[string]string `toml:"plural" yaml:"plural"`
	Singular    map[string]string `toml:"singular" yaml:"singular"`
	Uncountable []string          `toml:"uncountable" yaml:"uncountable"`
}

// ConvertConfig holds defaults for the convert command
type ConvertConfig struct {
	DefaultFormat string `toml:"default_format" yaml:"default_format"`
	Workers       int    `toml:"workers" yaml:"workers"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{
		Cache: CacheConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything other than .yaml or .yml is read as TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tcerror.WrapWithCode(err, tcerror.CodeMissingConfig, "config file not found").
				WithDetail("path", path).
				WithOperation("config.Load")
		}
		return nil, tcerror.WrapWithCode(err, tcerror.CodeIO, "failed to read config").
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	// Decode over the defaults so omitted keys keep their default value
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, tcerror.WrapWithCode(err, tcerror.CodeConfigError, "failed to parse config").
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the TEXTCASE_CONFIG environment
// variable or the first default location that exists. When nothing is
// found it returns a MISSING_CONFIG error.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = findDefault(DefaultPaths())
	}

	if path == "" {
		return nil, tcerror.New("no config file found, set TEXTCASE_CONFIG or create textcase.toml").
			WithCode(tcerror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./textcase.toml",
		"./textcase.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "textcase", "config.toml"))
	}
	return paths
}

func findDefault(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Random.DefaultLength == 0 {
		c.Random.DefaultLength = 6
	}

	if c.Convert.DefaultFormat == "" {
		c.Convert.DefaultFormat = textcase.FormatSlug.String()
	}
	if c.Convert.Workers == 0 {
		c.Convert.Workers = 4
	}
}

// Validate checks every value and reports the first problem as an
// INVALID_CONFIG error naming the offending key.
func (c *Config) Validate() error {
	if _, err := tclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := tclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if c.Random.DefaultLength < 1 {
		return invalid("random.default_length", c.Random.DefaultLength, nil)
	}
	if _, err := textcase.ParseFormat(c.Convert.DefaultFormat); err != nil {
		return invalid("convert.default_format", c.Convert.DefaultFormat, err)
	}
	if c.Convert.Workers < 1 || c.Convert.Workers > MaxWorkers {
		return invalid("convert.workers", c.Convert.Workers, nil)
	}
	for word, plural := range c.Inflection.Plural {
		if word == "" || plural == "" {
			return invalid("inflection.plural", word, nil)
		}
	}
	for word, singular := range c.Inflection.Singular {
		if word == "" || singular == "" {
			return invalid("inflection.singular", word, nil)
		}
	}
	return nil
}

// DefaultFormat returns the parsed convert.default_format
func (c *Config) DefaultFormat() textcase.Format {
	f, err := textcase.ParseFormat(c.Convert.DefaultFormat)
	if err != nil {
		return textcase.FormatSlug
	}
	return f
}

// ConverterConfig translates the configuration into converter options
func (c *Config) ConverterConfig(logger *tclog.Logger) textcase.Config {
	return textcase.Config{
		CacheDisabled: !c.Cache.Enabled,
		RandomLength:  c.Random.DefaultLength,
		Inflector: textcase.NewInflector(textcase.InflectionConfig{
			PluralOverrides:   c.Inflection.Plural,
			SingularOverrides: c.Inflection.Singular,
			Uncountable:       c.Inflection.Uncountable,
		}),
		Logger: logger,
	}
}

func invalid(key string, value interface{}, cause error) error {
	var err *tcerror.Error
	if cause != nil {
		err = tcerror.WrapWithCode(cause, tcerror.CodeInvalidConfig, "invalid value for "+key)
	} else {
		err = tcerror.Newf("invalid value for %s: %v", key, value).WithCode(tcerror.CodeInvalidConfig)
	}
	return err.WithDetail("key", key).WithDetail("value", value).WithOperation("config.Validate")
}
