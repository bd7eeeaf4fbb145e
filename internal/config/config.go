package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "mm-worker.config.yml"
	DefaultEnvFile    = ".env"

	// MaxPrecision bounds the digits printed after the decimal point.
	MaxPrecision = 15

	envDebug     = "MMW_DEBUG"
	envLogFormat = "MMW_LOG_FORMAT"
	envQuiet     = "MMW_QUIET"
	envFolders   = "MMW_FOLDERS"
	envPrecision = "MMW_PRECISION"
	envLogFile   = "MMW_LOG_FILE"
)

// Log formats accepted by RuntimeConfig.LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
	// EnvFile is loaded into the process environment before env overrides are
	// read. Variables that are already set win.
	EnvFile string
}

// RuntimeConfig contains the fully merged settings used by the sub-commands.
type RuntimeConfig struct {
	Debug     bool
	LogFormat string
	Quiet     bool
	Folders   []string
	Precision int
	LogFile   string
}

// Overrides captures values coming from the config file, env vars or CLI flags.
type Overrides struct {
	Debug        *bool
	LogFormat    string
	Quiet        *bool
	Folders      []string
	Precision    int
	PrecisionSet bool
	LogFile      string
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		LogFormat: LogFormatText,
		Precision: 2,
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	if l.EnvFile != "" && fileExists(l.EnvFile) {
		if err := godotenv.Load(l.EnvFile); err != nil {
			return cfg, fmt.Errorf("load %s: %w", l.EnvFile, err)
		}
	}

	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.apply(fileOv)
	}

	envOv, err := overridesFromEnv()
	if err != nil {
		return cfg, err
	}
	cfg.apply(envOv)
	cfg.apply(override)

	return cfg, nil
}

// Validate checks the merged settings.
func (c RuntimeConfig) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (got %d)", MaxPrecision, c.Precision)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q (want %s or %s)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	for _, folder := range c.Folders {
		if strings.TrimSpace(folder) == "" {
			return errors.New("folder paths cannot be empty")
		}
	}

	return nil
}

func (c *RuntimeConfig) apply(src Overrides) {
	if src.Debug != nil {
		c.Debug = *src.Debug
	}

	if src.LogFormat != "" {
		c.LogFormat = strings.ToLower(strings.TrimSpace(src.LogFormat))
	}

	if src.Quiet != nil {
		c.Quiet = *src.Quiet
	}

	if len(src.Folders) > 0 {
		c.Folders = cleanList(src.Folders)
	}

	if src.PrecisionSet {
		c.Precision = src.Precision
	}

	if src.LogFile != "" {
		c.LogFile = src.LogFile
	}
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Debug     *bool      `yaml:"debug"`
		LogFormat string     `yaml:"logFormat"`
		Quiet     *bool      `yaml:"quiet"`
		Folders   folderList `yaml:"folders"`
		Precision *int       `yaml:"precision"`
		LogFile   string     `yaml:"logFile"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	over := Overrides{
		Debug:     raw.Debug,
		LogFormat: raw.LogFormat,
		Quiet:     raw.Quiet,
		Folders:   raw.Folders,
		LogFile:   raw.LogFile,
	}

	if raw.Precision != nil {
		over.Precision = *raw.Precision
		over.PrecisionSet = true
	}

	return over, nil
}

func overridesFromEnv() (Overrides, error) {
	ov := Overrides{}

	if value := os.Getenv(envDebug); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envDebug, err)
		}
		ov.Debug = &parsed
	}

	if value := os.Getenv(envLogFormat); value != "" {
		ov.LogFormat = value
	}

	if value := os.Getenv(envQuiet); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envQuiet, err)
		}
		ov.Quiet = &parsed
	}

	if value := os.Getenv(envFolders); value != "" {
		ov.Folders = ParseFolderList(value)
	}

	if value := os.Getenv(envPrecision); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envPrecision, err)
		}
		ov.Precision = parsed
		ov.PrecisionSet = true
	}

	if value := os.Getenv(envLogFile); value != "" {
		ov.LogFile = value
	}

	return ov, nil
}

// ParseFolderList splits comma, newline or OS path-list separated folders.
func ParseFolderList(input string) []string {
	return splitOnDelimiters(input, []rune{',', '\n', '\r', os.PathListSeparator})
}

func splitOnDelimiters(input string, delims []rune) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	separator := func(r rune) bool {
		for _, d := range delims {
			if r == d {
				return true
			}
		}
		return false
	}

	return cleanList(strings.FieldsFunc(trimmed, separator))
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// folderList enables YAML fields that can be specified as a scalar or sequence.
type folderList []string

func (f *folderList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, node := range value.Content {
			out = append(out, node.Value)
		}
		*f = cleanList(out)
	case yaml.ScalarNode:
		*f = ParseFolderList(value.Value)
	default:
		return fmt.Errorf("unsupported YAML type for folders")
	}
	return nil
}
