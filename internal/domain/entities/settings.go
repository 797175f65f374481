package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnvVar points at an explicit configuration file.
	ConfigEnvVar = "FUZZKEEPER_CONFIG"

	defaultReposDir          = "repos"
	defaultFuzzerBinary      = "medusa"
	defaultFuzzerTimeout     = 3600
	defaultResumeConcurrency = 4
)

// Settings is the top-level configuration for fuzzkeeper.
type Settings struct {
	ReposDir string         `yaml:"repos_dir" toml:"repos_dir"`
	Fuzzer   FuzzerSettings `yaml:"fuzzer"    toml:"fuzzer"`
	Sync     SyncSettings   `yaml:"sync"      toml:"sync"`
	Resume   ResumeSettings `yaml:"resume"    toml:"resume"`
}

// FuzzerSettings describes how the external fuzzer is invoked.
type FuzzerSettings struct {
	Binary     string   `yaml:"binary"      toml:"binary"`
	Args       []string `yaml:"args"        toml:"args"`
	Timeout    int      `yaml:"timeout"     toml:"timeout"`     // seconds, passed as --timeout
	OutputFile string   `yaml:"output_file" toml:"output_file"` // relative to the checkout; empty discards output
}

// SyncSettings configures cloning and dependency installation.
type SyncSettings struct {
	Token               string            `yaml:"token"                toml:"token"` // Inline, ${ENV_VAR}, or file path
	Username            string            `yaml:"username"             toml:"username"`
	InstallDependencies *bool             `yaml:"install_dependencies" toml:"install_dependencies"`
	Installers          map[string]string `yaml:"installers"           toml:"installers"` // manifest file -> command line
}

// ResumeSettings bounds the resume workflow.
type ResumeSettings struct {
	Concurrency int `yaml:"concurrency" toml:"concurrency"`
}

// ShouldInstallDependencies defaults to true when unset.
func (s SyncSettings) ShouldInstallDependencies() bool {
	return s.InstallDependencies == nil || *s.InstallDependencies
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	settings := &Settings{}
	applyDefaults(settings)
	return settings
}

// NewSettings reads and parses a YAML or TOML configuration file, chosen by extension.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, decodeErr := toml.Decode(string(data), &settings); decodeErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", decodeErr)
		}
	default:
		if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	applyDefaults(&settings)
	settings.Sync.Token = resolveToken(settings.Sync.Token)

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings resolves the configuration file from FUZZKEEPER_CONFIG or the
// standard locations, falling back to defaults when none exists.
func LoadSettings() (*Settings, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Infof("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".fuzzkeeper.yaml",
		".fuzzkeeper.yml",
		".fuzzkeeper.toml",
		"fuzzkeeper.yaml",
		"fuzzkeeper.yml",
		"fuzzkeeper.toml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func applyDefaults(settings *Settings) {
	if settings.ReposDir == "" {
		settings.ReposDir = defaultReposDir
	}
	if settings.Fuzzer.Binary == "" {
		settings.Fuzzer.Binary = defaultFuzzerBinary
	}
	if settings.Fuzzer.Args == nil {
		settings.Fuzzer.Args = []string{"fuzz"}
	}
	if settings.Fuzzer.Timeout == 0 {
		settings.Fuzzer.Timeout = defaultFuzzerTimeout
	}
	if settings.Sync.Installers == nil {
		settings.Sync.Installers = map[string]string{
			"package.json": "npm install",
			"foundry.toml": "forge install",
		}
	}
	if settings.Resume.Concurrency == 0 {
		settings.Resume.Concurrency = defaultResumeConcurrency
	}
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if strings.TrimSpace(settings.Fuzzer.Binary) == "" {
		return errors.New("fuzzer.binary is required")
	}
	if settings.Fuzzer.Timeout < 0 {
		return fmt.Errorf("fuzzer.timeout must be positive, got %d", settings.Fuzzer.Timeout)
	}
	if settings.Resume.Concurrency < 0 {
		return fmt.Errorf("resume.concurrency must be positive, got %d", settings.Resume.Concurrency)
	}
	for manifest, command := range settings.Sync.Installers {
		if len(strings.Fields(command)) == 0 {
			return fmt.Errorf("sync.installers[%q] has an empty command", manifest)
		}
	}
	return nil
}
