package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// Environment holds the variables read from the process environment.
type Environment struct {
	Registry   string `env:"npm_config_registry"   envDefault:"https://registry.npmjs.org/"`
	UserAgent  string `env:"npm_config_user_agent"`
	LcAll      string `env:"LC_ALL"`
	LcMessages string `env:"LC_MESSAGES"`
	Lang       string `env:"LANG"`
	Debug      bool   `env:"DEBUG"`
}

// FileConfig is the optional YAML configuration file.
type FileConfig struct {
	Registries     []string      `yaml:"registries"`      // Mirrors tried after the built-in fallbacks
	DefaultVersion string        `yaml:"default_version"` // Used when every lookup fails
	Timeout        time.Duration `yaml:"timeout"`         // Per-attempt lookup timeout, e.g. "5s"
	Sequential     bool          `yaml:"sequential"`      // Try registries one by one instead of racing
	MergeStrategy  string        `yaml:"merge_strategy"`  // "alternating" or "template-wins"
	TemplatesDir   string        `yaml:"templates_dir"`   // Replaces the bundled templates
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// ParseEnvironment reads the Environment from the process environment.
func ParseEnvironment() (*Environment, error) {
	var environment Environment
	if err := env.Parse(&environment); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &environment, nil
}

// ShellLocale returns the first non-empty locale variable, LC_ALL first.
func (e *Environment) ShellLocale() string {
	for _, value := range []string{e.LcAll, e.LcMessages, e.Lang} {
		if value != "" {
			return value
		}
	}
	return ""
}

// Load reads and parses a configuration file, expanding ${ENV_VAR} references.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	expanded := expandEnv(string(data))

	var cfg FileConfig
	if unmarshalErr := yaml.Unmarshal([]byte(expanded), &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
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
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".create-leafer.yaml",
		".create-leafer.yml",
		"create-leafer.yaml",
		"create-leafer.yml",
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

// expandEnv replaces ${VAR} references with their values. Unset variables
// expand to an empty string.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks the configured values.
func validate(cfg *FileConfig) error {
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	if _, err := entities.ParseMergeStrategy(cfg.MergeStrategy); err != nil {
		return fmt.Errorf("merge_strategy: %w", err)
	}
	return nil
}
