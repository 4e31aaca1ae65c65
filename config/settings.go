package config

import (
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// Settings is the configuration passed to every command: environment,
// optional config file and command-line overrides combined.
type Settings struct {
	Environment Environment
	File        FileConfig
}

// Overrides carries command-line flags that take precedence over the file.
type Overrides struct {
	ConfigPath string
	Registry   string
	Sequential bool
	Timeout    time.Duration
}

// NewSettings combines env with the config file found at overrides.ConfigPath
// (or the default locations) and applies the overrides. A missing default
// config file is not an error; an explicit one is.
func NewSettings(env *Environment, overrides Overrides) (*Settings, error) {
	settings := &Settings{Environment: *env}

	path := overrides.ConfigPath
	if path == "" {
		if found, err := FindConfigFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		logger.Debugf("Using config file: %s", path)
		file, err := Load(path)
		if err != nil {
			return nil, err
		}
		settings.File = *file
	}

	if overrides.Registry != "" {
		settings.Environment.Registry = overrides.Registry
	}
	if overrides.Sequential {
		settings.File.Sequential = true
	}
	if overrides.Timeout > 0 {
		settings.File.Timeout = overrides.Timeout
	}
	return settings, nil
}

// Registries returns the primary registry followed by the fallback mirrors
// and the configured extra mirrors.
func (s *Settings) Registries() entities.RegistryList {
	primary := s.Environment.Registry
	if primary == "" {
		primary = entities.DefaultRegistry
	}
	fallbacks := append(entities.FallbackRegistries(), s.File.Registries...)
	return entities.NewRegistryList(primary, fallbacks...)
}

// VersionQuery builds the lookup for packageName.
func (s *Settings) VersionQuery(packageName string) entities.VersionQuery {
	defaultVersion := s.File.DefaultVersion
	if defaultVersion == "" {
		defaultVersion = entities.DefaultLeaferVersion
	}
	timeout := s.File.Timeout
	if timeout <= 0 {
		timeout = entities.DefaultLookupTimeout
	}
	return entities.VersionQuery{
		PackageName:    packageName,
		Registries:     s.Registries(),
		DefaultVersion: defaultVersion,
		Timeout:        timeout,
		Sequential:     s.File.Sequential,
	}
}

// RenderOptions builds the template render options.
func (s *Settings) RenderOptions() entities.RenderOptions {
	strategy, err := entities.ParseMergeStrategy(s.File.MergeStrategy)
	if err != nil {
		strategy = entities.MergeAlternating
	}
	return entities.RenderOptions{
		MergeStrategy: strategy,
		TemplatesDir:  s.File.TemplatesDir,
	}
}

// Messages returns the user-facing strings for the shell locale.
func (s *Settings) Messages() entities.Messages {
	return entities.MessagesFor(entities.SelectLocale(s.Environment.ShellLocale()))
}
