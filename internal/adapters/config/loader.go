// Package config provides the settings loader for pin.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the pin.yaml schema version understood by this loader.
const SupportedVersion = "1"

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds pin.yaml in cwd or one of its parents and returns its settings.
func (l *Loader) Load(cwd string) (*domain.LockingSettings, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var pinfile Pinfile
	if err := readAndUnmarshalYAML(configPath, &pinfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if pinfile.Version != "" && pinfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unsupported %s version %q, reading it as version %s",
			domain.ConfigFileName, pinfile.Version, SupportedVersion))
	}

	settings, err := toSettings(filepath.Dir(configPath), &pinfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return settings, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, cwd), "cwd", cwd)
}

func toSettings(root string, pinfile *Pinfile) (*domain.LockingSettings, error) {
	mode, err := domain.ParseLockMode(pinfile.Mode)
	if err != nil {
		return nil, err
	}

	locksDir := pinfile.LocksDir
	if locksDir == "" {
		locksDir = domain.DefaultLocksDirName
	}

	settings := &domain.LockingSettings{
		Root:           filepath.Clean(root),
		LocksDir:       locksDir,
		Enabled:        boolOr(pinfile.Enabled, true),
		Mode:           mode,
		Configurations: make(map[string]domain.ConfigurationSettings, len(pinfile.Configurations)),
	}

	for name, dto := range pinfile.Configurations {
		if err := domain.ValidateConfigurationName(name); err != nil {
			return nil, err
		}

		cs := domain.ConfigurationSettings{Enabled: true}
		if dto != nil {
			cs.Enabled = boolOr(dto.Enabled, true)
			if dto.Mode != "" {
				m, err := domain.ParseLockMode(dto.Mode)
				if err != nil {
					return nil, zerr.With(err, "configuration", name)
				}
				cs.Mode = m
			}
		}
		settings.Configurations[name] = cs
	}

	return settings, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
