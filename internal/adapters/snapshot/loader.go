// Package snapshot reads the modules selected by the dependency resolver.
package snapshot

import (
	"fmt"
	"os"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ResolutionLoader for YAML snapshot files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a resolution snapshot file.
func (l *Loader) Load(path string) (*domain.ResolutionSnapshot, error) {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	snapshot, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return snapshot, nil
}

// Parse decodes a resolution snapshot document.
func Parse(data []byte) (*domain.ResolutionSnapshot, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrSnapshotParseFailed, err.Error())
	}

	snapshot := &domain.ResolutionSnapshot{
		Configurations: make(map[string][]domain.ResolvedModule, len(doc.Configurations)),
	}

	for name, dtos := range doc.Configurations {
		if err := domain.ValidateConfigurationName(name); err != nil {
			return nil, err
		}

		modules := make([]domain.ResolvedModule, 0, len(dtos))
		for _, dto := range dtos {
			module, err := toResolvedModule(dto)
			if err != nil {
				err = zerr.Wrap(domain.ErrSnapshotParseFailed, fmt.Sprintf("configuration %s line %d: %s", name, dto.line, err))
				err = zerr.With(err, "configuration", name)
				return nil, zerr.With(err, "line", dto.line)
			}
			modules = append(modules, module)
		}
		snapshot.Configurations[name] = modules
	}

	return snapshot, nil
}

func toResolvedModule(dto ModuleDTO) (domain.ResolvedModule, error) {
	module, err := domain.ParseResolvedModule(dto.Module)
	if err != nil {
		return domain.ResolvedModule{}, err
	}

	for _, dependent := range dto.Dependents {
		c, err := domain.ParseModuleCoordinate(dependent)
		if err != nil {
			return domain.ResolvedModule{}, err
		}
		module.Dependents = append(module.Dependents, c)
	}
	return module, nil
}
