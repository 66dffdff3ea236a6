package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ResolvedModule is a module selected by the dependency resolver for one configuration.
type ResolvedModule struct {
	Coordinate ModuleCoordinate
	Version    string

	// Dependents lists the modules that pulled this one into the graph.
	// It is informational only; locking never looks at it.
	Dependents []ModuleCoordinate
}

// NewResolvedModule validates and creates a ResolvedModule.
func NewResolvedModule(group, module, version string) (ResolvedModule, error) {
	c, err := NewModuleCoordinate(group, module)
	if err != nil {
		return ResolvedModule{}, err
	}
	if err := ValidateVersion(version); err != nil {
		return ResolvedModule{}, zerr.With(err, "coordinate", c.String())
	}
	return ResolvedModule{Coordinate: c, Version: version}, nil
}

// ParseResolvedModule parses the "group:module:version" notation.
func ParseResolvedModule(s string) (ResolvedModule, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return ResolvedModule{}, zerr.With(zerr.Wrap(ErrInvalidResolvedModule, s), "module", s)
	}
	return NewResolvedModule(parts[0], parts[1], parts[2])
}

// String returns the "group:module:version" notation.
func (m ResolvedModule) String() string {
	return m.Coordinate.String() + ":" + m.Version
}

// DependencyConstraint pins the resolver to an exact version of a module.
// Constraints are only ever derived from lock entries.
type DependencyConstraint struct {
	Coordinate ModuleCoordinate
	Version    string
}

// String returns the "group:module:version" notation.
func (c DependencyConstraint) String() string {
	return c.Coordinate.String() + ":" + c.Version
}
