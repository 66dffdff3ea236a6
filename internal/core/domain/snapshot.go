package domain

import (
	"maps"
	"slices"
)

// ResolutionSnapshot holds the modules the resolver selected, per configuration.
type ResolutionSnapshot struct {
	Configurations map[string][]ResolvedModule
}

// Names returns the configuration names in sorted order.
func (s *ResolutionSnapshot) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Configurations))
}

// Modules returns the resolved modules of a configuration.
func (s *ResolutionSnapshot) Modules(configuration string) ([]ResolvedModule, bool) {
	if s == nil {
		return nil, false
	}
	m, ok := s.Configurations[configuration]
	return m, ok
}
