package locking

import (
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// UpdatePolicy is an explicit request to change locked versions during a persist.
// The zero value permits no drift.
type UpdatePolicy struct {
	// WriteAll replaces every lock wholesale without reconciling it.
	WriteAll bool
	// Modules lists "group:module" or "group:*" selectors whose drift is permitted.
	Modules []string
}

// NewUpdatePolicy validates the selectors and creates an UpdatePolicy.
func NewUpdatePolicy(writeAll bool, selectors []string) (UpdatePolicy, error) {
	for _, sel := range selectors {
		if err := validateSelector(sel); err != nil {
			return UpdatePolicy{}, err
		}
	}
	return UpdatePolicy{WriteAll: writeAll, Modules: selectors}, nil
}

// validateSelector accepts "group:module" and "group:*".
func validateSelector(sel string) error {
	if _, err := domain.ParseModuleCoordinate(sel); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidUpdateSelector, sel), "selector", sel)
	}
	return nil
}

// Allows reports whether drift on the coordinate is permitted.
func (p UpdatePolicy) Allows(c domain.ModuleCoordinate) bool {
	if p.WriteAll {
		return true
	}
	for _, sel := range p.Modules {
		group, module, _ := strings.Cut(sel, ":")
		if group != c.Group.String() {
			continue
		}
		if module == "*" || module == c.Module.String() {
			return true
		}
	}
	return false
}

// IsZero reports whether the policy permits no drift at all.
func (p UpdatePolicy) IsZero() bool {
	return !p.WriteAll && len(p.Modules) == 0
}
