package locking

import (
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// Selector maps configurations to providers according to the project settings,
// so callers never branch on whether locking is enabled.
type Selector struct {
	settings  *domain.LockingSettings
	providers map[domain.LockMode]*Provider
}

// NewSelector creates a Selector sharing one store between all configurations.
func NewSelector(
	settings *domain.LockingSettings,
	store ports.LockStore,
	policy UpdatePolicy,
	tracer ports.Tracer,
	logger ports.Logger,
) *Selector {
	return &Selector{
		settings: settings,
		providers: map[domain.LockMode]*Provider{
			domain.LockModeStrict:  NewProvider(store, domain.LockModeStrict, policy, tracer, logger),
			domain.LockModeLenient: NewProvider(store, domain.LockModeLenient, policy, tracer, logger),
		},
	}
}

// For returns the provider of a configuration: a Provider bound to its
// enforcement mode if it participates in locking, NoOp otherwise.
func (s *Selector) For(configuration string) ports.LockingProvider {
	cs := s.settings.For(configuration)
	if !cs.Enabled {
		return NoOp
	}
	if p, ok := s.providers[cs.Mode]; ok {
		return p
	}
	return s.providers[domain.LockModeStrict]
}

// Participates reports whether a configuration is locked.
func (s *Selector) Participates(configuration string) bool {
	return s.settings.For(configuration).Enabled
}

// Provider returns the concrete provider of a participating configuration.
func (s *Selector) Provider(configuration string) (*Provider, bool) {
	if p, ok := s.For(configuration).(*Provider); ok {
		return p, true
	}
	return nil, false
}
