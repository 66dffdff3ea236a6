package locking

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

type noOpProvider struct{}

// NoOp is the provider of configurations that do not participate in locking.
// It has no state, never fails and never touches storage.
var NoOp ports.LockingProvider = noOpProvider{}

// FindLockedDependencies returns no constraints.
func (noOpProvider) FindLockedDependencies(context.Context, string) ([]domain.DependencyConstraint, error) {
	return nil, nil
}

// PersistResolvedDependencies discards the modules.
func (noOpProvider) PersistResolvedDependencies(context.Context, string, []domain.ResolvedModule) error {
	return nil
}
