package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// LockingProvider is the contract the dependency resolver uses to honor and record locks.
//
//go:generate go run go.uber.org/mock/mockgen -source=locking.go -destination=mocks/mock_locking.go -package=mocks
type LockingProvider interface {
	// FindLockedDependencies returns one constraint per locked module, in coordinate order.
	// It returns an empty slice when the configuration has no lock.
	FindLockedDependencies(ctx context.Context, configuration string) ([]domain.DependencyConstraint, error)

	// PersistResolvedDependencies records the modules selected for a configuration,
	// reconciling them with the previous lock first.
	PersistResolvedDependencies(ctx context.Context, configuration string, modules []domain.ResolvedModule) error
}
