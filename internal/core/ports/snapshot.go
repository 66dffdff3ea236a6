package ports

import "go.trai.ch/pin/internal/core/domain"

// ResolutionLoader reads the modules selected by the dependency resolver.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type ResolutionLoader interface {
	// Load reads a resolution snapshot file.
	Load(path string) (*domain.ResolutionSnapshot, error)
}
