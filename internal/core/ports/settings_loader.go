package ports

import "go.trai.ch/pin/internal/core/domain"

// SettingsLoader defines the interface for loading the project locking settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load finds pin.yaml in cwd or one of its parents and returns its settings.
	Load(cwd string) (*domain.LockingSettings, error)
}
