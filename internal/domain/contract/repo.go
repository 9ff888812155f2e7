package contract

import "github.com/diegoclair/friday-rota/internal/domain/entity"

// ConfigStore defines the contract for rota configuration persistence
type ConfigStore interface {
	// Load returns the stored configuration, creating the default one when none exists
	Load() (*entity.RotaConfig, error)

	// Save writes the full configuration
	Save(cfg *entity.RotaConfig) error
}
