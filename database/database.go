package database

import (
	"github.com/gecampus/apply-api/model"
)

// Storage defines the interface that all database implementations must
// satisfy. Handlers depend on this rather than a concrete store so tests can
// substitute a fake.
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{} // Returns *gorm.DB for GORMStore

	// Application methods
	CreateApplication(application *model.Application) error
	ListResumePaths() ([]string, error)
}
