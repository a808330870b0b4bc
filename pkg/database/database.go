package database

import (
	"happy-thoughts-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens a GORM connection to the configured Postgres
// instance. Schema migration is the caller's responsibility.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// The thought->user link is a weak reference: anonymous thoughts
		// carry no user and the relation is never re-validated.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}
