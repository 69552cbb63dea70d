package store

import (
	"database/sql"

	"github.com/avoronin/go-item-vault/internal/logger"
	"github.com/avoronin/go-item-vault/migrations"
)

// DB wraps the shared *sql.DB handle injected into every repository.
// A single pooled connection set is shared by all repositories; migrations
// run against the same handle at startup.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
