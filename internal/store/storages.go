package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
)

// Storages bundles the repositories of all entities sharing one database
// connection. It is built once at startup and injected into the service layer.
type Storages struct {
	UserRepository     UserRepository
	PeopleRepository   PeopleRepository
	PlanetRepository   PlanetRepository
	FavoriteRepository FavoriteRepository

	db *DB
}

// NewStorages opens the database described by cfg, applies migrations unless
// disabled and constructs every repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if !cfg.DB.SkipMigrations {
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
		logger.Info().Str("dialect", db.Dialect()).Msg("database migrations applied")
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB constructs every repository on an already opened db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		PeopleRepository:   NewPeopleRepository(db, logger),
		PlanetRepository:   NewPlanetRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
		db:                 db,
	}
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
