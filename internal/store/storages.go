package store

import (
	"context"

	"github.com/redproduct/hotelkeeper/internal/config"
	"github.com/redproduct/hotelkeeper/internal/logger"
)

// Storages bundles every persistence backend the application uses.
type Storages struct {
	DB              *DB
	UserRepository  UserRepository
	HotelRepository HotelRepository
	ImageStorage    ImageFileStorage
}

// NewStorages connects to the database, applies pending migrations, and
// wires all repositories. Any failure here is startup-fatal for the caller.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	imageStorage, err := NewImageFileStorage(cfg.Files, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:              db,
		UserRepository:  NewUserRepository(db, log),
		HotelRepository: NewHotelRepository(db, log),
		ImageStorage:    imageStorage,
	}, nil
}
