package http

import (
	"context"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/store"
)

// DBPinger is the slice of the database handle the health endpoint needs.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services

	// images persists uploaded hotel photos and tells us where to serve
	// them from.
	images store.ImageFileStorage

	// db is pinged by the health endpoint.
	db DBPinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, images store.ImageFileStorage, db DBPinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		images:   images,
		db:       db,
		logger:   logger,
	}
}
