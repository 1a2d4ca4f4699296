package service

import (
	"context"
	"fmt"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/store"
	"github.com/redproduct/hotelkeeper/models"
)

// hotelService implements HotelService on top of a HotelRepository.
type hotelService struct {
	hotelRepository store.HotelRepository
	logger          *logger.Logger
}

// NewHotelService constructs a new HotelService.
func NewHotelService(hotelRepository store.HotelRepository, logger *logger.Logger) HotelService {
	return &hotelService{
		hotelRepository: hotelRepository,
		logger:          logger,
	}
}

// CreateHotel validates and persists a new hotel record.
//
// Name and address are required; currency and status fall back to their
// defaults when omitted and are validated against the closed value sets
// otherwise. A negative price is rejected.
func (h *hotelService) CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	if hotel.Name == "" || hotel.Address == "" {
		log.Error().Str("name", hotel.Name).Msg("invalid hotel data provided")
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if hotel.Price < 0 {
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if hotel.Currency == "" {
		hotel.Currency = models.CurrencyXOF
	}
	if !hotel.Currency.Valid() {
		log.Error().Str("devise", string(hotel.Currency)).Msg("unknown currency provided")
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if hotel.Status == "" {
		hotel.Status = models.HotelStatusActive
	}
	if !hotel.Status.Valid() {
		log.Error().Str("status", string(hotel.Status)).Msg("unknown hotel status provided")
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if hotel.Images == nil {
		hotel.Images = models.ImageList{}
	}

	createdHotel, err := h.hotelRepository.CreateHotel(ctx, hotel)
	if err != nil {
		log.Err(err).Str("name", hotel.Name).Msg("hotel creation ended with error")
		return models.Hotel{}, fmt.Errorf("hotel creation ended with error: %w", err)
	}

	return createdHotel, nil
}

// GetHotel returns a single hotel by id.
func (h *hotelService) GetHotel(ctx context.Context, hotelID int64) (models.Hotel, error) {
	hotel, err := h.hotelRepository.FindHotelByID(ctx, hotelID)
	if err != nil {
		return models.Hotel{}, fmt.Errorf("hotel lookup failed: %w", err)
	}

	return hotel, nil
}

// ListHotels returns every hotel record.
func (h *hotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels, err := h.hotelRepository.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing hotels failed: %w", err)
	}

	return hotels, nil
}

// UpdateHotel applies a partial update to a hotel record. An empty update,
// an unknown currency or status, or a negative price is rejected with
// ErrInvalidDataProvided.
func (h *hotelService) UpdateHotel(ctx context.Context, hotelID int64, update models.HotelUpdate) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if update.Currency != nil && !update.Currency.Valid() {
		log.Error().Str("devise", string(*update.Currency)).Msg("unknown currency provided")
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if update.Status != nil && !update.Status.Valid() {
		log.Error().Str("status", string(*update.Status)).Msg("unknown hotel status provided")
		return models.Hotel{}, ErrInvalidDataProvided
	}

	if update.Price != nil && *update.Price < 0 {
		return models.Hotel{}, ErrInvalidDataProvided
	}

	hotel, err := h.hotelRepository.UpdateHotel(ctx, hotelID, update)
	if err != nil {
		log.Err(err).Int64("id", hotelID).Msg("hotel update failed")
		return models.Hotel{}, fmt.Errorf("hotel update failed: %w", err)
	}

	return hotel, nil
}

// DeleteHotel removes a hotel record.
func (h *hotelService) DeleteHotel(ctx context.Context, hotelID int64) error {
	if err := h.hotelRepository.DeleteHotel(ctx, hotelID); err != nil {
		return fmt.Errorf("hotel deletion failed: %w", err)
	}

	return nil
}
