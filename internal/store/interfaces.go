package store

import (
	"context"
	"io"
	"time"

	"github.com/redproduct/hotelkeeper/models"
)

// UserRepository is the persistence contract for user accounts.
// All operations are single atomic statements; consistency is delegated to
// the database, no app-level locking is layered on top.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByResetToken matches a pending reset by token hash and a
	// still-open expiry window in one read, so a secret cannot expire
	// between lookup and use.
	FindUserByResetToken(ctx context.Context, tokenHash string, now time.Time) (models.User, error)

	// SetResetToken overwrites any pending reset secret (last write wins).
	SetResetToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error

	// UpdatePassword stores a new password hash and clears both reset
	// fields in the same statement.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// HotelRepository is the persistence contract for hotel records.
type HotelRepository interface {
	CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error)
	FindHotelByID(ctx context.Context, hotelID int64) (models.Hotel, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	UpdateHotel(ctx context.Context, hotelID int64, update models.HotelUpdate) (models.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID int64) error
}

// ImageFileStorage persists uploaded hotel images outside the database and
// returns the relative path they are served from.
type ImageFileStorage interface {
	SaveImage(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Root reports the directory images are written to, for static serving.
	Root() string
}
