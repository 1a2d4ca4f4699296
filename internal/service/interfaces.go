package service

import (
	"context"

	"github.com/redproduct/hotelkeeper/models"
)

// AuthService owns the authentication flow: account signup, credential
// verification, session token lifecycle, and the password-reset state
// machine.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a bearer token string to a live user record.
	// A valid signature over a deleted account is rejected: existence is
	// re-checked against the store on every call.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, secret, password, passwordConfirm string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword, passwordConfirm string) (models.User, error)
}

// UserService owns admin-side user management.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req models.SignupRequest) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// HotelService owns hotel record management.
type HotelService interface {
	CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error)
	GetHotel(ctx context.Context, hotelID int64) (models.Hotel, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	UpdateHotel(ctx context.Context, hotelID int64, update models.HotelUpdate) (models.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID int64) error
}
