package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields (password hash, reset token data) must never cross the
// JSON boundary; they are persisted only.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is the unique, lower-cased account identifier used for login
	// and password-reset delivery.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized; plaintext passwords are never stored.
	PasswordHash string `json:"-"`

	// Role determines which protected routes the user may access.
	Role Role `json:"role"`

	// HotelID optionally associates the account with a managed hotel.
	HotelID *int64 `json:"hotelId,omitempty"`

	// ResetTokenHash is the SHA-256 hex digest of a pending password-reset
	// secret. Present only while a reset is pending, always together with
	// ResetExpiresAt.
	ResetTokenHash *string `json:"-"`

	// ResetExpiresAt is the absolute expiry instant of the pending reset
	// secret. A reset is usable only while now < ResetExpiresAt.
	ResetExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the projection of a User that is safe to return to clients.
type PublicUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	HotelID  *int64 `json:"hotelId,omitempty"`
}

// Public returns the client-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		HotelID:  u.HotelID,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
