package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	HotelID  *int64 `json:"hotelId,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of PATCH /api/auth/reset-password/{secret}.
// The reset secret itself travels in the URL path.
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdatePasswordRequest is the body of PATCH /api/auth/update-password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdateUserRequest is the body of PATCH /api/auth/users/{id}.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
	HotelID  *int64  `json:"hotelId,omitempty"`
}

// UserUpdate carries a validated partial update for a user record.
// Nil fields are left unchanged.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	HotelID  *int64  `json:"hotelId,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Role == nil && u.HotelID == nil
}

// HotelUpdate carries a partial update for a hotel record.
// Nil fields are left unchanged.
type HotelUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Address     *string      `json:"address,omitempty"`
	Currency    *Currency    `json:"devise,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	Images      *ImageList   `json:"images,omitempty"`
	ContactInfo *string      `json:"contactInfo,omitempty"`
	Status      *HotelStatus `json:"status,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u HotelUpdate) Empty() bool {
	return u.Name == nil && u.Address == nil && u.Currency == nil &&
		u.Price == nil && u.Images == nil && u.ContactInfo == nil && u.Status == nil
}
