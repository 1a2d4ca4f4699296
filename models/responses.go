package models

// Response is the uniform JSON envelope for endpoints that carry no payload.
// Status is "success" or "error"; Message is a client-safe description.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is the envelope returned by endpoints that issue a session
// token (signup, login, reset-password, update-password).
type AuthResponse struct {
	Status string   `json:"status"`
	Token  string   `json:"token"`
	Data   AuthData `json:"data"`
}

// AuthData nests the public user projection inside an auth response.
type AuthData struct {
	User PublicUser `json:"user"`
}

// UserResponse is the envelope returned by user read endpoints.
type UserResponse struct {
	Status string   `json:"status"`
	Data   UserData `json:"data"`
}

// UserData nests the public user projection inside a user response.
type UserData struct {
	User PublicUser `json:"user"`
}

// UsersResponse is the envelope returned by the admin user list endpoint.
type UsersResponse struct {
	Status string       `json:"status"`
	Data   []PublicUser `json:"data"`
}

// HotelResponse is the envelope returned by single-hotel endpoints.
type HotelResponse struct {
	Status string `json:"status"`
	Data   Hotel  `json:"data"`
}

// HotelsResponse is the envelope returned by the hotel list endpoint.
type HotelsResponse struct {
	Status string  `json:"status"`
	Data   []Hotel `json:"data"`
}
