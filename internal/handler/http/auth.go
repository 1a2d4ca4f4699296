package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

// writeAuthResponse issues a fresh session token for user and renders the
// token-bearing envelope. Shared by every endpoint that logs the user in:
// signup, login, reset-password and update-password.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, statusCode int) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Status: "success",
		Token:  token.SignedString,
		Data:   models.AuthData{User: user.Public()},
	}, statusCode)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser, http.StatusOK)
}

// logout acknowledges the client's intent to drop its session. Tokens are
// stateless and remain cryptographically valid until expiry; the client is
// expected to discard its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Response{
		Status:  "success",
		Message: "logged out",
	}, http.StatusOK)
}

// forgotPassword starts the password-reset flow. The response is identical
// for registered and unregistered emails, so the endpoint cannot be used to
// probe which accounts exist. Only a mail delivery failure surfaces as an
// error.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Status:  "success",
		Message: "if that email is registered, a reset link has been sent",
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	secret := chi.URLParam(r, "secret")

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.ResetPassword(ctx, secret, req.Password, req.PasswordConfirm)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("password reset completed")

	h.writeAuthResponse(w, r, user, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.UpdatePassword(ctx, currentUser.UserID, req.CurrentPassword, req.NewPassword, req.PasswordConfirm)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("password updated")

	h.writeAuthResponse(w, r, user, http.StatusOK)
}

// me returns the public projection of the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Status: "success",
		Data:   models.UserData{User: user.Public()},
	}, http.StatusOK)
}
