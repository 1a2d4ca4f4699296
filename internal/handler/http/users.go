package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

// idFromURL parses the named numeric path parameter.
func idFromURL(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidIDParameter
	}
	return id, nil
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	utils.WriteJSON(w, models.UsersResponse{
		Status: "success",
		Data:   publicUsers,
	}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user created by admin")

	utils.WriteJSON(w, models.UserResponse{
		Status: "success",
		Data:   models.UserData{User: user.Public()},
	}, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := idFromURL(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Status: "success",
		Data:   models.UserData{User: user.Public()},
	}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromURL(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user updated by admin")

	utils.WriteJSON(w, models.UserResponse{
		Status: "success",
		Data:   models.UserData{User: user.Public()},
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromURL(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Msg("user deleted by admin")

	utils.WriteJSON(w, models.Response{
		Status:  "success",
		Message: "user deleted",
	}, http.StatusOK)
}
