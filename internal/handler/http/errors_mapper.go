package http

import (
	"errors"
	"net/http"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/store"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrInvalidCredentials:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrResetTokenInvalidOrExpired: http.StatusBadRequest,
	service.ErrPasswordMismatch:           http.StatusBadRequest,
	service.ErrPasswordUnchanged:          http.StatusBadRequest,
	service.ErrEmailDispatchFailed:        http.StatusInternalServerError,
	service.ErrTokenCreationFailed:        http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrForbidden:                  http.StatusForbidden,
	ErrInvalidIDParameter:         http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrHotelAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoHotelWasFound:    http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for an error: the text of
// the matched sentinel, never the full wrapped chain, so internal detail
// (query text, driver errors) does not leak through the envelope.
func messageFromError(err error, status int) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

// writeError renders err as the uniform error envelope
// {"status":"error","message":...} with the status code from errorStatusMap.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.Response{
		Status:  "error",
		Message: messageFromError(err, status),
	}, status)
}
