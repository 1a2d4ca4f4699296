// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, role restriction, logging, tracing and
// error-to-status mapping are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// and resolves it to a live user record via
// [service.AuthService.Authenticate] — signature and expiry are verified and
// the referenced account is re-read from the store, so a token minted for a
// since-deleted user is rejected. On success the full [models.User] is
// stored in the request context under [utils.UserCtxKey] before delegating
// to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, malformed, carries a wrong issuer, or references
//     a user that no longer exists ([service.ErrTokenIsExpiredOrInvalid] —
//     the cases are indistinguishable to the client).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("bearer token rejected")
			writeError(w, r, err)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// restrictTo returns a middleware that allows only the given roles through.
//
// It must be mounted after [Handler.auth]: a request with no authenticated
// user in its context is rejected with 401 rather than panicking, and a user
// whose role is outside the allowed set receives 403 with a single generic
// message.
func (h *Handler) restrictTo(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				log.Error().Msg("role restriction reached without an authenticated user")
				writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			if !user.Role.In(allowed...) {
				log.Debug().Int64("id", user.UserID).Str("role", string(user.Role)).Msg("role not allowed for route")
				writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
