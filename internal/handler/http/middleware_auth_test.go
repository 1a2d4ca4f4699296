package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	validUser := models.User{UserID: 42, Email: "dieynaba@example.com", Role: models.RoleGuest}

	tests := []struct {
		name           string
		authHeader     string
		authenticateFn func(ctx context.Context, s string) (models.User, error)
		expectedStatus int
		nextCalled     bool
		wantUserID     int64
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:           "header without token → 401",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "invalid or expired token → 401",
			authHeader: "Bearer bad-token",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "token of a deleted user → 401, same error as invalid",
			authHeader: "Bearer orphan-token",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "valid token → next called with user in context",
			authHeader: "Bearer good-token",
			authenticateFn: func(_ context.Context, s string) (models.User, error) {
				assert.Equal(t, "good-token", s)
				return validUser, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{authenticateFn: tt.authenticateFn})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := utils.GetUserFromContext(r.Context())
				require.True(t, ok, "user must be attached to the context")
				assert.Equal(t, tt.wantUserID, user.UserID)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

// ---- restrictTo middleware ----

func executeRestrict(h *Handler, user *models.User, allowed []models.Role, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.restrictTo(allowed...)(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), utils.UserCtxKey, *user))
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestRestrictTo_TableTest(t *testing.T) {
	admin := models.User{UserID: 1, Role: models.RoleAdmin}
	guest := models.User{UserID: 2, Role: models.RoleGuest}

	tests := []struct {
		name           string
		user           *models.User
		allowed        []models.Role
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "no user in context → 401",
			user:           nil,
			allowed:        []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "guest on admin route → 403",
			user:           &guest,
			allowed:        []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin on admin route → pass",
			user:           &admin,
			allowed:        []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "guest allowed when listed",
			user:           &guest,
			allowed:        []models.Role{models.RoleAdmin, models.RoleGuest},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeRestrict(h, tt.user, tt.allowed, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

// TestRestrictTo_ForbiddenMessageIsGeneric ensures the 403 body does not
// leak which roles would have been accepted.
func TestRestrictTo_ForbiddenMessageIsGeneric(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})
	guest := models.User{UserID: 2, Role: models.RoleGuest}

	rr := executeRestrict(h, &guest, []models.Role{models.RoleAdmin}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "you do not have permission to perform this action")
	assert.NotContains(t, rr.Body.String(), "admin")
}
