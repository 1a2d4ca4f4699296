package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redproduct/hotelkeeper/internal/config"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/mailer"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/store"
	"github.com/redproduct/hotelkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests in this file run the whole stack — router, middleware, services
// — against in-memory repositories, over a real HTTP listener.

// memUserRepo is an in-memory store.UserRepository.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User)}
}

func (m *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	m.nextID++
	user.UserID = m.nextID
	stored := user
	m.users[user.UserID] = &stored
	return user, nil
}

func (m *memUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memUserRepo) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return *u, nil
}

func (m *memUserRepo) FindUserByResetToken(_ context.Context, tokenHash string, now time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash &&
			u.ResetExpiresAt != nil && u.ResetExpiresAt.After(now) {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memUserRepo) SetResetToken(_ context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.ResetTokenHash = &tokenHash
	u.ResetExpiresAt = &expiresAt
	return nil
}

func (m *memUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.PasswordHash = passwordHash
	u.ResetTokenHash = nil
	u.ResetExpiresAt = nil
	return nil
}

func (m *memUserRepo) UpdateUser(_ context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.HotelID != nil {
		u.HotelID = update.HotelID
	}
	return *u, nil
}

func (m *memUserRepo) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return store.ErrNoUserWasFound
	}
	delete(m.users, userID)
	return nil
}

func (m *memUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

// memHotelRepo is an in-memory store.HotelRepository.
type memHotelRepo struct {
	mu     sync.Mutex
	nextID int64
	hotels map[int64]*models.Hotel
}

func newMemHotelRepo() *memHotelRepo {
	return &memHotelRepo{hotels: make(map[int64]*models.Hotel)}
}

func (m *memHotelRepo) CreateHotel(_ context.Context, hotel models.Hotel) (models.Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.hotels {
		if h.Name == hotel.Name {
			return models.Hotel{}, store.ErrHotelAlreadyExists
		}
	}

	m.nextID++
	hotel.HotelID = m.nextID
	stored := hotel
	m.hotels[hotel.HotelID] = &stored
	return hotel, nil
}

func (m *memHotelRepo) FindHotelByID(_ context.Context, hotelID int64) (models.Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hotels[hotelID]
	if !ok {
		return models.Hotel{}, store.ErrNoHotelWasFound
	}
	return *h, nil
}

func (m *memHotelRepo) ListHotels(_ context.Context) ([]models.Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hotels := make([]models.Hotel, 0, len(m.hotels))
	for _, h := range m.hotels {
		hotels = append(hotels, *h)
	}
	return hotels, nil
}

func (m *memHotelRepo) UpdateHotel(_ context.Context, hotelID int64, update models.HotelUpdate) (models.Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hotels[hotelID]
	if !ok {
		return models.Hotel{}, store.ErrNoHotelWasFound
	}
	if update.Name != nil {
		h.Name = *update.Name
	}
	if update.Address != nil {
		h.Address = *update.Address
	}
	if update.Currency != nil {
		h.Currency = *update.Currency
	}
	if update.Price != nil {
		h.Price = *update.Price
	}
	if update.Images != nil {
		h.Images = *update.Images
	}
	if update.ContactInfo != nil {
		h.ContactInfo = *update.ContactInfo
	}
	if update.Status != nil {
		h.Status = *update.Status
	}
	return *h, nil
}

func (m *memHotelRepo) DeleteHotel(_ context.Context, hotelID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.hotels[hotelID]; !ok {
		return store.ErrNoHotelWasFound
	}
	delete(m.hotels, hotelID)
	return nil
}

// captureMailer records reset emails so the flow test can fish the secret
// out of the link.
type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) lastSecret(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	require.NotEmpty(t, m.sent)
	_, after, found := strings.Cut(m.sent[len(m.sent)-1].Body, "?token=")
	require.True(t, found)
	secret, _, _ := strings.Cut(after, "\n")
	return secret
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestServer(t *testing.T) (*httptest.Server, *captureMailer) {
	t.Helper()

	mail := &captureMailer{}
	storages := &store.Storages{
		UserRepository:  newMemUserRepo(),
		HotelRepository: newMemHotelRepo(),
	}

	appCfg := config.App{
		TokenSignKey:       "flow-test-sign-key",
		TokenIssuer:        "hotelkeeper",
		TokenDuration:      time.Hour,
		ResetTokenDuration: 10 * time.Minute,
	}
	emailCfg := config.Email{ResetBaseURL: "http://localhost:3000/reset-password"}

	services := service.NewServices(storages, mail, appCfg, emailCfg, logger.Nop())
	handler := NewHandler(services, &fakeImageStorage{}, okPinger{}, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)
	return srv, mail
}

func signupViaAPI(t *testing.T, client *resty.Client, username, email, password, role string) models.AuthResponse {
	t.Helper()

	var out models.AuthResponse
	resp, err := client.R().
		SetBody(models.SignupRequest{Username: username, Email: email, Password: password, Role: role}).
		SetResult(&out).
		Post("/api/auth/signup")
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode(), "signup failed: %s", resp.String())
	require.NotEmpty(t, out.Token)
	return out
}

func TestFlow_SignupLoginMe(t *testing.T) {
	srv, _ := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	signup := signupViaAPI(t, client, "dieynaba", "dieynaba@example.com", "s3cret-password", "")
	assert.Equal(t, models.RoleGuest, signup.Data.User.Role)

	var login models.AuthResponse
	resp, err := client.R().
		SetBody(models.LoginRequest{Email: "Dieynaba@Example.com", Password: "s3cret-password"}).
		SetResult(&login).
		Post("/api/auth/login")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())

	var me models.UserResponse
	resp, err = client.R().
		SetAuthToken(login.Token).
		SetResult(&me).
		Get("/api/auth/me")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, signup.Data.User.UserID, me.Data.User.UserID)
}

func TestFlow_RoleRestriction(t *testing.T) {
	srv, _ := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	guest := signupViaAPI(t, client, "guest", "guest@example.com", "guest-password", "")
	admin := signupViaAPI(t, client, "admin", "admin@example.com", "admin-password", "admin")

	// guest cannot list users
	resp, err := client.R().SetAuthToken(guest.Token).Get("/api/auth/users")
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode())

	// admin can
	resp, err = client.R().SetAuthToken(admin.Token).Get("/api/auth/users")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())

	// no token at all
	resp, err = client.R().Get("/api/auth/users")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())
}

func TestFlow_HotelLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	admin := signupViaAPI(t, client, "admin", "admin@example.com", "admin-password", "admin")
	guest := signupViaAPI(t, client, "guest", "guest@example.com", "guest-password", "")

	// guest may not create hotels
	resp, err := client.R().
		SetAuthToken(guest.Token).
		SetBody(models.Hotel{Name: "Teranga Palace", Address: "12 Corniche Ouest, Dakar", Price: 25000}).
		Post("/api/hotels")
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode())

	// admin creates
	var created models.HotelResponse
	resp, err = client.R().
		SetAuthToken(admin.Token).
		SetBody(models.Hotel{Name: "Teranga Palace", Address: "12 Corniche Ouest, Dakar", Price: 25000}).
		SetResult(&created).
		Post("/api/hotels")
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode())
	assert.Equal(t, models.CurrencyXOF, created.Data.Currency, "currency must default to F XOF")
	assert.Equal(t, models.HotelStatusActive, created.Data.Status, "status must default to Active")

	// duplicate name
	resp, err = client.R().
		SetAuthToken(admin.Token).
		SetBody(models.Hotel{Name: "Teranga Palace", Address: "elsewhere"}).
		Post("/api/hotels")
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode())

	// anyone can read
	var list models.HotelsResponse
	resp, err = client.R().SetResult(&list).Get("/api/hotels")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.Len(t, list.Data, 1)

	// partial update leaves the rest untouched
	price := 30000.0
	var updated models.HotelResponse
	resp, err = client.R().
		SetAuthToken(admin.Token).
		SetBody(models.HotelUpdate{Price: &price}).
		SetResult(&updated).
		Patch("/api/hotels/1")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, price, updated.Data.Price)
	assert.Equal(t, "Teranga Palace", updated.Data.Name)
}

func TestFlow_PasswordReset(t *testing.T) {
	srv, mail := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	signupViaAPI(t, client, "dieynaba", "dieynaba@example.com", "original-password", "")

	resp, err := client.R().
		SetBody(models.ForgotPasswordRequest{Email: "dieynaba@example.com"}).
		Post("/api/auth/forgot-password")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())

	secret := mail.lastSecret(t)

	var reset models.AuthResponse
	resp, err = client.R().
		SetBody(models.ResetPasswordRequest{Password: "brand-new-password", PasswordConfirm: "brand-new-password"}).
		SetResult(&reset).
		Patch("/api/auth/reset-password/" + secret)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.NotEmpty(t, reset.Token)

	// old password dead
	resp, err = client.R().
		SetBody(models.LoginRequest{Email: "dieynaba@example.com", Password: "original-password"}).
		Post("/api/auth/login")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())

	// replaying the consumed secret fails
	resp, err = client.R().
		SetBody(models.ResetPasswordRequest{Password: "another-one", PasswordConfirm: "another-one"}).
		Patch("/api/auth/reset-password/" + secret)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode())
}

func TestFlow_HealthAndTraceID(t *testing.T) {
	srv, _ := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().Get("/api/health")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))

	// a caller-supplied trace id is echoed back
	resp, err = client.R().SetHeader("X-Trace-ID", "trace-123").Get("/api/health")
	require.NoError(t, err)
	assert.Equal(t, "trace-123", resp.Header().Get("X-Trace-ID"))
}

func TestFlow_UnknownRouteEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	var envelope models.Response
	resp, err := client.R().SetError(&envelope).Get("/api/nope")
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode())
	assert.Equal(t, "error", envelope.Status)
}
