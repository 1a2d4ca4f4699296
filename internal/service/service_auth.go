package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redproduct/hotelkeeper/internal/config"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/mailer"
	"github.com/redproduct/hotelkeeper/internal/store"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, JWT token
// lifecycle, and the password-reset state machine, using a UserRepository
// for persistence, bcrypt for password hashing, and a Mailer for reset
// delivery.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailer delivers password-reset secrets out-of-band.
	mailer mailer.Mailer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// resetDuration is the validity window of a password-reset secret.
	resetDuration time.Duration

	// resetBaseURL is the frontend URL the mailed reset link points at.
	resetBaseURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Mailer and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, m mailer.Mailer, appCfg config.App, emailCfg config.Email, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         m,
		tokenSignKey:   appCfg.TokenSignKey,
		tokenIssuer:    appCfg.TokenIssuer,
		tokenDuration:  appCfg.TokenDuration,
		resetDuration:  appCfg.ResetTokenDuration,
		resetBaseURL:   emailCfg.ResetBaseURL,
		logger:         logger,
	}
}

// normalizeEmail case-normalizes an email address for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a new user account.
//
// It validates the required fields and the role against the closed role
// set, hashes the password with bcrypt, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is missing or the role is
//     unknown.
//   - store.ErrEmailAlreadyExists if the email is already registered.
func (a *authService) SignUp(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		log.Err(err).Str("role", req.Role).Msg("unknown role provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
		HotelID:      req.HotelID,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by case-normalized email and verifies the
// supplied password against the stored bcrypt hash.
//
// Both an unknown email and a wrong password collapse into
// ErrInvalidCredentials: the response must not reveal which of the two
// failed.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors — and clients cannot tell the
// cases apart.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate resolves a bearer token string to a live user record.
//
// After signature and expiry verification the referenced user is re-read
// from the store: an account deleted after token issuance must not keep
// working until the token expires. A stale user is reported as
// ErrTokenIsExpiredOrInvalid, indistinguishable from a bad token.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("id", token.UserID).Msg("token references a deleted user")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Int64("id", token.UserID).Msg("user lookup by token subject failed")
		return models.User{}, fmt.Errorf("user lookup by token subject failed: %w", err)
	}

	return user, nil
}

// ForgotPassword starts the password-reset flow for the given email.
//
// For a known account it generates a fresh high-entropy secret, persists
// its SHA-256 digest together with the expiry instant (overwriting any
// previous pending reset), and emails the raw secret as a reset link.
//
// An unknown email returns nil with no state change: the endpoint must
// answer uniformly so it cannot be used to probe which emails are
// registered. A mail delivery failure, in contrast, is a real error
// (ErrEmailDispatchFailed) — the caller must not report success when the
// user can never receive the link.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	secret, err := utils.GenerateResetSecret()
	if err != nil {
		log.Err(err).Msg("reset secret generation failed")
		return fmt.Errorf("reset secret generation failed: %w", err)
	}

	expiresAt := time.Now().Add(a.resetDuration)
	if err := a.userRepository.SetResetToken(ctx, user.UserID, utils.HashResetSecret(secret), expiresAt); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	resetURL := fmt.Sprintf("%s?token=%s", a.resetBaseURL, secret)
	msg := mailer.Message{
		To:      user.Email,
		Subject: "Password reset",
		Body:    fmt.Sprintf("To reset your password, follow this link: %s\nThe link is valid for %s.", resetURL, a.resetDuration),
	}

	if err := a.mailer.Send(ctx, msg); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("reset email dispatch failed")
		return fmt.Errorf("%w: %w", ErrEmailDispatchFailed, err)
	}

	return nil
}

// ResetPassword consumes a pending reset secret and installs a new password.
//
// The lookup matches the secret's digest and the still-open expiry window
// in a single atomic read; no match yields ErrResetTokenInvalidOrExpired
// whether the secret is wrong, already consumed, or expired. The remaining
// checks run in order: confirmation mismatch, then new-equals-old.
//
// On success the new hash is persisted and both reset fields are cleared in
// the same statement, so the secret can never be replayed.
func (a *authService) ResetPassword(ctx context.Context, secret, password, passwordConfirm string) (models.User, error) {
	log := logger.FromContext(ctx)

	if secret == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByResetToken(ctx, utils.HashResetSecret(secret), time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Msg("reset attempt with invalid or expired secret")
			return models.User{}, ErrResetTokenInvalidOrExpired
		}

		log.Err(err).Msg("user search by reset token failed")
		return models.User{}, fmt.Errorf("user search by reset token failed: %w", err)
	}

	if password != passwordConfirm {
		return models.User{}, ErrPasswordMismatch
	}

	if utils.CheckPasswordHash(password, user.PasswordHash) {
		return models.User{}, ErrPasswordUnchanged
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password update failed")
		return models.User{}, fmt.Errorf("password update failed: %w", err)
	}

	user.PasswordHash = passwordHash
	user.ResetTokenHash = nil
	user.ResetExpiresAt = nil

	return user, nil
}

// UpdatePassword changes the password of an authenticated user.
//
// The current password must verify against the stored hash
// (ErrWrongPassword otherwise) and the new password must match its
// confirmation (ErrPasswordMismatch). The update also clears any pending
// reset, which becomes moot once the password changes.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword, passwordConfirm string) (models.User, error) {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		log.Debug().Int64("id", userID).Msg("wrong current password")
		return models.User{}, ErrWrongPassword
	}

	if newPassword != passwordConfirm {
		return models.User{}, ErrPasswordMismatch
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return models.User{}, fmt.Errorf("password update failed: %w", err)
	}

	user.PasswordHash = passwordHash
	user.ResetTokenHash = nil
	user.ResetExpiresAt = nil

	return user, nil
}
