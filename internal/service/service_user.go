package service

import (
	"context"
	"fmt"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/store"
	"github.com/redproduct/hotelkeeper/models"
)

// userService implements UserService on top of a UserRepository.
// Creation reuses the signup path so password hashing and role validation
// live in exactly one place.
type userService struct {
	userRepository store.UserRepository
	authService    AuthService
	logger         *logger.Logger
}

// NewUserService constructs a new UserService.
func NewUserService(userRepository store.UserRepository, authService AuthService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		authService:    authService,
		logger:         logger,
	}
}

// GetUser returns a single user by id.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ListUsers returns every registered user.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// CreateUser registers a new account on behalf of an administrator.
// Semantics are identical to self-service signup.
func (u *userService) CreateUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return u.authService.SignUp(ctx, req)
}

// UpdateUser applies a partial update to a user record.
//
// Only username, role and hotel assignment can change through this path;
// email and password are managed by their dedicated flows. An empty update
// or an unknown role yields ErrInvalidDataProvided.
func (u *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		Username: req.Username,
		HotelID:  req.HotelID,
	}

	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			log.Err(err).Str("role", *req.Role).Msg("unknown role provided")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		update.Role = &role
	}

	if update.Empty() {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user record. Outstanding JWTs stop working on their
// next request because the auth gate re-checks existence.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
