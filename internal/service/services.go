// Package service contains the business logic of the application: the
// authentication and password-reset flows, user administration, and hotel
// record management. Services depend on the store layer through its
// repository interfaces and report failures via the sentinel errors defined
// in errors.go.
package service

import (
	"github.com/redproduct/hotelkeeper/internal/config"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/mailer"
	"github.com/redproduct/hotelkeeper/internal/store"
)

// Services bundles every business-logic service the handlers depend on.
type Services struct {
	AuthService  AuthService
	UserService  UserService
	HotelService HotelService
}

// NewServices wires all services to the given storages, mailer and
// configuration.
func NewServices(storages *store.Storages, m mailer.Mailer, appCfg config.App, emailCfg config.Email, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, m, appCfg, emailCfg, logger)

	return &Services{
		AuthService:  authService,
		UserService:  NewUserService(storages.UserRepository, authService, logger),
		HotelService: NewHotelService(storages.HotelRepository, logger),
	}
}
