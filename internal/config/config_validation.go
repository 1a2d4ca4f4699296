// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RED Product

package config

import "time"

// Fallback values applied when a setting is absent from every source.
const (
	defaultHTTPAddress        = "localhost:8080"
	defaultTokenIssuer        = "hotelkeeper"
	defaultTokenDuration      = 24 * time.Hour
	defaultResetTokenDuration = 10 * time.Minute
	defaultRequestTimeout     = 30 * time.Second
	defaultUploadDir          = "public/uploads/hotels"
)

// applyDefaults fills zero-valued optional settings with their fallbacks.
// Secrets (token sign key, DSN) are deliberately never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = defaultResetTokenDuration
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = defaultUploadDir
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token sign key or database DSN cannot be serviced at request
// time; both are treated as fatal misconfiguration.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
