// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RED Product

package http

import "errors"

// Sentinel errors raised at the HTTP boundary: while parsing the
// "Authorization" header and while enforcing role restrictions. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrForbidden is returned by the role-restriction middleware when the
	// authenticated user's role is not in the allowed set for the route.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrInvalidIDParameter is returned when a numeric path parameter cannot
	// be parsed.
	ErrInvalidIDParameter = errors.New("invalid id parameter")
)
