package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two causes are deliberately indistinguishable so the
	// login endpoint cannot be used to enumerate registered accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is invalid or expired")

	// ErrWrongPassword is returned by the authenticated password-change
	// path when the supplied current password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")

	// Password reset flow errors.
	ErrResetTokenInvalidOrExpired = errors.New("reset link is invalid or has expired")
	ErrPasswordMismatch           = errors.New("passwords do not match")
	ErrPasswordUnchanged          = errors.New("new password cannot be identical to the old one")

	// ErrEmailDispatchFailed is returned when the reset email cannot be
	// delivered; distinct from success so the caller sees a 500, never a
	// silent no-op.
	ErrEmailDispatchFailed = errors.New("error sending reset email")
)
