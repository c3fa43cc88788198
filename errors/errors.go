package errors

import "fmt"

var (
	ErrInvalidPhone       = fmt.Errorf("phone number is not valid")
	ErrInvalidProfile     = fmt.Errorf("profile is not complete")
	ErrOTPNotFound        = fmt.Errorf("no pending verification for this phone")
	ErrOTPExpired         = fmt.Errorf("verification code expired")
	ErrOTPMismatch        = fmt.Errorf("verification code does not match")
	ErrTooManyAttempts    = fmt.Errorf("too many verification attempts")
	ErrTokenGeneration    = fmt.Errorf("unable to generate session token")
	ErrNotAuthenticated   = fmt.Errorf("no authenticated session")
	ErrChatNotFound       = fmt.Errorf("chat not found")
	ErrSessionNotHydrated = fmt.Errorf("session used before hydration")
)
