package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"chat-client/errors"
)

var validate = validator.New()

// LoginRequest is the phone-number submission from the login screen.
type LoginRequest struct {
	Phone string `validate:"required,e164"`
}

// ProfileRequest carries the post-verification profile setup fields.
type ProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=64"`
	LastName  string `json:"last_name" validate:"required,min=1,max=64"`
	Country   string `json:"country" validate:"omitempty,max=64"`
	State     string `json:"state" validate:"omitempty,max=64"`
}

// ValidateLogin checks that the submitted phone number is E.164 shaped
// before any code is generated or sent.
func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPhone, err)
	}
	return nil
}

// ValidateProfile checks the profile completion form.
func ValidateProfile(req ProfileRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidProfile, err)
	}
	return nil
}
