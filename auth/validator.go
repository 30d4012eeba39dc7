package auth

import (
	"fmt"

	"messagely/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Username is restricted to alphanumerics: it is embedded verbatim in store
// index keys, so the key delimiter must never appear in it.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=64,alphanum"`
	Password  string `json:"password" validate:"required,max=72"`
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
	Phone     string `json:"phone" validate:"max=32"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type SendMessageRequest struct {
	ToUsername string `json:"to_username" validate:"required,max=64"`
	Body       string `json:"body" validate:"required,max=10000"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}

func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}

func ValidateSendMessage(req SendMessageRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
