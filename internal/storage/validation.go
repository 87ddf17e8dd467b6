// Package storage provides the data persistence layer for the hera migration tool.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/hera-migrate/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidUser  = errors.New("invalid user")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateUser validates a user record before it is written.
func validateUser(user *model.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", ErrNilParameter)
	}
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("%w: missing username", ErrInvalidUser)
	}
	if user.PasswordHash == "" {
		return fmt.Errorf("%w: missing password hash", ErrInvalidUser)
	}
	return nil
}
