// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"brewmenu/config"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/service"
)

// bcrypt ignores input beyond 72 bytes.
const maxPasswordBytes = 72

const defaultMinPasswordLength = 6

type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher builds the hasher from auth config. A zero cost means bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, minLength := 0, 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
		minLength = cfg.Auth.PasswordMinLength
	}

	return NewBcryptHasherWithPolicy(cost, minLength)
}

// NewBcryptHasherWithPolicy returns a hasher with an explicit cost and minimum password length.
func NewBcryptHasherWithPolicy(cost, minLength int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}

	return &bcryptHasher{cost: cost, minLength: minLength}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the minimum rune length and bcrypt's byte ceiling.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	switch {
	case strings.TrimSpace(password) == "":
		return domainerrors.ErrPasswordStrength.WithDetails("password must not be blank")
	case utf8.RuneCountInString(password) < h.minLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	case len(password) > maxPasswordBytes:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	return nil
}
