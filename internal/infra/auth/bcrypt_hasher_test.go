package auth

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"brewmenu/config"
	domainerrors "brewmenu/internal/domain/errors"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, 6)

	hash, err := hasher.Hash("latte-art")
	require.NoError(t, err)
	assert.NotEqual(t, "latte-art", hash)

	assert.True(t, hasher.Check("latte-art", hash))
	assert.False(t, hasher.Check("latte", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("latte-art", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("espresso")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	h, ok := NewBcryptHasherWithPolicy(99, 0).(*bcryptHasher)
	require.True(t, ok)

	assert.Equal(t, bcrypt.DefaultCost, h.cost)
	assert.Equal(t, defaultMinPasswordLength, h.minLength)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, 8)

	assert.NoError(t, hasher.ValidatePasswordStrength("matcha-latte"))
	assert.NoError(t, hasher.ValidatePasswordStrength("cà phê sữa"))

	for _, weak := range []string{"", "        ", "short", strings.Repeat("a", 73)} {
		err := hasher.ValidatePasswordStrength(weak)
		assert.Error(t, err, weak)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength), weak)
	}
}
