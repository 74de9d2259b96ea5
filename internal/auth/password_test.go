package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("senha-segura", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "senha-segura", hash)

	assert.NoError(t, ComparePassword(hash, "senha-segura"))
	assert.Error(t, ComparePassword(hash, "senha-errada"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("curta"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("senha-bem-longa"))
}
