package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-role-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	employee := &domain.Employee{ID: "emp-1", Cargo: domain.CargoChefeDeCirurgia}
	token, exp, err := tm.GenerateToken(employee, domain.NivelN6)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.SubjectID)
	assert.Equal(t, domain.CargoChefeDeCirurgia, claims.Cargo)
	assert.Equal(t, domain.NivelN6, claims.Nivel)
	assert.NotEmpty(t, claims.ID, "token id required for revocation")
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 30)
	other := NewTokenManager("secret-b", 30)

	employee := &domain.Employee{ID: "emp-1", Cargo: domain.CargoAnalista}
	token, _, err := tm.GenerateToken(employee, domain.NivelN2)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	employee := &domain.Employee{ID: "emp-1", Cargo: domain.CargoRecepcao}

	first, _, err := tm.GenerateToken(employee, domain.NivelN3)
	require.NoError(t, err)
	second, _, err := tm.GenerateToken(employee, domain.NivelN3)
	require.NoError(t, err)

	a, err := tm.ParseToken(first)
	require.NoError(t, err)
	b, err := tm.ParseToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
