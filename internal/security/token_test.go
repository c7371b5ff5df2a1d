package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondserve-backend/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestResetTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 30*time.Minute)

	donor := &domain.Donor{ID: 9, Email: "sam@example.com", Role: domain.RoleDonor}
	token, err := tm.GenerateResetToken(donor)
	require.NoError(t, err)

	claims, err := tm.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(9), claims.PrincipalID)
	assert.Equal(t, "sam@example.com", claims.Email)
	assert.Equal(t, domain.ModelDonor, claims.Model)
}

func TestResetTokenCarriesOrgModel(t *testing.T) {
	tm := NewTokenManager(testSecret, 30*time.Minute)

	org := &domain.Organization{ID: 4, Email: "shelter@example.com"}
	token, err := tm.GenerateResetToken(org)
	require.NoError(t, err)

	claims, err := tm.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.ModelOrg, claims.Model)
}

func TestValidateResetToken_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, 30*time.Minute).
		GenerateResetToken(&domain.Donor{ID: 1, Role: domain.RoleDonor})
	require.NoError(t, err)

	other := NewTokenManager("another-secret-another-secret-32", 30*time.Minute)
	_, err = other.ValidateResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateResetToken_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)
	token, err := tm.GenerateResetToken(&domain.Donor{ID: 1, Role: domain.RoleDonor})
	require.NoError(t, err)

	_, err = tm.ValidateResetToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateResetToken_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 30*time.Minute)
	_, err := tm.ValidateResetToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
