package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkalinin/shopadmin/internal/adapter/auth"
	"github.com/mkalinin/shopadmin/internal/core/domain"
)

const testKeyHex = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"

func TestPasetoToken_SharedKey(t *testing.T) {
	issuer, err := auth.New(testKeyHex)
	assert.NoError(t, err)
	verifier, err := auth.New(testKeyHex)
	assert.NoError(t, err)

	token, err := issuer.CreateToken(&domain.User{ID: 99, Role: domain.RoleAdmin})
	assert.NoError(t, err)

	payload, err := verifier.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(99), payload.UserID)
	assert.Equal(t, domain.RoleAdmin, payload.Role)
}

func TestPasetoToken_WrongKeyRejected(t *testing.T) {
	issuer, err := auth.New(testKeyHex)
	assert.NoError(t, err)
	stranger, err := auth.New("")
	assert.NoError(t, err)

	token, err := issuer.CreateToken(&domain.User{ID: 1, Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = stranger.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasetoToken_BadKeyHex(t *testing.T) {
	_, err := auth.New("not-a-key")
	assert.Error(t, err)
}

func TestPasetoToken_IndependentTokens(t *testing.T) {
	ts, err := auth.New("")
	assert.NoError(t, err)

	adminToken, err := ts.CreateToken(&domain.User{ID: 99, Role: domain.RoleAdmin})
	assert.NoError(t, err)
	customerToken, err := ts.CreateToken(&domain.User{ID: 7, Role: domain.RoleCustomer})
	assert.NoError(t, err)

	adminPayload, err := ts.VerifyToken(adminToken)
	assert.NoError(t, err)
	assert.Equal(t, uint64(99), adminPayload.UserID)
	assert.Equal(t, domain.RoleAdmin, adminPayload.Role)

	customerPayload, err := ts.VerifyToken(customerToken)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), customerPayload.UserID)
	assert.Equal(t, domain.RoleCustomer, customerPayload.Role)
}
