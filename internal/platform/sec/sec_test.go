// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/platform/sec"
)

func newService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenService(key, issuer)
}

/*
TestTokenService_RoundTrip verifies that minted claims are read back intact.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newService(t, "bazaar.test")

	token, err := service.GenerateAccessToken(7, sec.RoleSeller, sec.StatusApproved, time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, sec.RoleSeller, claims.Role)
	assert.True(t, claims.IsApprovedSeller())
}

/*
TestTokenService_Rejects covers expired, foreign-issuer and foreign-key tokens.
*/
func TestTokenService_Rejects(t *testing.T) {
	service := newService(t, "bazaar.test")

	expired, err := service.GenerateAccessToken(7, sec.RoleSeller, sec.StatusApproved, -time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(expired)
	assert.Error(t, err)

	other := newService(t, "someone.else")
	foreign, err := other.GenerateAccessToken(7, sec.RoleSeller, sec.StatusApproved, time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(foreign)
	assert.Error(t, err)

	_, err = service.VerifyToken("not-a-token")
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast checks the role hierarchy and approval requirement.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleSuperAdmin.AtLeast(sec.RoleAdmin))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleSeller))
	assert.False(t, sec.RoleSeller.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("guest").AtLeast(sec.UserRole("other")))

	pending := &sec.AuthClaims{UserID: 1, Role: sec.RoleSeller, Status: sec.StatusPending}
	assert.False(t, pending.IsApprovedSeller())
}
