package pjwt_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/infra/pjwt"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoErr(t, err)
	return token
}

func TestParseClaimsUnverified(t *testing.T) {
	token := signToken(t, pjwt.Claims{
		StandardClaims: jwt.StandardClaims{Subject: "user-1"},
		Email:          "ada@example.com",
	})

	claims, err := pjwt.ParseClaimsUnverified(token)
	assert.NoErr(t, err)
	assert.Equal(t, claims.Subject, "user-1")
	assert.Equal(t, claims.Email, "ada@example.com")
}

func TestParseClaimsNotAJWT(t *testing.T) {
	_, err := pjwt.ParseClaimsUnverified("permit_key_3stzFI9bgoqpS")
	assert.NotNil(t, err)
}

func TestIsExpired(t *testing.T) {
	expired := signToken(t, jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()})
	got, err := pjwt.IsExpired(expired)
	assert.NoErr(t, err)
	assert.True(t, got)

	fresh := signToken(t, jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()})
	got, err = pjwt.IsExpired(fresh)
	assert.NoErr(t, err)
	assert.False(t, got)
}

func TestIsExpiredNoExpClaim(t *testing.T) {
	token := signToken(t, jwt.StandardClaims{Subject: "api-key"})
	got, err := pjwt.IsExpired(token)
	assert.NoErr(t, err)
	assert.False(t, got)
}

func TestIsExpiredUnparseable(t *testing.T) {
	got, err := pjwt.IsExpired("not-a-jwt")
	assert.NotNil(t, err)
	assert.True(t, got)
}
