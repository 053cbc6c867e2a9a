package pjwt

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/permitio/permit-golang/infra/perr"
)

// Claims are the JWT claims the SDK cares about in tokens minted by the
// authorization service (member access tokens, element login tokens).
type Claims struct {
	jwt.StandardClaims

	Email string `json:"email,omitempty"`
}

// ParseClaimsUnverified extracts the claims from a token without validating
// its signature or anything else.
func ParseClaimsUnverified(token string) (*Claims, error) {
	var claims Claims
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, perr.Wrap(err)
	}
	return &claims, nil
}

// IsExpired returns `true, nil` if the supplied JWT has valid claims and is expired,
// `false, nil` if it has valid claims and is unexpired, and `true, err` if the claims
// aren't parseable.
// NOTE: It does NOT validate the token's signature!
func IsExpired(token string) (bool, error) {
	claims, err := ParseClaimsUnverified(token)
	if err != nil {
		return true, perr.Wrap(err)
	}
	if claims.ExpiresAt == 0 {
		// API keys and other non-expiring tokens carry no exp claim
		return false, nil
	}
	return time.Now().Unix() >= claims.ExpiresAt, nil
}
