// Package token inspects access tokens locally, without any network call.
//
// The client trusts tokens at face value except for expiry: the payload is
// decoded without signature verification, because only the server holds the
// signing key and the check merely decides whether a cached session is worth
// presenting again.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired reports whether the token's exp claim is at or before now.
//
// The check is fail-closed: a token that cannot be decoded, or that carries
// no exp claim, is reported expired rather than silently trusted.
func IsExpired(tokenString string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return !now.Before(exp.Time)
}
