package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether raw is a JWT whose exp claim is at or before
// now. The signature is deliberately not checked; verification is the
// server's job, this only saves a round trip that is guaranteed to come
// back 401. Tokens that do not parse, or carry no exp claim, are left
// for the server to judge.
func Expired(raw string, now time.Time) bool {
	tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.Time.After(now)
}
