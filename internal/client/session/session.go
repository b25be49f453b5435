// Package session reads what the client can learn from a stored bearer token
// without the server's signing key. Signatures are NOT verified: the result
// is for display only and must never gate access.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaqueToken means the token is not a JWT; nothing can be read from it.
var ErrOpaqueToken = errors.New("token is not a JWT")

type claims struct {
	jwt.RegisteredClaims
	UserID any `json:"user_id,omitempty"`
}

// Info is the readable part of a token.
type Info struct {
	Subject   string
	ExpiresAt *time.Time
	IssuedAt  *time.Time
}

// Expired reports whether the token carries an expiry that is before now.
// Tokens without an expiry never expire from the client's point of view.
func (i Info) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

func (i Info) String() string {
	s := "subject " + i.Subject
	if i.Subject == "" {
		s = "no subject"
	}
	if i.ExpiresAt != nil {
		s += ", expires " + i.ExpiresAt.Format(time.RFC3339)
	}
	return s
}

// Inspect parses token without verification. The subject is taken from
// "sub", or from a "user_id" claim when "sub" is absent.
func Inspect(token string) (Info, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	info := Info{Subject: c.Subject}
	if info.Subject == "" {
		info.Subject = userID(c.UserID)
	}
	if c.ExpiresAt != nil {
		t := c.ExpiresAt.Time
		info.ExpiresAt = &t
	}
	if c.IssuedAt != nil {
		t := c.IssuedAt.Time
		info.IssuedAt = &t
	}
	return info, nil
}

func userID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}
