package graph

import "time"

// AccessToken is the bearer credential attached to every request.
// It is immutable once constructed.
type AccessToken struct {
	token     string
	expiresAt time.Time
	hasExpiry bool
}

// NewAccessToken creates a non-expiring access token.
func NewAccessToken(token string) AccessToken {
	return AccessToken{token: token}
}

// WithExpiry returns a copy of the token that expires at the given time.
func (t AccessToken) WithExpiry(expiresAt time.Time) AccessToken {
	return AccessToken{
		token:     t.token,
		expiresAt: expiresAt,
		hasExpiry: true,
	}
}

// Token returns the raw token string.
func (t AccessToken) Token() string {
	return t.token
}

// ExpiresAt returns the expiry and whether one is set. A token without an
// expiry is long-lived.
func (t AccessToken) ExpiresAt() (time.Time, bool) {
	return t.expiresAt, t.hasExpiry
}

// IsExpired reports whether the token has expired as of now.
func (t AccessToken) IsExpired(now time.Time) bool {
	return t.hasExpiry && !now.Before(t.expiresAt)
}

// IsZero reports whether no token string is set.
func (t AccessToken) IsZero() bool {
	return t.token == ""
}
