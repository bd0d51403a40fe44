package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session maps an opaque token to the user it authenticates. The client only
// ever holds the token; all other state stays server-side.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its absolute expiry.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NewToken returns a 256-bit random token, hex encoded.
func NewToken() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
