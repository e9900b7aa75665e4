package verification

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	CodeLength = 6
	TTL        = 10 * time.Minute
)

var (
	ErrNotFound = errors.New("no pending verification for this email")
	ErrExpired  = errors.New("verification code expired")
	ErrMismatch = errors.New("verification code does not match")
)

var codeSpace = big.NewInt(1_000_000)

// PendingRegistration is what a verified code turns into an account. It never holds a plain password.
type PendingRegistration struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Label        string `json:"label"`
}

type Entry struct {
	Code      string              `json:"code"`
	ExpiresAt time.Time           `json:"expiresAt"`
	Payload   PendingRegistration `json:"payload"`
}

func NewEntry(code string, now time.Time, payload PendingRegistration) *Entry {
	return &Entry{
		Code:      code,
		ExpiresAt: now.Add(TTL),
		Payload:   payload,
	}
}

// Expired is strict: a code is still valid at exactly its expiry instant.
func (e *Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

func (e *Entry) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(e.Code), []byte(strings.TrimSpace(code))) == 1
}

// GenerateCode draws uniformly from 000000-999999.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

// Key normalizes an email into the store key.
func Key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
