package shared

import (
	"context"

	"airease-backend/internal/domain/verification"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/errs"
)

// VerificationStore applies fn atomically per key. fn receives nil when the key is absent.
// The entry fn returns is persisted even when fn also returns an error; nil removes the key.
type VerificationStore interface {
	Update(ctx context.Context, key string, fn func(current *verification.Entry) (*verification.Entry, error)) error
}

type VerificationManager interface {
	Issue(ctx context.Context, email string, payload verification.PendingRegistration) (string, error)
	Verify(ctx context.Context, email, code string) (verification.PendingRegistration, error)
	Resend(ctx context.Context, email string) (string, error)
	Restore(ctx context.Context, email, code string, payload verification.PendingRegistration) error
}

type verificationManagerImpl struct {
	store    VerificationStore
	clock    clock.Clock
	generate func() (string, error)
}

func NewVerificationManager(store VerificationStore, clk clock.Clock) VerificationManager {
	return &verificationManagerImpl{
		store:    store,
		clock:    clk,
		generate: verification.GenerateCode,
	}
}

// Issue replaces any pending entry for the email.
func (m *verificationManagerImpl) Issue(ctx context.Context, email string, payload verification.PendingRegistration) (string, error) {
	code, err := m.generate()
	if err != nil {
		return "", err
	}

	err = m.store.Update(ctx, verification.Key(email), func(_ *verification.Entry) (*verification.Entry, error) {
		return verification.NewEntry(code, m.clock.Now(), payload), nil
	})
	if err != nil {
		return "", errs.Wrap(err, "store verification code")
	}
	return code, nil
}

func (m *verificationManagerImpl) Verify(ctx context.Context, email, code string) (verification.PendingRegistration, error) {
	var payload verification.PendingRegistration

	err := m.store.Update(ctx, verification.Key(email), func(cur *verification.Entry) (*verification.Entry, error) {
		switch {
		case cur == nil:
			return nil, verification.ErrNotFound
		case cur.Expired(m.clock.Now()):
			return nil, verification.ErrExpired
		case !cur.Matches(code):
			return cur, verification.ErrMismatch
		}
		payload = cur.Payload
		return nil, nil
	})
	if err != nil {
		return verification.PendingRegistration{}, err
	}
	return payload, nil
}

// Resend works on expired entries too; only a missing entry is refused.
func (m *verificationManagerImpl) Resend(ctx context.Context, email string) (string, error) {
	code, err := m.generate()
	if err != nil {
		return "", err
	}

	err = m.store.Update(ctx, verification.Key(email), func(cur *verification.Entry) (*verification.Entry, error) {
		if cur == nil {
			return nil, verification.ErrNotFound
		}
		return verification.NewEntry(code, m.clock.Now(), cur.Payload), nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// Restore puts back an entry consumed by Verify when account creation failed afterwards.
// The same code stays valid for a fresh window. A newer pending entry is left alone.
func (m *verificationManagerImpl) Restore(ctx context.Context, email, code string, payload verification.PendingRegistration) error {
	err := m.store.Update(ctx, verification.Key(email), func(cur *verification.Entry) (*verification.Entry, error) {
		if cur != nil {
			return cur, nil
		}
		return verification.NewEntry(code, m.clock.Now(), payload), nil
	})
	if err != nil {
		return errs.Wrap(err, "restore verification code")
	}
	return nil
}
