//go:build unit

package shared_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"airease-backend/internal/domain/verification"
	"airease-backend/internal/infra/repository"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

var payload = verification.PendingRegistration{
	Username:     "traveller",
	PasswordHash: "$2a$04$hash",
	Label:        "business",
}

func newManager() (shared.VerificationManager, *clock.MockClock, *repository.MemoryVerificationStore) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	store := repository.NewMemoryVerificationStore()
	return shared.NewVerificationManager(store, clk), clk, store
}

func TestVerificationManager_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a six digit code", func(t *testing.T) {
		m, _, store := newManager()

		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("email key is case and whitespace insensitive", func(t *testing.T) {
		m, _, _ := newManager()

		code, err := m.Issue(ctx, "  User@Example.com ", payload)
		require.NoError(t, err)

		got, err := m.Verify(ctx, "user@example.com", code)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("re-issuing replaces the previous entry", func(t *testing.T) {
		m, _, store := newManager()

		first, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)
		second, err := m.Issue(ctx, "user@example.com", verification.PendingRegistration{Username: "renamed"})
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())

		if first != second {
			_, err = m.Verify(ctx, "user@example.com", first)
			assert.ErrorIs(t, err, verification.ErrMismatch)
		}
		got, err := m.Verify(ctx, "user@example.com", second)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Username)
	})
}

func TestVerificationManager_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("no pending entry is not found", func(t *testing.T) {
		m, _, _ := newManager()

		_, err := m.Verify(ctx, "nobody@example.com", "123456")
		assert.ErrorIs(t, err, verification.ErrNotFound)
	})

	t.Run("code is single use", func(t *testing.T) {
		m, _, store := newManager()
		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		_, err = m.Verify(ctx, "user@example.com", code)
		require.NoError(t, err)
		assert.Zero(t, store.Len())

		_, err = m.Verify(ctx, "user@example.com", code)
		assert.ErrorIs(t, err, verification.ErrNotFound)
	})

	t.Run("mismatch keeps the entry for another attempt", func(t *testing.T) {
		m, _, _ := newManager()
		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		_, err = m.Verify(ctx, "user@example.com", wrong)
		assert.ErrorIs(t, err, verification.ErrMismatch)

		_, err = m.Verify(ctx, "user@example.com", code)
		assert.NoError(t, err)
	})

	t.Run("ちょうど10分後はまだ有効", func(t *testing.T) {
		m, clk, _ := newManager()
		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		clk.Add(verification.TTL)
		_, err = m.Verify(ctx, "user@example.com", code)
		assert.NoError(t, err)
	})

	t.Run("expired one second after the window and removed", func(t *testing.T) {
		m, clk, store := newManager()
		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		clk.Add(verification.TTL + time.Second)
		_, err = m.Verify(ctx, "user@example.com", code)
		assert.ErrorIs(t, err, verification.ErrExpired)
		assert.Zero(t, store.Len())

		_, err = m.Verify(ctx, "user@example.com", code)
		assert.ErrorIs(t, err, verification.ErrNotFound)
	})

	t.Run("concurrent verifies consume the code once", func(t *testing.T) {
		m, _, _ := newManager()
		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		const workers = 16
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			notFound  int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := m.Verify(ctx, "user@example.com", code)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errors.Is(err, verification.ErrNotFound):
					notFound++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, workers-1, notFound)
	})
}

func TestVerificationManager_Resend(t *testing.T) {
	ctx := context.Background()

	t.Run("without a pending entry is not found", func(t *testing.T) {
		m, _, _ := newManager()

		_, err := m.Resend(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, verification.ErrNotFound)
	})

	t.Run("invalidates the old code and keeps the payload", func(t *testing.T) {
		m, _, _ := newManager()
		old, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		fresh, err := m.Resend(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, fresh)

		if old != fresh {
			_, err = m.Verify(ctx, "user@example.com", old)
			assert.ErrorIs(t, err, verification.ErrMismatch)
		}
		got, err := m.Verify(ctx, "user@example.com", fresh)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("restarts the ten minute window", func(t *testing.T) {
		m, clk, _ := newManager()
		_, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		clk.Add(9 * time.Minute)
		fresh, err := m.Resend(ctx, "user@example.com")
		require.NoError(t, err)

		clk.Add(9 * time.Minute)
		_, err = m.Verify(ctx, "user@example.com", fresh)
		assert.NoError(t, err)
	})

	t.Run("works on an expired entry that has not been purged", func(t *testing.T) {
		m, clk, _ := newManager()
		_, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		clk.Add(verification.TTL + time.Minute)
		fresh, err := m.Resend(ctx, "user@example.com")
		require.NoError(t, err)

		_, err = m.Verify(ctx, "user@example.com", fresh)
		assert.NoError(t, err)
	})
}

func TestVerificationManager_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("consumed code becomes valid again", func(t *testing.T) {
		m, _, store := newManager()
		code, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)
		_, err = m.Verify(ctx, "user@example.com", code)
		require.NoError(t, err)
		require.Zero(t, store.Len())

		require.NoError(t, m.Restore(ctx, "user@example.com", code, payload))

		got, err := m.Verify(ctx, "user@example.com", code)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("does not overwrite a newer entry", func(t *testing.T) {
		m, _, _ := newManager()
		old, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)
		_, err = m.Verify(ctx, "user@example.com", old)
		require.NoError(t, err)
		fresh, err := m.Issue(ctx, "user@example.com", payload)
		require.NoError(t, err)

		require.NoError(t, m.Restore(ctx, "user@example.com", old, payload))

		_, err = m.Verify(ctx, "user@example.com", fresh)
		assert.NoError(t, err)
	})
}
