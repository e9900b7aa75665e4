//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"airease-backend/internal/domain/user"
	"airease-backend/internal/infra"
	"airease-backend/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type boolRow struct{ v bool }

func (r boolRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = r.v
	return nil
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	email, err := user.NewEmail("traveler@example.com")
	require.NoError(t, err)
	name, err := user.NewUsername("traveler")
	require.NoError(t, err)
	return user.NewUser(email, name, "hash", user.DefaultLabel, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
		wantMark error
	}{
		{name: "success"},
		{
			name:     "duplicate email",
			mockErr:  &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
			wantMark: errs.ErrConflict,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
			wantMark: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, tt.mockErr)

			err := NewUserRepository(db).Create(context.Background(), newTestUser(t))

			if tt.mockErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.True(t, errs.Is(err, tt.wantMark))
			}
			db.AssertExpectations(t)
		})
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	email, _ := user.NewEmail("traveler@example.com")

	t.Run("exists", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, existsUserByEmailSQL, []any{"traveler@example.com"}).Return(boolRow{v: true})

		ok, err := NewUserRepository(db).ExistsByEmail(context.Background(), email)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("database error", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(errRow{err: assert.AnError})

		_, err := NewUserRepository(db).ExistsByEmail(context.Background(), email)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(errRow{err: pgx.ErrNoRows})

	_, _, err := NewUserRepository(db).FindByEmail(context.Background(), "nobody@example.com")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()
	u := newTestUser(t)

	require.NoError(t, repo.Create(ctx, u))

	t.Run("重複メールは競合になる", func(t *testing.T) {
		err := repo.Create(ctx, newTestUser(t))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("lookup by email returns the stored hash", func(t *testing.T) {
		view, hash, err := repo.FindByEmail(ctx, "traveler@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), view.ID)
		assert.Equal(t, "traveler", view.Username)
		assert.Equal(t, "hash", hash)
	})

	t.Run("lookup by id", func(t *testing.T) {
		view, err := repo.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "business", view.Label)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.ExistsByEmail(ctx, u.Email())
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
