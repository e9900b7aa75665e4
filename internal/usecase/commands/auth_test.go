//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"airease-backend/internal/domain/user"
	"airease-backend/internal/domain/verification"
	reqdto "airease-backend/internal/handler/dto/request"
	"airease-backend/internal/infra/repository"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/pkg/jwt"
	"airease-backend/internal/pkg/password"
	"airease-backend/internal/usecase/commands"
	"airease-backend/internal/usecase/shared"
	"airease-backend/tests/common/builder"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationCode(ctx context.Context, to, username, code string) error {
	return m.Called(ctx, to, username, code).Error(0)
}

func (m *MockMailer) SendReportNotice(ctx context.Context, notice commands.ReportNotice) error {
	return m.Called(ctx, notice).Error(0)
}

// lastCode returns the code passed to the most recent SendVerificationCode call.
func (m *MockMailer) lastCode() string {
	code := ""
	for _, call := range m.Calls {
		if call.Method == "SendVerificationCode" {
			code = call.Arguments.String(3)
		}
	}
	return code
}

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	users    *repository.MemoryUserRepository
	store    *repository.MemoryVerificationStore
	mailer   *MockMailer
	jwt      *jwt.Service
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	s.users = repository.NewMemoryUserRepository()
	s.store = repository.NewMemoryVerificationStore()
	s.mailer = new(MockMailer)
	s.jwt = jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)

	s.commands = commands.NewAuthCommands(
		s.users,
		s.users,
		shared.NewVerificationManager(s.store, s.clock),
		password.NewHasher(bcrypt.MinCost),
		s.mailer,
		s.jwt,
		s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

// flakyUserRepository fails Create with createErr while it is set.
type flakyUserRepository struct {
	*repository.MemoryUserRepository
	createErr error
}

func (r *flakyUserRepository) Create(ctx context.Context, u *user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	return r.MemoryUserRepository.Create(ctx, u)
}

// commandsWith shares the suite's verification store but writes users through repo.
func (s *AuthCommandsTestSuite) commandsWith(repo commands.UserRepository) commands.AuthCommands {
	return commands.NewAuthCommands(
		repo,
		s.users,
		shared.NewVerificationManager(s.store, s.clock),
		password.NewHasher(bcrypt.MinCost),
		s.mailer,
		s.jwt,
		s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) register(b *builder.AuthBuilder) string {
	s.mailer.On("SendVerificationCode", mock.Anything, b.Email, mock.Anything, mock.Anything).Return(nil).Once()
	_, err := s.commands.Register(s.ctx, b.BuildRegisterDTO())
	s.Require().NoError(err)
	return s.mailer.lastCode()
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("success: stores a pending code and mails it", func() {
		b := builder.NewAuthBuilder()
		s.mailer.On("SendVerificationCode", mock.Anything, "test@example.com", "traveller", mock.AnythingOfType("string")).Return(nil).Once()

		result, err := s.commands.Register(s.ctx, b.BuildRegisterDTO())

		s.Require().NoError(err)
		s.Equal("test@example.com", result.Email)
		s.Equal(10, result.ExpiresInMinutes)
		s.Equal(1, s.store.Len())
		s.Len(s.mailer.lastCode(), verification.CodeLength)
		s.mailer.AssertExpectations(s.T())

		exists, err := s.users.ExistsByEmail(s.ctx, mustEmail(s.T(), "test@example.com"))
		s.Require().NoError(err)
		s.False(exists, "no account before verification")
	})

	s.Run("success: mail failure does not fail the request", func() {
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "mailfail@example.com" })
		s.mailer.On("SendVerificationCode", mock.Anything, "mailfail@example.com", mock.Anything, mock.Anything).
			Return(errs.New("smtp unavailable")).Once()

		_, err := s.commands.Register(s.ctx, b.BuildRegisterDTO())
		s.NoError(err)
	})

	s.Run("error: invalid input is marked", func() {
		cases := []struct {
			name   string
			mutate func(*builder.AuthBuilder)
			want   error
		}{
			{name: "short username", mutate: func(b *builder.AuthBuilder) { b.Username = "ab" }, want: user.ErrInvalidUsername},
			{name: "weak password", mutate: func(b *builder.AuthBuilder) { b.Password = "12345" }, want: user.ErrPasswordTooWeak},
			{name: "unknown label", mutate: func(b *builder.AuthBuilder) { b.Label = "pilot" }, want: user.ErrInvalidLabel},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.commands.Register(s.ctx, builder.NewAuthBuilder().With(tc.mutate).BuildRegisterDTO())
				s.Require().Error(err)
				s.True(errs.Is(err, tc.want))
				s.True(errs.Is(err, errs.ErrInvalidInput))
			})
		}
	})

	s.Run("error: already registered email is a conflict", func() {
		s.Require().NoError(s.users.Create(s.ctx, builder.NewUserBuilder().WithEmail("taken@example.com").BuildDomain()))

		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "Taken@Example.com" })
		_, err := s.commands.Register(s.ctx, b.BuildRegisterDTO())

		s.ErrorIs(err, commands.ErrEmailAlreadyRegistered)
		s.True(errs.Is(err, errs.ErrConflict))
	})
}

func (s *AuthCommandsTestSuite) TestVerifyEmail() {
	s.Run("success: creates the account and issues tokens", func() {
		b := builder.NewAuthBuilder()
		code := s.register(b)

		result, err := s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})

		s.Require().NoError(err)
		s.Equal(b.Email, result.User.Email)
		s.Equal(b.Username, result.User.Username)
		s.Equal("business", result.User.Label)
		s.True(result.User.IsActive)

		claims, err := s.jwt.ValidateToken(result.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(result.User.ID, claims.UserID)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)

		_, hashed, err := s.users.FindByEmail(s.ctx, b.Email)
		s.Require().NoError(err)
		s.NotEqual(b.Password, hashed)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(hashed), []byte(b.Password)))
	})

	s.Run("error: the same code cannot be used twice", func() {
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "twice@example.com" })
		code := s.register(b)

		_, err := s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})
		s.Require().NoError(err)

		_, err = s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})
		s.ErrorIs(err, verification.ErrNotFound)
	})

	s.Run("error: expired code", func() {
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "late@example.com" })
		code := s.register(b)

		s.clock.Add(verification.TTL + time.Second)
		_, err := s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})

		s.ErrorIs(err, verification.ErrExpired)
		exists, _ := s.users.ExistsByEmail(s.ctx, mustEmail(s.T(), b.Email))
		s.False(exists)
	})

	s.Run("error: address taken while the code was pending", func() {
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "race@example.com" })
		code := s.register(b)
		s.Require().NoError(s.users.Create(s.ctx, builder.NewUserBuilder().WithEmail("race@example.com").BuildDomain()))

		_, err := s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})
		s.ErrorIs(err, commands.ErrEmailAlreadyRegistered)
	})

	s.Run("一時的な保存失敗でも同じコードで再試行できる", func() {
		flaky := &flakyUserRepository{MemoryUserRepository: s.users, createErr: errs.New("connection reset")}
		cmds := s.commandsWith(flaky)
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "retry@example.com" })
		code := s.register(b)

		_, err := cmds.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})
		s.Require().Error(err)
		s.False(errs.Is(err, errs.ErrConflict))
		s.Equal(1, s.store.Len(), "pending entry survives the failed create")

		flaky.createErr = nil
		result, err := cmds.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})
		s.Require().NoError(err)
		s.Equal(b.Email, result.User.Email)
		s.Zero(s.store.Len())
	})

	s.Run("resend still works after a failed create", func() {
		flaky := &flakyUserRepository{MemoryUserRepository: s.users, createErr: errs.New("connection reset")}
		cmds := s.commandsWith(flaky)
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "again@example.com" })
		code := s.register(b)

		_, err := cmds.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: code})
		s.Require().Error(err)

		s.mailer.On("SendVerificationCode", mock.Anything, b.Email, "", mock.Anything).Return(nil).Once()
		_, err = cmds.ResendVerification(s.ctx, reqdto.ResendVerificationRequest{Email: b.Email})
		s.NoError(err)
	})

	s.Run("error: malformed email", func() {
		_, err := s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: "nope", Code: "123456"})
		s.True(errs.Is(err, errs.ErrInvalidInput))
	})
}

func (s *AuthCommandsTestSuite) TestResendVerification() {
	s.Run("success: old code stops working", func() {
		b := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "resend@example.com" })
		old := s.register(b)

		s.mailer.On("SendVerificationCode", mock.Anything, b.Email, "", mock.Anything).Return(nil).Once()
		result, err := s.commands.ResendVerification(s.ctx, reqdto.ResendVerificationRequest{Email: b.Email})
		s.Require().NoError(err)
		s.Equal(10, result.ExpiresInMinutes)
		fresh := s.mailer.lastCode()

		if old != fresh {
			_, err = s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: old})
			s.ErrorIs(err, verification.ErrMismatch)
		}
		_, err = s.commands.VerifyEmail(s.ctx, reqdto.VerifyEmailRequest{Email: b.Email, Code: fresh})
		s.NoError(err)
	})

	s.Run("error: nothing pending", func() {
		_, err := s.commands.ResendVerification(s.ctx, reqdto.ResendVerificationRequest{Email: "ghost@example.com"})
		s.ErrorIs(err, verification.ErrNotFound)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	hasher := password.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	s.Require().NoError(err)

	active := builder.NewUserBuilder().WithEmail("active@example.com").WithPasswordHash(hash)
	s.Require().NoError(s.users.Create(s.ctx, active.BuildDomain()))
	inactive := builder.NewUserBuilder().WithEmail("inactive@example.com").WithPasswordHash(hash).AsInactive()
	s.Require().NoError(s.users.Create(s.ctx, inactive.BuildDomain()))

	s.Run("success", func() {
		result, err := s.commands.Login(s.ctx, reqdto.LoginRequest{Email: "ACTIVE@example.com", Password: "password123"})

		s.Require().NoError(err)
		s.Equal(active.ID, result.User.ID)
		claims, err := s.jwt.ValidateToken(result.TokenPair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeRefresh, claims.TokenType)
	})

	s.Run("error: wrong password and unknown email look the same", func() {
		_, err := s.commands.Login(s.ctx, reqdto.LoginRequest{Email: "active@example.com", Password: "wrong-password"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)

		_, err = s.commands.Login(s.ctx, reqdto.LoginRequest{Email: "unknown@example.com", Password: "password123"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: 空のパスワード", func() {
		_, err := s.commands.Login(s.ctx, reqdto.LoginRequest{Email: "active@example.com", Password: ""})
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: inactive account", func() {
		_, err := s.commands.Login(s.ctx, reqdto.LoginRequest{Email: "inactive@example.com", Password: "password123"})
		s.ErrorIs(err, commands.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	u := builder.NewUserBuilder().WithEmail("refresh@example.com")
	s.Require().NoError(s.users.Create(s.ctx, u.BuildDomain()))

	s.Run("success: rotates both tokens", func() {
		refresh, err := s.jwt.GenerateRefreshToken(u.ID, u.Email)
		s.Require().NoError(err)

		pair, err := s.commands.RefreshToken(s.ctx, refresh)

		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
	})

	s.Run("error: access token is not accepted", func() {
		access, err := s.jwt.GenerateAccessToken(u.ID, u.Email)
		s.Require().NoError(err)

		_, err = s.commands.RefreshToken(s.ctx, access)
		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("error: garbage token", func() {
		_, err := s.commands.RefreshToken(s.ctx, "not-a-jwt")
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("error: user no longer exists", func() {
		ghost := builder.NewUserBuilder()
		refresh, err := s.jwt.GenerateRefreshToken(ghost.ID, ghost.Email)
		s.Require().NoError(err)

		_, err = s.commands.RefreshToken(s.ctx, refresh)
		s.ErrorIs(err, commands.ErrUserNotFound)
	})
}

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	e, err := user.NewEmail(s)
	if err != nil {
		t.Fatalf("invalid email %q: %v", s, err)
	}
	return e
}
