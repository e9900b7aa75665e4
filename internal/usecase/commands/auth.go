package commands

import (
	"context"
	"log/slog"

	"airease-backend/internal/domain/user"
	"airease-backend/internal/domain/verification"
	reqdto "airease-backend/internal/handler/dto/request"
	"airease-backend/internal/infra"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/pkg/jwt"
	"airease-backend/internal/pkg/password"
	"airease-backend/internal/usecase/queries"
	"airease-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
	ErrUserNotFound           = errs.New("user not found")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrUserInactive           = errs.New("user inactive")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrTokenValidation        = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterResult struct {
	Email            string
	ExpiresInMinutes int
}

type SessionResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	VerifyEmail(ctx context.Context, req reqdto.VerifyEmailRequest) (*SessionResult, error)
	ResendVerification(ctx context.Context, req reqdto.ResendVerificationRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*SessionResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users        UserRepository
	readStore    queries.UserReadStore
	verification shared.VerificationManager
	hasher       PasswordHasher
	mailer       Mailer
	jwtService   *jwt.Service
	clock        clock.Clock
	logger       *slog.Logger
}

func NewAuthCommands(
	users UserRepository,
	readStore queries.UserReadStore,
	verification shared.VerificationManager,
	hasher PasswordHasher,
	mailer Mailer,
	jwtService *jwt.Service,
	clk clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		users:        users,
		readStore:    readStore,
		verification: verification,
		hasher:       hasher,
		mailer:       mailer,
		jwtService:   jwtService,
		clock:        clk,
		logger:       logger,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	exists, err := a.users.ExistsByEmail(ctx, reg.Email())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := a.hasher.Hash(reg.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	code, err := a.verification.Issue(ctx, reg.Email().Value(), verification.PendingRegistration{
		Username:     reg.Username().Value(),
		PasswordHash: hash,
		Label:        reg.Label().String(),
	})
	if err != nil {
		return nil, err
	}

	a.sendCode(ctx, reg.Email().Value(), reg.Username().Value(), code)

	return &RegisterResult{
		Email:            reg.Email().Value(),
		ExpiresInMinutes: int(verification.TTL.Minutes()),
	}, nil
}

func (a *authCommandsImpl) VerifyEmail(ctx context.Context, req reqdto.VerifyEmailRequest) (*SessionResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	pending, err := a.verification.Verify(ctx, email.Value(), req.Code)
	if err != nil {
		return nil, err
	}

	// the address may have been registered while this code was pending
	exists, err := a.users.ExistsByEmail(ctx, email)
	if err != nil {
		a.restorePending(ctx, email.Value(), req.Code, pending)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	username, err := user.NewUsername(pending.Username)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	label, err := user.NewLabel(pending.Label)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	u := user.NewUser(email, username, pending.PasswordHash, label, a.clock.Now())
	if err := a.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		a.restorePending(ctx, email.Value(), req.Code, pending)
		return nil, err
	}

	pair, err := a.issueTokens(u.ID(), email.Value())
	if err != nil {
		return nil, err
	}

	return &SessionResult{
		User: &queries.AuthorizedUserView{
			ID:        u.ID(),
			Email:     email.Value(),
			Username:  username.Value(),
			Label:     label.String(),
			IsActive:  u.IsActive(),
			CreatedAt: u.CreatedAt(),
		},
		TokenPair: pair,
	}, nil
}

// restorePending keeps a registration retryable after a transient storage failure.
func (a *authCommandsImpl) restorePending(ctx context.Context, email, code string, pending verification.PendingRegistration) {
	if err := a.verification.Restore(ctx, email, code, pending); err != nil {
		a.logger.ErrorContext(ctx, "failed to restore pending registration", "email", email, "error", err)
	}
}

func (a *authCommandsImpl) ResendVerification(ctx context.Context, req reqdto.ResendVerificationRequest) (*RegisterResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	code, err := a.verification.Resend(ctx, email.Value())
	if err != nil {
		return nil, err
	}

	a.sendCode(ctx, email.Value(), "", code)

	return &RegisterResult{
		Email:            email.Value(),
		ExpiresInMinutes: int(verification.TTL.Minutes()),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*SessionResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hashed, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so accounts cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := a.hasher.Compare(hashed, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issueTokens(view.ID, view.Email)
	if err != nil {
		return nil, err
	}
	return &SessionResult{User: view, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(view.ID, view.Email)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, email string) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authCommandsImpl) sendCode(ctx context.Context, email, username, code string) {
	if err := a.mailer.SendVerificationCode(ctx, email, username, code); err != nil {
		a.logger.ErrorContext(ctx, "failed to send verification code",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
	}
}

var _ PasswordHasher = (*password.Hasher)(nil)
