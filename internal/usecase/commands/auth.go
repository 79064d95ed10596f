package commands

import (
	"context"
	"log/slog"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/jwt"
	"coworking-booking/internal/pkg/password"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type SignupRequest struct {
	Email       string
	Password    string
	FullName    string
	CompanyName *string
	Unit        *string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*LoginResult, error)
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Signup registers an unapproved member and signs them in.
func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (*LoginResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	p, err := profile.NewProfile(credentials.Email(), profile.Details{
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		Unit:        req.Unit,
	}, a.clock.Now())
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Profiles().Create(ctx, tx.DB(), p, hash)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return ErrEmailTaken
		}
		return storageErr(derr, nil)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("profile registered", "user_id", p.ID(), "email", p.Email().Value())
	return a.issue(p.ID(), p.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	snap, err := a.uow.CommandReads().ProfileByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so the response never reveals which emails exist
			return nil, ErrInvalidCredentials
		}
		return nil, storageErr(err, nil)
	}

	if err = password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	result, err := a.issue(snap.ID, user.RoleFor(snap.IsAdmin))
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().UpdateLastLogin(ctx, tx.DB(), snap.ID)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return result, nil
}

// RefreshToken re-reads the profile so a promotion or demotion takes effect on
// the next refresh.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	snap, err := a.uow.CommandReads().ProfileByID(ctx, claims.UserID)
	if err != nil {
		return nil, storageErr(err, profile.ErrProfileNotFound)
	}

	return a.issue(snap.ID, user.RoleFor(snap.IsAdmin))
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*LoginResult, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		UserID: userID,
		Role:   role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}
