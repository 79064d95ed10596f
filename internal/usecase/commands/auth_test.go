//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/jwt"
	"coworking-booking/internal/pkg/password"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret-key-for-unit-tests"

func newJWT() *jwt.Service {
	return jwt.NewService(testSecret, 15*time.Minute, 24*time.Hour)
}

func TestAuthSignup(t *testing.T) {
	now := builder.At(2024, time.March, 1, 8, 0)

	t.Run("registers a pending member and issues tokens", func(t *testing.T) {
		f := newTxFixture(t, now)
		svc := newJWT()
		uc := commands.NewAuthCommands(f.uow, svc, f.clock)
		dto := builder.NewAuthBuilder().BuildSignupDTO()
		req := dto.ToCommand()

		f.profiles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p *profile.Profile, hash string) (uuid.UUID, error) {
				assert.False(t, p.IsApproved())
				assert.Equal(t, "test@example.com", p.Email().Value())
				assert.NoError(t, password.ComparePassword(hash, "password123"))
				return p.ID(), nil
			})

		result, err := uc.Signup(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, user.RoleMember, result.Role)

		claims, err := svc.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAuthCommands(f.uow, newJWT(), f.clock)
		dup := infra.WrapRepoErr("insert profile", &pgconn.PgError{Code: "23505"})

		f.profiles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, dup)

		dto := builder.NewAuthBuilder().BuildSignupDTO()
		_, err := uc.Signup(context.Background(), dto.ToCommand())
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("invalid input never reaches storage", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAuthCommands(f.uow, newJWT(), f.clock)
		dto := builder.NewAuthBuilder().BuildSignupDTO()
		req := dto.ToCommand()
		req.Password = "short"

		_, err := uc.Signup(context.Background(), req)
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestAuthLogin(t *testing.T) {
	now := builder.At(2024, time.March, 1, 8, 0)
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	stored := builder.NewProfileBuilder().WithEmail("test@example.com").WithPasswordHash(hash).AsAdmin()

	credentials := func(t *testing.T, pw string) user.Credentials {
		c, err := user.NewCredentials("test@example.com", pw)
		require.NoError(t, err)
		return c
	}

	t.Run("success records the login", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAuthCommands(f.uow, newJWT(), f.clock)

		f.reads.EXPECT().ProfileByEmail(gomock.Any(), "test@example.com").Return(stored.BuildSnapshot(), nil)
		f.profiles.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), stored.ID).Return(nil)

		result, err := uc.Login(context.Background(), credentials(t, "password123"))
		require.NoError(t, err)
		assert.Equal(t, stored.ID, result.UserID)
		assert.Equal(t, user.RoleAdmin, result.Role)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAuthCommands(f.uow, newJWT(), f.clock)

		f.reads.EXPECT().ProfileByEmail(gomock.Any(), gomock.Any()).Return(stored.BuildSnapshot(), nil)
		f.profiles.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), stored.ID).Return(dbDown())

		_, err := uc.Login(context.Background(), credentials(t, "password123"))
		require.NoError(t, err)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAuthCommands(f.uow, newJWT(), f.clock)

		f.reads.EXPECT().ProfileByEmail(gomock.Any(), gomock.Any()).Return(stored.BuildSnapshot(), nil)
		_, wrongPassword := uc.Login(context.Background(), credentials(t, "wrongpassword"))

		f.reads.EXPECT().ProfileByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound())
		_, unknownEmail := uc.Login(context.Background(), credentials(t, "password123"))

		require.ErrorIs(t, wrongPassword, commands.ErrInvalidCredentials)
		require.ErrorIs(t, unknownEmail, commands.ErrInvalidCredentials)
	})
}

func TestAuthRefresh(t *testing.T) {
	now := builder.At(2024, time.March, 1, 8, 0)
	member := builder.NewProfileBuilder()

	t.Run("role follows the current profile", func(t *testing.T) {
		f := newTxFixture(t, now)
		svc := newJWT()
		uc := commands.NewAuthCommands(f.uow, svc, f.clock)
		refresh, err := svc.GenerateRefreshToken(member.ID, user.RoleMember)
		require.NoError(t, err)

		promoted := builder.NewProfileBuilder().WithID(member.ID).AsAdmin()
		f.reads.EXPECT().ProfileByID(gomock.Any(), member.ID).Return(promoted.BuildSnapshot(), nil)

		result, err := uc.RefreshToken(context.Background(), refresh)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, result.Role)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		f := newTxFixture(t, now)
		svc := newJWT()
		uc := commands.NewAuthCommands(f.uow, svc, f.clock)
		access, err := svc.GenerateAccessToken(member.ID, user.RoleMember)
		require.NoError(t, err)

		_, err = uc.RefreshToken(context.Background(), access)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAuthCommands(f.uow, newJWT(), f.clock)

		_, err := uc.RefreshToken(context.Background(), "not-a-token")
		require.Error(t, err)
	})

	t.Run("deleted profile", func(t *testing.T) {
		f := newTxFixture(t, now)
		svc := newJWT()
		uc := commands.NewAuthCommands(f.uow, svc, f.clock)
		refresh, err := svc.GenerateRefreshToken(member.ID, user.RoleMember)
		require.NoError(t, err)

		f.reads.EXPECT().ProfileByID(gomock.Any(), member.ID).Return(nil, notFound())

		_, err = uc.RefreshToken(context.Background(), refresh)
		require.ErrorIs(t, err, profile.ErrProfileNotFound)
	})
}
