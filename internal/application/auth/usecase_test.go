package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rider-tracker/internal/application/auth"
	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rider-tracker/pkg/jwt"
)

const secret = "test-secret"

func newUseCase() *auth.AuthUseCase {
	repo := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}).
		WithBcryptCost(bcrypt.MinCost)
}

func TestSignupLoginProfile(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	out, err := uc.Signup(ctx, dto.SignupRequest{Name: " Juan ", Email: " Juan@Mail.COM ", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "juan@mail.com", out.User.Email)
	assert.Equal(t, "Juan", out.User.Name)
	assert.Equal(t, entity.RoleRider, out.User.Role)

	userID, role, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleRider, role)

	_, err = uc.Signup(ctx, dto.SignupRequest{Name: "Otro", Email: "juan@mail.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	logged, err := uc.Login(ctx, dto.LoginRequest{Email: "JUAN@mail.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, logged.User.ID)

	profile, err := uc.Profile(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan", profile.Name)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.Signup(ctx, dto.SignupRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreto"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@mail.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@mail.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSignup_EntradaInvalida(t *testing.T) {
	_, err := newUseCase().Signup(context.Background(), dto.SignupRequest{Name: "Ana", Email: "ana@mail.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfile_NoExiste(t *testing.T) {
	_, err := newUseCase().Profile(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
