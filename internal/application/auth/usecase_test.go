package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	u.ID = r.nextID
	r.nextID++
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	u, _ := r.GetByID(context.Background(), id)
	return u != nil, nil
}

func (r *fakeUserRepo) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "ventas-api-test",
	})
	return uc, repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:       "Ana",
		LastName:        "Gómez",
		Email:           "ana@demo.local",
		Password:        "secreto123",
		ConfirmPassword: "secreto123",
	}
}

func TestRegister_Exito(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "ana@demo.local", out.Email)

	stored := repo.byEmail["ana@demo.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "el hash debe ser bcrypt")
}

func TestRegister_PasswordsNoCoinciden(t *testing.T) {
	uc, _ := buildAuthUC()

	in := registerRequest()
	in.ConfirmPassword = "otra"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Exito(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@demo.local",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@demo.local", out.User.Email)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@demo.local",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@demo.local",
		Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
