package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanmartincomanda/inventario/internal/application/usecase"
	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

func newAuthFixture() (*usecase.AuthUseCase, *fakeUserRepo, *fakeBranchRepo) {
	users := newFakeUserRepo()
	branches := &fakeBranchRepo{branches: []*entity.Branch{{ID: "suc-1", Name: "San Martín Centro"}}}
	uc := usecase.NewAuthUseCase(users, branches, testSecret, "inventario-test", 60)
	return uc, users, branches
}

func TestAuth_RegisterYLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	user, err := uc.Register(ctx, "  Admin@Sucursal.MX ", "contraseña-larga", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@sucursal.mx", user.Email)
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash)

	token, logged, err := uc.Login(ctx, "admin@sucursal.mx", "contraseña-larga")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	userID, branchID, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "suc-1", branchID, "el token lleva la sucursal del usuario")
}

func TestAuth_LoginCredencialesMalas(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "admin@sucursal.mx", "contraseña-larga", "suc-1")
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "admin@sucursal.mx", "otra-contraseña")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Usuario inexistente responde igual que contraseña mala.
	_, _, err = uc.Login(ctx, "nadie@sucursal.mx", "contraseña-larga")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_RegisterValidaciones(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "admin@sucursal.mx", "corta", "suc-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, "admin@sucursal.mx", "contraseña-larga", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNoBranch)

	_, err = uc.Register(ctx, "admin@sucursal.mx", "contraseña-larga", "suc-1")
	require.NoError(t, err)
	_, err = uc.Register(ctx, "ADMIN@sucursal.mx", "contraseña-larga", "suc-1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBranchCreate_NombreDuplicado(t *testing.T) {
	branches := &fakeBranchRepo{}
	uc := usecase.NewBranchUseCase(branches)
	ctx := context.Background()

	created, err := uc.Create(ctx, "  San Martín Norte ")
	require.NoError(t, err)
	assert.Equal(t, "San Martín Norte", created.Name)

	_, err = uc.Create(ctx, "san martín norte")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
