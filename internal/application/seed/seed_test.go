package seed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/seed"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/logger"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/password"
)

type fakeUserRepo struct {
	usuarios map[string]*entity.Usuario
	failWith error
}

func (f *fakeUserRepo) Create(u *entity.Usuario) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.usuarios[u.Email]; ok {
		return domain.ErrUsuarioYaExiste
	}
	f.usuarios[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(string) (*entity.Usuario, error) { return nil, nil }

func (f *fakeUserRepo) GetByEmail(email string) (*entity.Usuario, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.usuarios[email], nil
}

func (f *fakeUserRepo) List() ([]*entity.Usuario, error) { return nil, nil }

type fakeEmpresaRepo struct {
	registros []*entity.DatosEmpresa
	failWith  error
}

func (f *fakeEmpresaRepo) Create(e *entity.DatosEmpresa) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.registros = append(f.registros, e)
	return nil
}

func (f *fakeEmpresaRepo) First() (*entity.DatosEmpresa, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if len(f.registros) == 0 {
		return nil, nil
	}
	return f.registros[0], nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestRun_StoreVacio_CreaCuentasYEmpresa(t *testing.T) {
	users := &fakeUserRepo{usuarios: make(map[string]*entity.Usuario)}
	empresa := &fakeEmpresaRepo{}

	require.NoError(t, seed.New(users, empresa, testLogger()).Run())

	assert.Len(t, users.usuarios, len(seed.CuentasPorDefecto))
	assert.Len(t, empresa.registros, 1)

	// Cada cuenta guarda el hash, no el password literal, y los roles literales.
	for _, cuenta := range seed.CuentasPorDefecto {
		u := users.usuarios[cuenta.Email]
		require.NotNil(t, u, "debe existir la cuenta %s", cuenta.Email)
		assert.NotEqual(t, cuenta.Password, u.PasswordHash)
		assert.True(t, password.Verify(cuenta.Password, u.PasswordHash))
		assert.Equal(t, cuenta.Rol, u.Rol)
	}

	reg := empresa.registros[0]
	assert.Equal(t, seed.EmpresaPorDefecto.RFC, reg.RFC)
	assert.NotEmpty(t, reg.ID)
}

// Idempotencia: correr dos veces deja exactamente 4 cuentas y 1 empresa.
func TestRun_DosVeces_MismoEstadoFinal(t *testing.T) {
	users := &fakeUserRepo{usuarios: make(map[string]*entity.Usuario)}
	empresa := &fakeEmpresaRepo{}
	s := seed.New(users, empresa, testLogger())

	require.NoError(t, s.Run())
	require.NoError(t, s.Run())

	assert.Len(t, users.usuarios, 4)
	assert.Len(t, empresa.registros, 1)
}

func TestRun_FalloDeStorage_AbortaConError(t *testing.T) {
	users := &fakeUserRepo{usuarios: make(map[string]*entity.Usuario), failWith: errors.New("sin conexión")}
	empresa := &fakeEmpresaRepo{}

	err := seed.New(users, empresa, testLogger()).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), seed.CuentasPorDefecto[0].Email,
		"el error debe indicar en qué paso abortó")
	assert.Empty(t, empresa.registros, "tras abortar no debe continuar con la empresa")
}
