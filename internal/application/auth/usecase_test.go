package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/auth"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/dto"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"
	pkgjwt "github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/jwt"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/password"
)

// fakeUserRepo repositorio en memoria para tests del use case.
type fakeUserRepo struct {
	usuarios map[string]*entity.Usuario // por email
	failWith error                      // si no es nil, toda operación falla
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usuarios: make(map[string]*entity.Usuario)}
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

func (f *fakeUserRepo) GetByID(id string) (*entity.Usuario, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.Usuario, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.usuarios[email], nil
}

func (f *fakeUserRepo) List() ([]*entity.Usuario, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var list []*entity.Usuario
	for _, u := range f.usuarios {
		list = append(list, u)
	}
	return list, nil
}

var testJWTCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"}

func TestRegistrar_CreaUsuarioSinPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)

	out, err := uc.Registrar(dto.SignupRequest{
		Email:     "a@b.com",
		Password:  "pw123456",
		FirstName: "Juan",
		LastName:  "Pérez",
		Rol:       entity.RolVentas,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "Juan Pérez", out.Name, "name se deriva de firstName y lastName")
	assert.Equal(t, entity.RolVentas, out.Rol)

	// El registro persistido guarda solo el hash, nunca el texto plano.
	guardado := repo.usuarios["a@b.com"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "pw123456", guardado.PasswordHash)
	assert.True(t, password.Verify("pw123456", guardado.PasswordHash))
}

func TestRegistrar_SinNombres_NameVacio(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.Registrar(dto.SignupRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	assert.Equal(t, "", out.Name, "sin nombres, name queda vacío tras recortar")
	assert.Equal(t, entity.RolGeneral, out.Rol, "rol omitido se coacciona a GENERAL")
}

func TestRegistrar_RolInvalido_SeCoaccionaAGeneral(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.Registrar(dto.SignupRequest{
		Email:    "a@b.com",
		Password: "pw123456",
		Rol:      "SUPERUSUARIO",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolGeneral, out.Rol)
}

func TestRegistrar_EmailDuplicado_Conflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.Registrar(dto.SignupRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = uc.Registrar(dto.SignupRequest{Email: "a@b.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUsuarioYaExiste)
	assert.Len(t, repo.usuarios, 1, "el conflicto no debe crear un segundo registro")
}

func TestVerificarCredenciales_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.VerificarCredenciales(dto.LoginRequest{Email: "nadie@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

func TestVerificarCredenciales_SinHash_MismoErrorQueInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	repo.usuarios["a@b.com"] = &entity.Usuario{ID: "1", Email: "a@b.com"}
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.VerificarCredenciales(dto.LoginRequest{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado,
		"cuenta sin hash no debe distinguirse de cuenta inexistente")
}

func TestVerificarCredenciales_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	_, err := uc.Registrar(dto.SignupRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = uc.VerificarCredenciales(dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrPasswordIncorrecta)
}

func TestVerificarCredenciales_Exito_NoExponeHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	_, err := uc.Registrar(dto.SignupRequest{
		Email:     "a@b.com",
		Password:  "pw123456",
		FirstName: "Juan",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	out, err := uc.VerificarCredenciales(dto.LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "Juan Pérez", out.Name)
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	creado, err := uc.Registrar(dto.SignupRequest{
		Email:    "a@b.com",
		Password: "pw123456",
		Rol:      entity.RolAdministrador,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, rol, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, userID)
	assert.Equal(t, entity.RolAdministrador, rol)
}

func TestListarUsuarios_ProyeccionReducida(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	_, err := uc.Registrar(dto.SignupRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	_, err = uc.Registrar(dto.SignupRequest{Email: "b@b.com", Password: "pw123456"})
	require.NoError(t, err)

	resumen, err := uc.ListarUsuarios()
	require.NoError(t, err)
	assert.Len(t, resumen, 2)
}

func TestUseCase_FalloDeAlmacenamiento_SePropaga(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failWith = errors.New("conexión rechazada")
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.Registrar(dto.SignupRequest{Email: "a@b.com", Password: "pw123456"})
	assert.Error(t, err)
	assert.False(t, auth.EsErrorDeUsuario(err), "un fallo de storage no es un error de usuario")

	_, err = uc.VerificarCredenciales(dto.LoginRequest{Email: "a@b.com", Password: "pw"})
	assert.Error(t, err)
	assert.False(t, auth.EsErrorDeUsuario(err))
}
