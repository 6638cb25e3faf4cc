package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/dto"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/repository"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/jwt"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/password"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, verificación de credenciales y listado.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Registrar crea una cuenta: verifica unicidad de email, hashea el password y
// persiste. El chequeo previo es una optimización; el árbitro real es el
// constraint único de la tabla, que el repositorio mapea a ErrUsuarioYaExiste.
func (uc *UseCase) Registrar(in dto.SignupRequest) (*dto.UsuarioResponse, error) {
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsuarioYaExiste
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Name:         strings.TrimSpace(in.FirstName + " " + in.LastName),
		Rol:          entity.ParseRol(in.Rol),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// VerificarCredenciales busca la cuenta por email y compara el password contra
// el hash almacenado. Cuenta inexistente y cuenta sin hash devuelven el mismo
// ErrUsuarioNoEncontrado para no facilitar enumeración de cuentas.
func (uc *UseCase) VerificarCredenciales(in dto.LoginRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.PasswordHash == "" {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if !password.Verify(in.Password, usuario.PasswordHash) {
		return nil, domain.ErrPasswordIncorrecta
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica credenciales y emite un token de sesión firmado.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.VerificarCredenciales(in)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *usuario}, nil
}

// ListarUsuarios devuelve todas las cuentas con proyección reducida (diagnóstico).
func (uc *UseCase) ListarUsuarios() ([]dto.UsuarioResumen, error) {
	usuarios, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	resumen := make([]dto.UsuarioResumen, 0, len(usuarios))
	for _, u := range usuarios {
		resumen = append(resumen, dto.UsuarioResumen{
			ID:     u.ID,
			Email:  u.Email,
			Rol:    u.Rol,
			Name:   u.Name,
			Puesto: u.Puesto,
		})
	}
	return resumen, nil
}

// EsErrorDeUsuario informa si el error es un fallo esperado de negocio
// (validación, conflicto o credenciales) y no un fallo interno.
func EsErrorDeUsuario(err error) bool {
	return errors.Is(err, domain.ErrUsuarioYaExiste) ||
		errors.Is(err, domain.ErrUsuarioNoEncontrado) ||
		errors.Is(err, domain.ErrPasswordIncorrecta) ||
		errors.Is(err, domain.ErrDatosRequeridos)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Name:      u.Name,
		Puesto:    u.Puesto,
		Rol:       u.Rol,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
