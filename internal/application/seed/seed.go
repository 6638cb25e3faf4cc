// Package seed implementa el aprovisionamiento inicial de la base: cuentas por
// defecto de la agencia y el registro único de datos de empresa. Es una tarea
// de una sola pasada, idempotente: ejecutarla N veces deja el mismo estado que
// ejecutarla una vez.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/repository"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/logger"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/password"
)

// CuentaInicial cuenta por defecto con credenciales literales.
type CuentaInicial struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Puesto    string
	Rol       string
}

// CuentasPorDefecto las cuatro cuentas provisionadas en cada despliegue.
var CuentasPorDefecto = []CuentaInicial{
	{
		Email:     "director@hondaoptimiza.mx",
		Password:  "Honda2025!",
		FirstName: "Edgar",
		LastName:  "Ramírez",
		Puesto:    "Director General",
		Rol:       entity.RolAdministrador,
	},
	{
		Email:     "gerente.ventas@hondaoptimiza.mx",
		Password:  "Ventas2025!",
		FirstName: "Laura",
		LastName:  "Mendoza",
		Puesto:    "Gerente de Ventas",
		Rol:       entity.RolVentas,
	},
	{
		Email:     "asesor@hondaoptimiza.mx",
		Password:  "Asesor2025!",
		FirstName: "Carlos",
		LastName:  "Ortiz",
		Puesto:    "Asesor de Ventas",
		Rol:       entity.RolVentas,
	},
	{
		Email:     "recepcion@hondaoptimiza.mx",
		Password:  "Recepcion2025!",
		FirstName: "Ana",
		LastName:  "Flores",
		Puesto:    "Recepción",
		Rol:       entity.RolGeneral,
	},
}

// EmpresaPorDefecto el registro fiscal de la agencia.
var EmpresaPorDefecto = entity.DatosEmpresa{
	NombreEmpresa: "Honda Optimiza Automotriz",
	RazonSocial:   "Honda Optimiza Automotriz S.A. de C.V.",
	RFC:           "HOA150612AB3",
	Calle:         "Av. Insurgentes Sur",
	Numero:        "1425",
	Colonia:       "Insurgentes Mixcoac",
	Delegacion:    "Benito Juárez",
	CodigoPostal:  "03920",
	Ciudad:        "Ciudad de México",
	Estado:        "CDMX",
}

// Seeder aprovisiona cuentas y datos de empresa a través de los puertos de persistencia.
type Seeder struct {
	users   repository.UserRepository
	empresa repository.EmpresaRepository
	log     *logger.Logger
}

// New construye el seeder con los repositorios inyectados.
func New(users repository.UserRepository, empresa repository.EmpresaRepository, log *logger.Logger) *Seeder {
	return &Seeder{users: users, empresa: empresa, log: log}
}

// Run ejecuta el aprovisionamiento completo. Cualquier fallo aborta la rutina
// y se propaga al llamador; el cierre de la conexión es responsabilidad de quien
// la abrió (cmd/seed la libera con defer pase lo que pase).
func (s *Seeder) Run() error {
	for _, cuenta := range CuentasPorDefecto {
		if err := s.seedCuenta(cuenta); err != nil {
			return fmt.Errorf("cuenta %s: %w", cuenta.Email, err)
		}
	}
	if err := s.seedEmpresa(); err != nil {
		return fmt.Errorf("datos de empresa: %w", err)
	}
	s.log.Info().Msg("seed completado")
	return nil
}

func (s *Seeder) seedCuenta(cuenta CuentaInicial) error {
	existing, err := s.users.GetByEmail(cuenta.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Info().Str("email", cuenta.Email).Msg("usuario ya existe, se omite")
		return nil
	}
	hash, err := password.Hash(cuenta.Password)
	if err != nil {
		return err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        cuenta.Email,
		PasswordHash: hash,
		FirstName:    cuenta.FirstName,
		LastName:     cuenta.LastName,
		Name:         cuenta.FirstName + " " + cuenta.LastName,
		Puesto:       cuenta.Puesto,
		Rol:          cuenta.Rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(usuario); err != nil {
		return err
	}
	s.log.Info().Str("email", cuenta.Email).Str("rol", cuenta.Rol).Msg("usuario creado")
	return nil
}

func (s *Seeder) seedEmpresa() error {
	existing, err := s.empresa.First()
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Info().Str("empresa", existing.NombreEmpresa).Msg("datos de empresa ya existen, se omite")
		return nil
	}
	now := time.Now()
	empresa := EmpresaPorDefecto
	empresa.ID = uuid.New().String()
	empresa.CreatedAt = now
	empresa.UpdatedAt = now
	if err := s.empresa.Create(&empresa); err != nil {
		return err
	}
	s.log.Info().Str("empresa", empresa.NombreEmpresa).Msg("datos de empresa creados")
	return nil
}
