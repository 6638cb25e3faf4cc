package repository

import "github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"

// EmpresaRepository define el puerto de persistencia para DatosEmpresa.
// La implementación vive en infrastructure.
type EmpresaRepository interface {
	Create(empresa *entity.DatosEmpresa) error
	// First devuelve el primer registro si existe; (nil, nil) si la tabla está vacía.
	First() (*entity.DatosEmpresa, error)
}
