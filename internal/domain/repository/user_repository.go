package repository

import "github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"

// UserRepository define el puerto de persistencia para Usuario (DIP).
// Es el único componente que toca el almacenamiento de cuentas; los handlers
// solo manejan copias transitorias en memoria.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrUsuarioYaExiste
	// si el constraint único de email lo rechaza.
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	// GetByEmail busca por coincidencia exacta; (nil, nil) si no existe.
	GetByEmail(email string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
}
