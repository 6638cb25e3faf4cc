package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador = "ADMINISTRADOR"
	RolVentas        = "VENTAS"
	RolGeneral       = "GENERAL"
)

// ParseRol normaliza un rol de entrada: cualquier valor fuera del conjunto
// válido se convierte en GENERAL (comportamiento de referencia del sistema).
func ParseRol(rol string) string {
	switch rol {
	case RolAdministrador, RolVentas, RolGeneral:
		return rol
	default:
		return RolGeneral
	}
}

// Usuario representa una cuenta del sistema de la agencia.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca el texto plano después de persistir
	FirstName    string
	LastName     string
	Name         string // concatenación recortada de FirstName y LastName al crear; no se re-deriva
	Puesto       string
	Rol          string // ADMINISTRADOR, VENTAS, GENERAL
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
