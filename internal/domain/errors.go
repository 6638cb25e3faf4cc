package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes de usuario
// (validación, conflicto, credenciales) viajan tal cual en la respuesta HTTP;
// los fallos internos nunca exponen la causa al cliente.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioYaExiste     = errors.New("El usuario ya existe")
	ErrUsuarioNoEncontrado = errors.New("Usuario no encontrado")
	ErrPasswordIncorrecta  = errors.New("Contraseña incorrecta")
	ErrDatosRequeridos     = errors.New("Email y contraseña son requeridos")
)
