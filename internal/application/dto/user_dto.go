package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en el use case).
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Rol       string `json:"role"`
}

// LoginRequest entrada para verificación de credenciales.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse salida completa de un usuario (sin password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Name      string    `json:"name"`
	Puesto    string    `json:"puesto"`
	Rol       string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UsuarioResumen proyección reducida para el listado de diagnóstico.
type UsuarioResumen struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Rol    string `json:"role"`
	Name   string `json:"name"`
	Puesto string `json:"puesto"`
}

// SignupResponse salida del registro: usuario creado más mensaje de confirmación.
type SignupResponse struct {
	User    UsuarioResponse `json:"user"`
	Message string          `json:"message"`
}

// LoginResponse salida del login con token de sesión.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
