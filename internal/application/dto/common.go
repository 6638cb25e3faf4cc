package dto

// ErrorResponse cuerpo de error de los endpoints de aplicación.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DebugErrorResponse cuerpo de error de los endpoints de diagnóstico.
// Details expone la causa interna solo aquí (uso diagnóstico, no producción).
type DebugErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DebugListResponse listado de cuentas para diagnóstico.
type DebugListResponse struct {
	Success   bool             `json:"success"`
	UserCount int              `json:"userCount"`
	Users     []UsuarioResumen `json:"users"`
}

// DebugLoginResponse resultado de la verificación de credenciales de diagnóstico.
type DebugLoginResponse struct {
	Success bool            `json:"success"`
	User    UsuarioResponse `json:"user"`
}
