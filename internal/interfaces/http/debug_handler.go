package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/auth"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/dto"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/logger"
)

// DebugHandler endpoints de diagnóstico para inspección de cuentas y prueba de
// credenciales. A diferencia de los endpoints de producción, aquí la causa
// interna de un fallo sí se expone en el campo details (uso diagnóstico).
type DebugHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewDebugHandler construye el handler de diagnóstico.
func NewDebugHandler(uc *auth.UseCase, log *logger.Logger) *DebugHandler {
	return &DebugHandler{uc: uc, log: log}
}

// ListUsuarios godoc
// @Summary      Listar cuentas (diagnóstico)
// @Tags         debug
// @Produce      json
// @Success      200  {object}  dto.DebugListResponse
// @Failure      500  {object}  dto.DebugErrorResponse
// @Router       /api/debug/usuarios [get]
func (h *DebugHandler) ListUsuarios(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarUsuarios()
	if err != nil {
		h.log.Error().Err(err).Msg("listado de diagnóstico falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DebugErrorResponse{
			Error:   "Error interno del servidor",
			Details: err.Error(),
		})
	}
	return c.JSON(dto.DebugListResponse{
		Success:   true,
		UserCount: len(usuarios),
		Users:     usuarios,
	})
}

// CheckCredenciales godoc
// @Summary      Verificar credenciales (diagnóstico)
// @Tags         debug
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.DebugLoginResponse
// @Failure      401   {object}  dto.DebugErrorResponse
// @Failure      500   {object}  dto.DebugErrorResponse
// @Router       /api/debug/usuarios [post]
func (h *DebugHandler) CheckCredenciales(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DebugErrorResponse{Error: "cuerpo inválido"})
	}
	user, err := h.uc.VerificarCredenciales(in)
	if err != nil {
		if auth.EsErrorDeUsuario(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.DebugErrorResponse{Error: err.Error()})
		}
		h.log.Error().Err(err).Str("email", in.Email).Msg("verificación de diagnóstico falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DebugErrorResponse{
			Error:   "Error interno del servidor",
			Details: err.Error(),
		})
	}
	return c.JSON(dto.DebugLoginResponse{Success: true, User: *user})
}
