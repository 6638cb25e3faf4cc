package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/auth"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/dto"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/logger"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "email, password, firstName?, lastName?, role?"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.ErrDatosRequeridos.Error()})
	}
	// Validación antes de cualquier acceso a almacenamiento.
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.ErrDatosRequeridos.Error()})
	}
	user, err := h.uc.Registrar(in)
	if err != nil {
		if err == domain.ErrUsuarioYaExiste {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		// La causa interna va al log operacional, nunca al cliente.
		h.log.Error().Err(err).Str("email", in.Email).Msg("signup falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		User:    *user,
		Message: "Usuario creado exitosamente",
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.ErrDatosRequeridos.Error()})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.ErrDatosRequeridos.Error()})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if auth.EsErrorDeUsuario(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error().Err(err).Str("email", in.Email).Msg("login falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieSesion,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return c.JSON(out)
}
