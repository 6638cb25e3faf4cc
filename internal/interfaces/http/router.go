package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/auth"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API y aplica el route guard al resto de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Diagnóstico (público, no etiquetado para producción)
	debugHandler := NewDebugHandler(deps.AuthUC, deps.Log)
	debugGroup := api.Group("/debug")
	debugGroup.Get("/usuarios", debugHandler.ListUsuarios)
	debugGroup.Post("/usuarios", debugHandler.CheckCredenciales)

	// Entrada de login (pública por el patrón de exclusión del guard)
	app.Get(RutaLogin, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"mensaje": "inicie sesión en /api/auth/login"})
	})

	// Todo lo demás pasa por el route guard.
	app.Use(RouteGuard(deps.JWTSecret))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"mensaje": "panel de la agencia",
			"usuario": GetUserID(c),
			"rol":     GetRol(c),
		})
	})
}
