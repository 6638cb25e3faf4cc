package http

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/jwt"
)

// Locals keys y cookie del token de sesión.
const (
	LocalUserID = "user_id"
	LocalRol    = "rol"

	CookieSesion = "sesion_token"
	RutaLogin    = "/login"
)

// rutasExcluidas: un solo patrón compilado con las rutas que el guard no
// protege: entrada de autenticación, API de auth, API de diagnóstico,
// health y assets estáticos.
var rutasExcluidas = regexp.MustCompile(`^/(login$|signup$|health$|favicon\.ico$|api/auth(/|$)|api/debug(/|$)|static/|assets/)`)

// RouteGuard protege todas las rutas no excluidas: sin token de sesión válido
// la petición se redirige a la entrada de login y no se procesa. Con token
// válido, la petición sigue sin cambios y los claims quedan en Locals.
func RouteGuard(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rutasExcluidas.MatchString(c.Path()) {
			return c.Next()
		}
		token := sessionToken(c)
		if token == "" {
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		userID, rol, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// sessionToken extrae el token de la cookie de sesión o, en su defecto,
// del header Authorization Bearer.
func sessionToken(c *fiber.Ctx) string {
	if tok := c.Cookies(CookieSesion); tok != "" {
		return tok
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetUserID devuelve el UserID del contexto (después del route guard).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRol devuelve el rol del contexto (después del route guard).
func GetRol(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRol).(string)
	return s
}
