package handlers

import (
	applog "agrosite/internal/log"
	"agrosite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates the admin panel behind a bound editor session.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Доступ запрещен"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
