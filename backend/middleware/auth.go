package middleware

import (
	"project/backend/config"
	"project/backend/session"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware gates the dashboard routes. It requires both a valid
// admin token and an unlocked session, so logging out invalidates
// access immediately even while an issued token is still live.
func AdminMiddleware(cfg *config.Config, sess *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := utils.VerifyAdminToken(c, cfg); err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !sess.AdminLoggedIn() {
			return utils.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
