package utils

import (
	"time"

	"project/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateAdminToken issues the bearer token handed out after a
// successful admin login. It only asserts "the dashboard is unlocked";
// there are no per-user identities behind the shared-secret gate.
func GenerateAdminToken(cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyAdminToken checks the Authorization header for a valid admin
// token.
func VerifyAdminToken(c *fiber.Ctx, cfg *config.Config) error {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	if role, ok := claims["role"].(string); !ok || role != "admin" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid role in token")
	}

	return nil
}
