package middleware

import (
	"strings"

	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTParser rejects requests without a valid Bearer token and stores the
// parsed claims under c.Locals("user").
func JWTParser(store *utils.PublicKeyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Authorization header",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Malformed Authorization header",
			})
		}

		claims, err := utils.ParseJWT(store, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid JWT: " + err.Error(),
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// OptionalJWTParser parses a Bearer token when one is present but never
// rejects. Handlers that serve both owners and guests check Locals("user")
// themselves.
func OptionalJWTParser(store *utils.PublicKeyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Next()
		}

		if claims, err := utils.ParseJWT(store, tokenString); err == nil {
			c.Locals("user", claims)
		}
		return c.Next()
	}
}

// UserClaims pulls parsed claims out of the request context, nil when the
// request is unauthenticated.
func UserClaims(c *fiber.Ctx) *utils.CustomClaims {
	claims, _ := c.Locals("user").(*utils.CustomClaims)
	return claims
}
