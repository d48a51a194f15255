package controllers

import (
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController exposes operational endpoints. Key reload re-reads the JWT
// public key directory so the auth service can rotate signing keys without a
// restart.
type AdminController struct {
	store  *utils.PublicKeyStore
	keyDir string
}

func NewAdminController(store *utils.PublicKeyStore, keyDir string) *AdminController {
	return &AdminController{store: store, keyDir: keyDir}
}

func (ac *AdminController) ReloadKeys(c *fiber.Ctx) error {
	loaded, err := ac.store.LoadKeys(ac.keyDir)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reload keys: " + err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "loaded": loaded})
}
