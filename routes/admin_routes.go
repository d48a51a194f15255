package routes

import (
	"crit-server/controllers"
	"crit-server/middlewares"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, adminController *controllers.AdminController, store *utils.PublicKeyStore) {
	app.Post("/admin/keys/reload", middleware.JWTParser(store), adminController.ReloadKeys)
}
