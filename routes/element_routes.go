package routes

import (
	"crit-server/controllers"
	"crit-server/middlewares"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

func ElementRoutes(app *fiber.App, elementController *controllers.ElementController, store *utils.PublicKeyStore) {
	app.Post("/elements", middleware.JWTParser(store), elementController.CreateElement)
	app.Get("/elements/:id", elementController.GetElementByID)
	app.Get("/elements/board/:boardId", elementController.GetElementsByBoardID)
	app.Patch("/elements/:id", elementController.PatchElement)
	app.Delete("/elements/:id", middleware.JWTParser(store), elementController.DeleteElementByID)
}
