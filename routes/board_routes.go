package routes

import (
	"crit-server/controllers"
	"crit-server/middlewares"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

func BoardRoutes(app *fiber.App, boardController *controllers.BoardController, store *utils.PublicKeyStore) {
	app.Post("/boards", middleware.JWTParser(store), boardController.CreateBoard)
	app.Get("/boards/:id", middleware.OptionalJWTParser(store), boardController.GetBoardByID)
	app.Get("/boards/owner/:ownerId", middleware.JWTParser(store), boardController.GetBoardsByOwnerID)
	app.Put("/boards/:id/title", middleware.JWTParser(store), boardController.UpdateBoardTitle)
	app.Patch("/boards/:id/visibility", middleware.JWTParser(store), boardController.UpdateBoardVisibility)
	app.Delete("/boards/:id", middleware.JWTParser(store), boardController.DeleteBoardByID)
}
