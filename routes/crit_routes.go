package routes

import (
	"crit-server/controllers"
	"crit-server/middlewares"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

func CritSessionRoutes(app *fiber.App, sessionController *controllers.CritSessionController, store *utils.PublicKeyStore) {
	app.Post("/crit/sessions", middleware.JWTParser(store), sessionController.CreateSession)
	app.Get("/crit/sessions/code/:code", sessionController.GetSessionByCode)
	app.Get("/crit/sessions/board/:boardId", middleware.JWTParser(store), sessionController.GetSessionByBoardID)
	app.Patch("/crit/sessions/:id/end", middleware.JWTParser(store), sessionController.EndSession)
}
