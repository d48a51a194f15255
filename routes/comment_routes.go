package routes

import (
	"crit-server/controllers"
	"crit-server/middlewares"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

func CommentRoutes(app *fiber.App, commentController *controllers.CommentController, store *utils.PublicKeyStore) {
	// Creation stays open: guests post Live Crit feedback with a session code.
	app.Post("/comments", middleware.OptionalJWTParser(store), commentController.CreateComment)
	app.Get("/comments/board/:boardId", commentController.GetCommentsByBoardID)
	app.Patch("/comments/:id", middleware.JWTParser(store), commentController.UpdateComment)
	app.Delete("/comments/:id", middleware.JWTParser(store), commentController.DeleteCommentByID)
}
