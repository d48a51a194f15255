package routes

import (
	"crit-server/controllers"
	"crit-server/middlewares"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

func TaskRoutes(app *fiber.App, taskController *controllers.TaskController, store *utils.PublicKeyStore) {
	app.Post("/tasks", middleware.JWTParser(store), taskController.CreateTask)
	app.Get("/tasks/board/:boardId", taskController.GetTasksByBoardID)
	app.Patch("/tasks/:id/status", middleware.JWTParser(store), taskController.UpdateTaskStatus)
	app.Delete("/tasks/:id", middleware.JWTParser(store), taskController.DeleteTaskByID)
}
