package controllers

import (
	"log"

	"crit-server/models"
	"crit-server/repository"

	"github.com/gofiber/fiber/v2"
)

type TaskController struct {
	repo        repository.TaskRepositoryInterface
	commentRepo repository.CommentRepositoryInterface
}

func NewTaskController(repo repository.TaskRepositoryInterface, commentRepo repository.CommentRepositoryInterface) *TaskController {
	return &TaskController{repo: repo, commentRepo: commentRepo}
}

// CreateTask creates a task directly or promotes a comment into one. When
// sourceCommentId is given, an empty text inherits the comment's text and the
// comment is flagged as a task.
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	var req struct {
		BoardID         string `json:"boardId"`
		SourceCommentID string `json:"sourceCommentId"`
		Text            string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	task := models.Task{
		BoardID:         req.BoardID,
		SourceCommentID: req.SourceCommentID,
		Text:            req.Text,
		Status:          models.TaskOpen,
	}

	if req.SourceCommentID != "" {
		comment, err := tc.commentRepo.FindCommentByID(req.SourceCommentID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Source comment not found"})
		}
		if task.Text == "" {
			task.Text = comment.Text
		}
		if task.BoardID == "" {
			task.BoardID = comment.BoardID
		}
		if task.BoardID != comment.BoardID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment belongs to a different board"})
		}

		flag := true
		if err := tc.commentRepo.UpdateComment(comment.ID, models.CommentPatch{IsTask: &flag}); err != nil {
			log.Println("Failed to flag source comment:", err)
		}
	}

	if task.BoardID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Board id is required"})
	}
	if task.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text is required"})
	}

	objectID, err := tc.repo.SaveTask(task)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save task"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": objectID})
}

func (tc *TaskController) GetTasksByBoardID(c *fiber.Ctx) error {
	boardID := c.Params("boardId")
	tasks, err := tc.repo.FindTasksByBoardID(boardID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to find tasks"})
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

func (tc *TaskController) UpdateTaskStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var request struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if !models.ValidTaskStatus(request.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task status"})
	}

	if err := tc.repo.UpdateTaskStatus(id, request.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task status"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (tc *TaskController) DeleteTaskByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := tc.repo.DeleteTaskByID(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
