package controllers

import (
	"log"

	"crit-server/middlewares"
	"crit-server/models"
	"crit-server/repository"

	"github.com/gofiber/fiber/v2"
)

type BoardController struct {
	repo        repository.BoardRepositoryInterface
	elementRepo repository.ElementRepositoryInterface
	commentRepo repository.CommentRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	sessionRepo repository.CritSessionRepositoryInterface
}

func NewBoardController(
	repo repository.BoardRepositoryInterface,
	elementRepo repository.ElementRepositoryInterface,
	commentRepo repository.CommentRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	sessionRepo repository.CritSessionRepositoryInterface,
) *BoardController {
	return &BoardController{
		repo:        repo,
		elementRepo: elementRepo,
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		sessionRepo: sessionRepo,
	}
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	var board models.Board
	if err := c.BodyParser(&board); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if board.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}
	if board.Visibility == "" {
		board.Visibility = models.VisibilityPrivate
	}
	if !models.ValidVisibility(board.Visibility) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid visibility"})
	}

	claims := middleware.UserClaims(c)
	board.ID = ""
	board.OwnerID = claims.UserID

	objectID, err := bc.repo.SaveBoard(board)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save board"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": objectID})
}

func (bc *BoardController) GetBoardByID(c *fiber.Ctx) error {
	id := c.Params("id")
	board, err := bc.repo.FindBoardByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
	}

	if board.Visibility == models.VisibilityPrivate {
		claims := middleware.UserClaims(c)
		if claims == nil || claims.UserID != board.OwnerID {
			// Private boards look absent to anyone but their owner.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
		}
	}
	return c.Status(fiber.StatusOK).JSON(board)
}

func (bc *BoardController) GetBoardsByOwnerID(c *fiber.Ctx) error {
	ownerID := c.Params("ownerId")
	claims := middleware.UserClaims(c)
	if claims.UserID != ownerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the board owner"})
	}

	boards, err := bc.repo.FindBoardsByOwnerID(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to find boards"})
	}
	return c.Status(fiber.StatusOK).JSON(boards)
}

func (bc *BoardController) UpdateBoardTitle(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := bc.requireOwner(c, id); !ok {
		return nil
	}

	var request struct {
		NewTitle string `json:"newTitle"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if request.NewTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	if err := bc.repo.UpdateBoardTitle(id, request.NewTitle); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update board title"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (bc *BoardController) UpdateBoardVisibility(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := bc.requireOwner(c, id); !ok {
		return nil
	}

	var request struct {
		Visibility string `json:"visibility"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if !models.ValidVisibility(request.Visibility) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid visibility"})
	}

	if err := bc.repo.UpdateBoardVisibility(id, request.Visibility); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update board visibility"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

// DeleteBoardByID removes the board and everything scoped to it. Cascade
// failures are logged, not surfaced; orphans are invisible once the board row
// is gone.
func (bc *BoardController) DeleteBoardByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := bc.requireOwner(c, id); !ok {
		return nil
	}

	if err := bc.repo.DeleteBoardByID(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete board"})
	}

	if err := bc.elementRepo.DeleteElementsByBoardID(id); err != nil {
		log.Println("Failed to delete board elements:", err)
	}
	if err := bc.commentRepo.DeleteCommentsByBoardID(id); err != nil {
		log.Println("Failed to delete board comments:", err)
	}
	if err := bc.taskRepo.DeleteTasksByBoardID(id); err != nil {
		log.Println("Failed to delete board tasks:", err)
	}
	if err := bc.sessionRepo.DeleteSessionsByBoardID(id); err != nil {
		log.Println("Failed to delete board sessions:", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

// requireOwner loads the board and writes the error response itself when the
// caller is not its owner.
func (bc *BoardController) requireOwner(c *fiber.Ctx, id string) (models.Board, bool) {
	board, err := bc.repo.FindBoardByID(id)
	if err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
		return models.Board{}, false
	}
	claims := middleware.UserClaims(c)
	if claims == nil || claims.UserID != board.OwnerID {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the board owner"})
		return models.Board{}, false
	}
	return board, true
}
