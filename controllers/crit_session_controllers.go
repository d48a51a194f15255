package controllers

import (
	"crit-server/middlewares"
	"crit-server/models"
	"crit-server/repository"
	"crit-server/utils"

	"github.com/gofiber/fiber/v2"
)

type CritSessionController struct {
	repo      repository.CritSessionRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
}

func NewCritSessionController(repo repository.CritSessionRepositoryInterface, boardRepo repository.BoardRepositoryInterface) *CritSessionController {
	return &CritSessionController{repo: repo, boardRepo: boardRepo}
}

// CreateSession starts a Live Crit for a board. A board keeps one session
// record: if one already exists it is reactivated and its join code reused,
// so links shared in an earlier crit keep working.
func (sc *CritSessionController) CreateSession(c *fiber.Ctx) error {
	var req struct {
		BoardID string `json:"boardId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.BoardID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Board id is required"})
	}

	board, err := sc.boardRepo.FindBoardByID(req.BoardID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
	}
	claims := middleware.UserClaims(c)
	if claims.UserID != board.OwnerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the board owner"})
	}

	if existing, err := sc.repo.FindSessionByBoardID(req.BoardID); err == nil {
		if existing.Status == models.SessionEnded {
			if err := sc.repo.ReactivateSession(existing.ID); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reactivate session"})
			}
		}
		existing.Status = models.SessionActive
		existing.EndedAt = nil
		return c.Status(fiber.StatusOK).JSON(existing)
	}

	code, err := utils.NewShareCode()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate join code"})
	}

	session := models.CritSession{
		BoardID:  req.BoardID,
		JoinCode: code,
		Status:   models.SessionActive,
	}
	objectID, err := sc.repo.SaveSession(session)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}

	session.ID = objectID
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSessionByCode resolves a guest join code. Ended sessions are as good as
// missing to a guest.
func (sc *CritSessionController) GetSessionByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	session, err := sc.repo.FindSessionByJoinCode(code)
	if err != nil || session.Status != models.SessionActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.Status(fiber.StatusOK).JSON(session)
}

func (sc *CritSessionController) GetSessionByBoardID(c *fiber.Ctx) error {
	boardID := c.Params("boardId")
	session, err := sc.repo.FindSessionByBoardID(boardID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.Status(fiber.StatusOK).JSON(session)
}

func (sc *CritSessionController) EndSession(c *fiber.Ctx) error {
	id := c.Params("id")
	session, err := sc.repo.FindSessionByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	board, err := sc.boardRepo.FindBoardByID(session.BoardID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
	}
	claims := middleware.UserClaims(c)
	if claims.UserID != board.OwnerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not the board owner"})
	}

	if err := sc.repo.EndSession(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to end session"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
