package controllers

import (
	"crit-server/middlewares"
	"crit-server/models"
	"crit-server/repository"
	service "crit-server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentController struct {
	repo        repository.CommentRepositoryInterface
	sessionRepo repository.CritSessionRepositoryInterface
	relay       *service.RelayService
}

func NewCommentController(
	repo repository.CommentRepositoryInterface,
	sessionRepo repository.CritSessionRepositoryInterface,
	relay *service.RelayService,
) *CommentController {
	return &CommentController{repo: repo, sessionRepo: sessionRepo, relay: relay}
}

// CreateComment accepts both owner feedback (source "student", JWT required)
// and guest Live Crit feedback (source "liveCrit", active session code
// required). The stored comment is relayed to the board room as a
// comment.insert event for every subscriber, the author's connection
// included.
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	var req struct {
		BoardID     string `json:"boardId"`
		ElementRef  string `json:"elementRef"`
		Author      string `json:"author"`
		Text        string `json:"text"`
		Category    string `json:"category"`
		IsTask      bool   `json:"isTask"`
		Source      string `json:"source"`
		SessionCode string `json:"sessionCode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.BoardID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Board id is required"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text is required"})
	}
	if req.Source == "" {
		req.Source = models.SourceStudent
	}
	if !models.ValidCommentSource(req.Source) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid comment source"})
	}

	claims := middleware.UserClaims(c)
	switch req.Source {
	case models.SourceStudent:
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
	case models.SourceLiveCrit:
		if req.SessionCode == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session code is required"})
		}
		session, err := cc.sessionRepo.FindSessionByJoinCode(req.SessionCode)
		if err != nil || session.Status != models.SessionActive || session.BoardID != req.BoardID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No active session for this board"})
		}
	}

	comment := models.Comment{
		BoardID:    req.BoardID,
		ElementRef: normalizeElementRef(req.ElementRef),
		Author:     req.Author,
		Text:       req.Text,
		Category:   req.Category,
		IsTask:     req.IsTask,
		Source:     req.Source,
	}
	if comment.Author == "" && claims != nil {
		comment.Author = claims.UserID
	}

	objectID, err := cc.repo.SaveComment(comment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save comment"})
	}

	saved, err := cc.repo.FindCommentByID(objectID)
	if err != nil {
		// Insert succeeded; fall back to what we have.
		saved = comment
		saved.ID = objectID
	}

	cc.relay.PublishEvent(models.LiveEvent{
		Type:    models.EventCommentInsert,
		BoardID: saved.BoardID,
		Data:    saved,
	})

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (cc *CommentController) GetCommentsByBoardID(c *fiber.Ctx) error {
	boardID := c.Params("boardId")
	comments, err := cc.repo.FindCommentsByBoardID(boardID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to find comments"})
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

func (cc *CommentController) UpdateComment(c *fiber.Ctx) error {
	id := c.Params("id")
	var patch models.CommentPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if patch.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}
	if patch.Text != nil && *patch.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text is required"})
	}

	if err := cc.repo.UpdateComment(id, patch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update comment"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (cc *CommentController) DeleteCommentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := cc.repo.DeleteCommentByID(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete comment"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

// normalizeElementRef canonicalizes refs that are element ids (UUID or
// ObjectID hex) and keeps free-text anchors verbatim. No referential check;
// a dangling ref is the client's concern.
func normalizeElementRef(ref string) string {
	if ref == "" {
		return ""
	}
	if u, err := uuid.Parse(ref); err == nil {
		return u.String()
	}
	if oid, err := primitive.ObjectIDFromHex(ref); err == nil {
		return oid.Hex()
	}
	return ref
}
