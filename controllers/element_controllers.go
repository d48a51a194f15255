package controllers

import (
	"crit-server/models"
	"crit-server/repository"

	"github.com/gofiber/fiber/v2"
)

type ElementController struct {
	repo repository.ElementRepositoryInterface
}

func NewElementController(repo repository.ElementRepositoryInterface) *ElementController {
	return &ElementController{repo: repo}
}

func (ec *ElementController) CreateElement(c *fiber.Ctx) error {
	var element models.Element
	if err := c.BodyParser(&element); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if element.BoardID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Board id is required"})
	}
	if !models.ValidElementType(element.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid element type"})
	}

	objectID, err := ec.repo.SaveElement(element)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save element"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": objectID})
}

func (ec *ElementController) GetElementByID(c *fiber.Ctx) error {
	id := c.Params("id")
	element, err := ec.repo.FindElementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Element not found"})
	}
	return c.Status(fiber.StatusOK).JSON(element)
}

func (ec *ElementController) GetElementsByBoardID(c *fiber.Ctx) error {
	boardID := c.Params("boardId")
	elements, err := ec.repo.FindElementsByBoardID(boardID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to find elements"})
	}
	return c.Status(fiber.StatusOK).JSON(elements)
}

// PatchElement applies a partial geometry/content update, last write wins.
func (ec *ElementController) PatchElement(c *fiber.Ctx) error {
	id := c.Params("id")
	var patch models.ElementPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if patch.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	if err := ec.repo.UpdateElement(id, patch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update element"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (ec *ElementController) DeleteElementByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ec.repo.DeleteElementByID(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete element"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
