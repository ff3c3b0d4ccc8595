package routes

import (
	"karukotha/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service *services.CategoryService
	events  *Hub
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return serviceError(c, err, "Failed to get categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "category")
	}
	category, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err, "Failed to get category")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input services.CategoryCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	category, err := h.service.Create(input)
	if err != nil {
		return serviceError(c, err, "Failed to create category")
	}
	h.events.Publish("category", "created", category.ID)
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "category")
	}
	var input services.CategoryUpdate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	category, err := h.service.Update(id, input)
	if err != nil {
		return serviceError(c, err, "Failed to update category")
	}
	h.events.Publish("category", "updated", category.ID)
	return c.JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "category")
	}
	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err, "Failed to delete category")
	}
	h.events.Publish("category", "deleted", id)
	return c.SendStatus(fiber.StatusNoContent)
}
