package routes

import (
	"karukotha/services"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	service *services.ReviewService
}

func (h *ReviewHandler) ListForProduct(c *fiber.Ctx) error {
	productID, ok := paramID(c)
	if !ok {
		return invalidID(c, "product")
	}
	reviews, err := h.service.ListForProduct(productID)
	if err != nil {
		return serviceError(c, err, "Failed to get reviews")
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	productID, ok := paramID(c)
	if !ok {
		return invalidID(c, "product")
	}
	var input services.ReviewCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	review, err := h.service.Create(productID, input)
	if err != nil {
		return serviceError(c, err, "Failed to create review")
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "review")
	}
	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err, "Failed to delete review")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
