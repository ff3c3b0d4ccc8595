package routes

import (
	"karukotha/services"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service *services.SettingsService
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.service.Get()
	if err != nil {
		return serviceError(c, err, "Failed to get settings")
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var input services.SettingsUpdate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	settings, err := h.service.Update(input)
	if err != nil {
		return serviceError(c, err, "Failed to update settings")
	}
	return c.JSON(settings)
}
