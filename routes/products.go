package routes

import (
	"strconv"

	"karukotha/services"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service *services.ProductService
	events  *Hub
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category_id parameter",
			})
		}
		value := uint(id)
		categoryID = &value
	}

	products, err := h.service.List(categoryID)
	if err != nil {
		return serviceError(c, err, "Failed to get products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "product")
	}
	product, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err, "Failed to get product")
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input services.ProductCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	product, err := h.service.Create(input)
	if err != nil {
		return serviceError(c, err, "Failed to create product")
	}
	h.events.Publish("product", "created", product.ID)
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "product")
	}
	var input services.ProductUpdate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	product, err := h.service.Update(id, input)
	if err != nil {
		return serviceError(c, err, "Failed to update product")
	}
	h.events.Publish("product", "updated", product.ID)
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "product")
	}
	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err, "Failed to delete product")
	}
	h.events.Publish("product", "deleted", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'q' is required",
		})
	}
	products, err := h.service.Search(q)
	if err != nil {
		return serviceError(c, err, "Failed to search products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return serviceError(c, err, "Failed to get dashboard stats")
	}
	return c.JSON(stats)
}
