package routes

import (
	"errors"

	"karukotha/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires the API onto the fiber app. The database handle is
// passed down to the services; nothing here holds global state except the
// websocket hub, which owns its own clients.
func SetupRoutes(app *fiber.App, gdb *gorm.DB) {
	hub := NewHub()
	go hub.Run()

	products := &ProductHandler{
		service: services.NewProductService(gdb),
		events:  hub,
	}
	categories := &CategoryHandler{
		service: services.NewCategoryService(gdb),
		events:  hub,
	}
	reviews := &ReviewHandler{
		service: services.NewReviewService(gdb),
	}
	settings := &SettingsHandler{
		service: services.NewSettingsService(gdb),
	}

	app.Get("/ws", hub.Handler())
	app.Post("/upload", uploadImage)

	api := app.Group("/api")

	p := api.Group("/products")
	p.Get("/search", products.Search)
	p.Post("/", products.Create)
	p.Get("/", products.List)
	p.Get("/:id", products.Get)
	p.Put("/:id", products.Update)
	p.Delete("/:id", products.Delete)

	p.Get("/:id/reviews", reviews.ListForProduct)
	p.Post("/:id/reviews", reviews.Create)
	api.Delete("/reviews/:id", reviews.Delete)

	c := api.Group("/categories")
	c.Post("/", categories.Create)
	c.Get("/", categories.List)
	c.Get("/:id", categories.Get)
	c.Put("/:id", categories.Update)
	c.Delete("/:id", categories.Delete)

	st := api.Group("/settings")
	st.Get("/", settings.Get)
	st.Put("/", settings.Update)

	api.Get("/dashboard/stats", products.Stats)
}

// serviceError maps typed service failures onto HTTP statuses; anything
// unexpected becomes a 500 with the fallback message so store errors never
// leak to the wire.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	var notFound *services.NotFoundError
	var conflict *services.ConflictError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFound.Error(),
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": conflict.Error(),
		})
	case errors.As(err, &validation):
		body := fiber.Map{"error": validation.Error()}
		if len(validation.Fields) > 0 {
			body["fields"] = validation.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}

// paramID parses the :id path segment. ok is false when it is not a
// positive integer; the handler owns the 400 response.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid " + name + " ID",
	})
}
