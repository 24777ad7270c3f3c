package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

// HandleStaticPage returns the handler for one entry of the page route
// table. Every informational page renders the same way: a named static
// view inside the main layout, no data lookup.
func HandleStaticPage(view, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(view, fiber.Map{
			"Title": title,
			"Flash": flash.Get(c),
		}, "layouts/main")
	}
}
