package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pranayh24/verdict-ventures/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Static informational pages from the declarative route table
	for _, route := range PageRoutes() {
		app.Get(route.Path, controllers.HandleStaticPage(route.View, route.Title))
	}

	// Root mirrors the homepage
	app.Get("/", controllers.HandleStaticPage("front", "Verdict Ventures"))

	// Document submission and retrieval
	app.Post("/form", controllers.HandleDocumentSubmit)
	app.Get("/documents", controllers.HandleDocumentList)
	app.Get("/documents/:uuid", controllers.HandleDocumentShow)
}
