package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pranayh24/verdict-ventures/app/controllers"
	"github.com/pranayh24/verdict-ventures/app/repository"
	"github.com/pranayh24/verdict-ventures/internal/pkg/statistics"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Initialize document controller and statistics with the repository
	controllers.InitializeDocumentController()
	statistics.Initialize(repository.GetGlobalFactory().GetDocumentRepository())

	h.registerPublicRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
