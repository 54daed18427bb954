package contentRoutes

import (
	contentControllers "educat/controllers/content"
	"educat/middleware"
	contentValidators "educat/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up all content management routes. Every route is
// JWT-protected.
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/content")

	contentGroup.Post("/createContent", middleware.JWTMiddleware, contentValidators.CreateContent(), contentControllers.CreateContent)
	contentGroup.Put("/updateContent/:contentId", middleware.JWTMiddleware, contentValidators.UpdateContent(), contentControllers.UpdateContent)
	contentGroup.Delete("/deleteContent/:contentId", middleware.JWTMiddleware, contentValidators.ContentID(), contentControllers.DeleteContent)

	// Literal segment first so "getContent" never binds as :contentId
	contentGroup.Get("/getContent", middleware.JWTMiddleware, contentValidators.ListContent(), contentControllers.ListContent)
	contentGroup.Get("/getContent/:contentId", middleware.JWTMiddleware, contentValidators.ContentID(), contentControllers.GetContent)
	contentGroup.Get("/:contentId/download", middleware.JWTMiddleware, contentValidators.ContentID(), contentControllers.DownloadContent)
}
