package routes

import (
	"github.com/lessonbooker/server/handlers"
	"github.com/lessonbooker/server/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	account := api.Group("/account", middleware.Protected())
	account.Get("/me", handlers.GetMe)
}
