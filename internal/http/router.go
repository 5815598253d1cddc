package http

import (
	"notekeeper/internal/http/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance and mounts the full API surface.
// Protected note routes sit behind the auth gate; the auth routes and
// the healthcheck stay open.
func NewRouter(userRoutes *handler.DefaultUserRoute, noteRoutes *handler.DefaultNoteRoute, authGate echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	api := e.Group("/api")

	// Auth
	api.POST("/auth/signup", userRoutes.SignUp)
	api.POST("/auth/signin", userRoutes.Login)
	api.POST("/auth/logout", userRoutes.Logout)

	// Notes
	notes := api.Group("/note", authGate)
	notes.GET("", noteRoutes.GetNotes)
	notes.GET("/search/:query", noteRoutes.SearchNotes)
	notes.POST("", noteRoutes.CreateNote)
	notes.PUT("/update-status/:id", noteRoutes.UpdateStatus)
	notes.PUT("/:id", noteRoutes.UpdateNote)
	notes.DELETE("/:id", noteRoutes.DeleteNote)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(404, echo.Map{"error": "Route not found"})
	})

	return e
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
