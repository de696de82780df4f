package router // package router defines how HTTP routes are registered for the catalog

import (
	"context" // context is the ping signature used by the health check

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-catalog/internal/handler" // import the handlers that implement the catalog pages
)

// RegisterRoutes registers the operational routes: the health check and the
// static assets served from publicDir.
func RegisterRoutes(e *echo.Echo, publicDir string, ping func(ctx context.Context) error) {
	e.GET("/healthz", handler.Health(ping))
	if publicDir != "" {
		e.Static("/", publicDir)
	}
}

// RegisterMovies registers the /movies pages.  Static segments (new, edit,
// delete) take precedence over the :identifier parameter in echo's router.
func RegisterMovies(e *echo.Echo, m *handler.MovieHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/movies", mw...)

	g.GET("", m.ListMovies)
	g.GET("/new", m.NewMovieForm)
	g.POST("", m.CreateMovie)
	g.GET("/:identifier", m.ShowMovie)
	g.GET("/edit/:identifier", m.EditMovieForm)
	g.POST("/:identifier", m.UpdateMovie)
	g.GET("/delete/:identifier", m.DeleteMovieForm)
	g.POST("/:identifier/delete", m.DeleteMovie)
}
