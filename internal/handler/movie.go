// Package handler exposes the HTTP handlers of the movie catalog.  Pages are
// rendered through echo's Renderer; failures are reported as a JSON object
// with a single "error" field.
package handler

import (
	"context"  // context is passed to the event publisher
	"errors"   // errors distinguishes not-found from store failures
	"fmt"      // fmt builds redirect locations
	"net/http" // http provides status code constants
	"strconv"  // strconv parses numeric form fields
	"strings"  // strings trims form input
	"time"     // time stamps change events

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers
	"go.uber.org/zap"             // zap logs store failures

	"github.com/iliyamo/movie-catalog/internal/model"      // model defines Movie and MovieUpdate
	"github.com/iliyamo/movie-catalog/internal/queue"      // queue defines the change event payload
	"github.com/iliyamo/movie-catalog/internal/repository" // repository resolves identifiers and talks to MongoDB
	"github.com/iliyamo/movie-catalog/internal/view"       // view names the rendered templates
)

// EventPublisher is notified after every successful write.
type EventPublisher interface {
	PublishMovieChanged(ctx context.Context, event queue.MovieChangedEvent) error
}

// MovieHandler bundles the dependencies of the /movies routes.
type MovieHandler struct {
	Store  repository.MovieStore // Store provides movie persistence
	Events EventPublisher        // Events is optional; nil disables change notifications
	Logger *zap.Logger           // Logger records store failures
}

// NewMovieHandler constructs a MovieHandler and panics if the store is nil.
func NewMovieHandler(store repository.MovieStore, events EventPublisher, logger *zap.Logger) *MovieHandler {
	if store == nil {
		panic("nil store passed to NewMovieHandler")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovieHandler{Store: store, Events: events, Logger: logger}
}

// ListMovies handles GET /movies and renders every movie in store order.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.Store.List(c.Request().Context())
	if err != nil {
		h.Logger.Error("list movies", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve movies"})
	}
	return c.Render(http.StatusOK, view.MovieIndex, echo.Map{"Movies": movies})
}

// NewMovieForm handles GET /movies/new.
func (h *MovieHandler) NewMovieForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.MovieNew, nil)
}

// CreateMovie handles POST /movies.  Released and Genre default to the empty
// string and Rating to 0.  The redirect uses the submitted Movie_ID.
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	m, err := movieFromForm(c)
	if err != nil {
		h.Logger.Warn("create movie: bad form", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to insert new movie"})
	}
	if err := h.Store.Create(c.Request().Context(), m); err != nil {
		h.Logger.Error("create movie", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to insert new movie"})
	}
	h.publish(c, queue.ActionCreated, m)
	return c.Redirect(http.StatusFound, fmt.Sprintf("/movies/%d", m.MovieID))
}

// ShowMovie handles GET /movies/:identifier.
func (h *MovieHandler) ShowMovie(c echo.Context) error {
	return h.renderOne(c, view.MovieShow, "Failed to retrieve movie")
}

// EditMovieForm handles GET /movies/edit/:identifier.
func (h *MovieHandler) EditMovieForm(c echo.Context) error {
	return h.renderOne(c, view.MovieEdit, "Failed to retrieve movie for editing")
}

// UpdateMovie handles POST /movies/:identifier.  Only movie_title and
// released are accepted.  A missing movie is reported as 500, not 404.
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	lookup := repository.ResolveIdentifier(c.Param("identifier"))
	update := model.NewMovieUpdate(c.FormValue("movie_title"), c.FormValue("released"))

	m, err := h.Store.Update(c.Request().Context(), lookup, update)
	if err != nil {
		if !errors.Is(err, repository.ErrMovieNotFound) {
			h.Logger.Error("update movie", zap.String("identifier", lookup.Raw), zap.Error(err))
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update the movie"})
	}
	h.publish(c, queue.ActionUpdated, m)
	return c.Redirect(http.StatusFound, fmt.Sprintf("/movies/%d", m.MovieID))
}

// DeleteMovieForm handles GET /movies/delete/:identifier.
func (h *MovieHandler) DeleteMovieForm(c echo.Context) error {
	return h.renderOne(c, view.MovieDelete, "Failed to retrieve movie for deletion")
}

// DeleteMovie handles POST /movies/:identifier/delete.
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	lookup := repository.ResolveIdentifier(c.Param("identifier"))
	m, err := h.Store.Delete(c.Request().Context(), lookup)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		h.Logger.Error("delete movie", zap.String("identifier", lookup.Raw), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete the movie"})
	}
	h.publish(c, queue.ActionDeleted, m)
	return c.Redirect(http.StatusFound, "/movies")
}

// renderOne resolves :identifier, fetches the movie and renders it with tmpl.
func (h *MovieHandler) renderOne(c echo.Context, tmpl, failMsg string) error {
	lookup := repository.ResolveIdentifier(c.Param("identifier"))
	m, err := h.Store.FindOne(c.Request().Context(), lookup)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		h.Logger.Error("find movie", zap.String("identifier", lookup.Raw), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": failMsg})
	}
	return c.Render(http.StatusOK, tmpl, echo.Map{"Movie": m})
}

// publish sends a change event; failures are logged by the publisher and ignored here.
func (h *MovieHandler) publish(c echo.Context, action string, m *model.Movie) {
	if h.Events == nil {
		return
	}
	_ = h.Events.PublishMovieChanged(c.Request().Context(), queue.MovieChangedEvent{
		Action:     action,
		ID:         m.ID.Hex(),
		MovieID:    m.MovieID,
		Title:      m.Title,
		Released:   m.Released,
		Genre:      m.Genre,
		Rating:     m.Rating,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// movieFromForm builds a new movie from the create form, applying defaults.
func movieFromForm(c echo.Context) (*model.Movie, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.FormValue("Movie_ID")))
	if err != nil {
		return nil, fmt.Errorf("Movie_ID: %w", err)
	}
	m := &model.Movie{
		MovieID:  id,
		Title:    c.FormValue("Title"),
		Released: c.FormValue("Released"),
		Genre:    c.FormValue("Genre"),
	}
	if raw := strings.TrimSpace(c.FormValue("Rating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("Rating: %w", err)
		}
		m.Rating = rating
	}
	return m, nil
}
