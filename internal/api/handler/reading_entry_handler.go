package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/api/metrics"
	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

type ReadingEntryHandler struct {
	service ports.ReadingEntryService
}

func NewReadingEntryHandler(service ports.ReadingEntryService) *ReadingEntryHandler {
	return &ReadingEntryHandler{service: service}
}

// Create handles POST /api/v1/reading-entries — adds a book to a library at
// want_to_read. Re-adding an existing pair returns the existing entry with
// 200 instead of 201.
//
// @Summary      Add a book to a library
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body      addToLibraryRequest true  "Book to add"
// @Success      201   {object}  domain.ReadingEntry
// @Success      200   {object}  domain.ReadingEntry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/reading-entries [post]
func (h *ReadingEntryHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addToLibraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := actor.ID
	if req.UserID != "" {
		if userID, err = uuid.Parse(req.UserID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "user_id must be a valid UUID")
		}
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "book_id must be a valid UUID")
	}

	entry, created, err := h.service.AddToLibrary(c.Request().Context(), actor, userID, bookID)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		metrics.EntriesCreatedTotal.Inc()
	}
	return c.JSON(status, entry)
}

// List handles GET /api/v1/reading-entries?user_id=&status=. Without a
// user_id the actor's own library is listed.
//
// @Summary      List reading entries
// @Tags         entries
// @Produce      json
// @Param        user_id  query     string  false  "Library owner (defaults to the caller)"
// @Param        status   query     string  false  "Filter by reading status"
// @Success      200      {array}   domain.ReadingEntry
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /api/v1/reading-entries [get]
func (h *ReadingEntryHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	userID := actor.ID
	if raw := c.QueryParam("user_id"); raw != "" {
		if userID, err = uuid.Parse(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "user_id must be a valid UUID")
		}
	}

	entries, err := h.service.ListForUser(c.Request().Context(), actor, userID, domain.ReadingStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Get handles GET /api/v1/reading-entries/:id.
//
// @Summary      Get a reading entry
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  domain.ReadingEntry
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reading-entries/{id} [get]
func (h *ReadingEntryHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.service.Get(c.Request().Context(), actor, entryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// StartReading handles PATCH /api/v1/reading-entries/:id/start-reading.
//
// @Summary      Start reading
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  domain.ReadingEntry
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reading-entries/{id}/start-reading [patch]
func (h *ReadingEntryHandler) StartReading(c echo.Context) error {
	return h.transition(c, "start", func(actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
		return h.service.StartReading(c.Request().Context(), actor, entryID)
	})
}

// UpdateProgress handles PATCH /api/v1/reading-entries/:id/progress.
//
// @Summary      Update reading progress
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Entry ID"
// @Param        body  body      updateProgressRequest  true  "Progress percentage"
// @Success      200   {object}  domain.ReadingEntry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/reading-entries/{id}/progress [patch]
func (h *ReadingEntryHandler) UpdateProgress(c echo.Context) error {
	var req updateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.transition(c, "progress", func(actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
		return h.service.UpdateProgress(c.Request().Context(), actor, entryID, req.Progress)
	})
}

// Complete handles PATCH /api/v1/reading-entries/:id/complete.
//
// @Summary      Mark an entry completed
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id    path      string                true   "Entry ID"
// @Param        body  body      completeEntryRequest  false  "Optional finish date"
// @Success      200   {object}  domain.ReadingEntry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/reading-entries/{id}/complete [patch]
func (h *ReadingEntryHandler) Complete(c echo.Context) error {
	var req completeEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	return h.transition(c, "complete", func(actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
		return h.service.Complete(c.Request().Context(), actor, entryID, req.EndDate)
	})
}

// Abandon handles PATCH /api/v1/reading-entries/:id/abandon.
//
// @Summary      Abandon a book
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  domain.ReadingEntry
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reading-entries/{id}/abandon [patch]
func (h *ReadingEntryHandler) Abandon(c echo.Context) error {
	return h.transition(c, "abandon", func(actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
		return h.service.Abandon(c.Request().Context(), actor, entryID)
	})
}

// UpdateReview handles PATCH /api/v1/reading-entries/:id/review.
//
// @Summary      Set rating and review
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Entry ID"
// @Param        body  body      updateReviewRequest  true  "Rating (1-5) and optional review text"
// @Success      200   {object}  domain.ReadingEntry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/reading-entries/{id}/review [patch]
func (h *ReadingEntryHandler) UpdateReview(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.transition(c, "review", func(actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
		return h.service.UpdateReview(c.Request().Context(), actor, entryID, req.Rating, req.Review)
	})
}

// Delete handles DELETE /api/v1/reading-entries/:id.
//
// @Summary      Remove an entry from a library
// @Tags         entries
// @Produce      json
// @Param        id   path  string  true  "Entry ID"
// @Success      204  "No Content"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reading-entries/{id} [delete]
func (h *ReadingEntryHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, entryID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// transition factors the shared shape of the lifecycle endpoints: resolve
// actor and entry ID, apply the operation, count the result.
func (h *ReadingEntryHandler) transition(c echo.Context, operation string, apply func(*domain.User, uuid.UUID) (*domain.ReadingEntry, error)) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	entry, err := apply(actor, entryID)
	if err != nil {
		return err
	}
	metrics.EntryTransitionsTotal.WithLabelValues(operation, string(entry.Status)).Inc()

	return c.JSON(http.StatusOK, entry)
}
