package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/api/metrics"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

type createBookRequest struct {
	Title          string `json:"title" validate:"required,max=500"`
	Author         string `json:"author" validate:"required,max=300"`
	ISBN           string `json:"isbn" validate:"omitempty,max=17"`
	OLID           string `json:"olid" validate:"omitempty,max=20"`
	CoverURL       string `json:"cover_url" validate:"omitempty,url"`
	OpenLibraryURL string `json:"openlibrary_url" validate:"omitempty,url"`
}

type updateBookRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1,max=500"`
	Author         *string `json:"author" validate:"omitempty,min=1,max=300"`
	ISBN           *string `json:"isbn" validate:"omitempty,max=17"`
	OLID           *string `json:"olid" validate:"omitempty,max=20"`
	CoverURL       *string `json:"cover_url" validate:"omitempty,url"`
	OpenLibraryURL *string `json:"openlibrary_url" validate:"omitempty,url"`
}

// Create handles POST /api/v1/books.
//
// @Summary      Add a book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  domain.Book
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Create(c.Request().Context(), actor, ports.CreateBookInput{
		Title:          req.Title,
		Author:         req.Author,
		ISBN:           req.ISBN,
		OLID:           req.OLID,
		CoverURL:       req.CoverURL,
		OpenLibraryURL: req.OpenLibraryURL,
	})
	if err != nil {
		return err
	}
	metrics.BooksCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, book)
}

// List handles GET /api/v1/books.
//
// @Summary      List catalog books
// @Tags         books
// @Produce      json
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {array}   domain.Book
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	books, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Search handles GET /api/v1/books/search?q=...
//
// @Summary      Search books by title or author
// @Tags         books
// @Produce      json
// @Param        q    query     string  true  "Search terms"
// @Success      200  {array}   domain.Book
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/books/search [get]
func (h *BookHandler) Search(c echo.Context) error {
	books, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Get handles GET /api/v1/books/:id.
//
// @Summary      Get a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  domain.Book
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	book, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Update handles PATCH /api/v1/books/:id. The creator may edit their own
// book; anyone else needs the edit_book permission.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Book ID"
// @Param        body  body      updateBookRequest  true  "Fields to change"
// @Success      200   {object}  domain.Book
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateBookInput{
		Title:          req.Title,
		Author:         req.Author,
		ISBN:           req.ISBN,
		OLID:           req.OLID,
		CoverURL:       req.CoverURL,
		OpenLibraryURL: req.OpenLibraryURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /api/v1/books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path  string  true  "Book ID"
// @Success      204  "No Content"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
