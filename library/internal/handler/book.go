package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca/library/internal/model"
)

// ListBooks godoc
// @Summary  List books
// @Tags     livros
// @Produce  json
// @Success  200  {object}  handler.Response{dados=[]model.Book}
// @Failure  500  {object}  handler.Response
// @Router   /api/livros [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.fail("listar livros", err)
	}
	return c.JSON(http.StatusOK, list(books))
}

// GetBook godoc
// @Summary  Get a book
// @Tags     livros
// @Produce  json
// @Param    id   path      int  true  "book id"
// @Success  200  {object}  handler.Response{dados=model.Book}
// @Failure  404  {object}  handler.Response
// @Router   /api/livros/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.fail("buscar livro", err)
	}
	return c.JSON(http.StatusOK, success(book, ""))
}

// CreateBook godoc
// @Summary  Create a book
// @Tags     livros
// @Accept   json
// @Produce  json
// @Param    book  body      model.CreateBookRequest  true  "book"
// @Success  201   {object}  handler.Response{dados=model.Book}
// @Failure  400   {object}  handler.Response
// @Router   /api/livros [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.fail("criar livro", err)
	}
	return c.JSON(http.StatusCreated, success(book, "Livro cadastrado com sucesso"))
}

// UpdateBook godoc
// @Summary  Update a book
// @Tags     livros
// @Accept   json
// @Produce  json
// @Param    id    path      int                      true  "book id"
// @Param    book  body      model.UpdateBookRequest  true  "fields to change"
// @Success  200   {object}  handler.Response{dados=model.Book}
// @Failure  400   {object}  handler.Response
// @Failure  404   {object}  handler.Response
// @Router   /api/livros/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.fail("atualizar livro", err)
	}
	return c.JSON(http.StatusOK, success(book, "Livro atualizado com sucesso"))
}

// DeleteBook godoc
// @Summary  Delete a book and its loan history
// @Tags     livros
// @Produce  json
// @Param    id   path      int  true  "book id"
// @Success  200  {object}  handler.Response
// @Failure  400  {object}  handler.Response
// @Failure  404  {object}  handler.Response
// @Router   /api/livros/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err = h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.fail("deletar livro", err)
	}
	return c.JSON(http.StatusOK, success(nil, "Livro deletado com sucesso"))
}
