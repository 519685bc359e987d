package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca/library/internal/model"
)

// ListLoans godoc
// @Summary  List loans
// @Tags     emprestimos
// @Produce  json
// @Success  200  {object}  handler.Response{dados=[]model.Loan}
// @Failure  500  {object}  handler.Response
// @Router   /api/emprestimos [get]
func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.registrySvc.ListLoans(c.Request().Context())
	if err != nil {
		return h.fail("listar empréstimos", err)
	}
	return c.JSON(http.StatusOK, list(loans))
}

// GetLoan godoc
// @Summary  Get a loan
// @Tags     emprestimos
// @Produce  json
// @Param    id   path      int  true  "loan id"
// @Success  200  {object}  handler.Response{dados=model.Loan}
// @Failure  404  {object}  handler.Response
// @Router   /api/emprestimos/{id} [get]
func (h *Handler) GetLoan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	loan, err := h.registrySvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail("buscar empréstimo", err)
	}
	return c.JSON(http.StatusOK, success(loan, ""))
}

// CreateLoan godoc
// @Summary  Lend a copy of a book
// @Tags     emprestimos
// @Accept   json
// @Produce  json
// @Param    loan  body      model.CreateLoanRequest  true  "loan"
// @Success  201   {object}  handler.Response{dados=model.Loan}
// @Failure  400   {object}  handler.Response
// @Failure  404   {object}  handler.Response
// @Router   /api/emprestimos [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	loan, err := h.registrySvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		return h.fail("criar empréstimo", err)
	}
	return c.JSON(http.StatusCreated, success(loan, "Empréstimo realizado com sucesso"))
}

// UpdateLoan godoc
// @Summary  Rename the borrower or change the status of a loan
// @Tags     emprestimos
// @Accept   json
// @Produce  json
// @Param    id    path      int                      true  "loan id"
// @Param    loan  body      model.UpdateLoanRequest  true  "fields to change"
// @Success  200   {object}  handler.Response{dados=model.Loan}
// @Failure  400   {object}  handler.Response
// @Failure  404   {object}  handler.Response
// @Router   /api/emprestimos/{id} [put]
func (h *Handler) UpdateLoan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req model.UpdateLoanRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	loan, err := h.registrySvc.UpdateLoan(c.Request().Context(), id, req)
	if err != nil {
		return h.fail("atualizar empréstimo", err)
	}
	return c.JSON(http.StatusOK, success(loan, "Empréstimo atualizado com sucesso"))
}

// DeleteLoan godoc
// @Summary  Delete a loan, giving back its copy when active
// @Tags     emprestimos
// @Produce  json
// @Param    id   path      int  true  "loan id"
// @Success  200  {object}  handler.Response
// @Failure  404  {object}  handler.Response
// @Router   /api/emprestimos/{id} [delete]
func (h *Handler) DeleteLoan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err = h.registrySvc.DeleteLoan(c.Request().Context(), id); err != nil {
		return h.fail("deletar empréstimo", err)
	}
	return c.JSON(http.StatusOK, success(nil, "Empréstimo deletado com sucesso"))
}
