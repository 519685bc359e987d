package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
)

func TestCatalog_CreateBook(t *testing.T) {
	t.Parallel()
	base := func() model.CreateBookRequest {
		return model.CreateBookRequest{
			Title:           "Grande Sertão: Veredas",
			Author:          "João Guimarães Rosa",
			PublicationYear: ptr(1956),
		}
	}
	tests := []struct {
		name          string
		req           func() model.CreateBookRequest
		wantTotal     int
		wantAvailable int
		wantKind      error
		wantMsg       string
	}{
		{
			name:          "ok. counts default to zero",
			req:           base,
			wantTotal:     0,
			wantAvailable: 0,
		},
		{
			name: "ok. available defaults to total",
			req: func() model.CreateBookRequest {
				r := base()
				r.TotalCopies = ptr(4)
				return r
			},
			wantTotal:     4,
			wantAvailable: 4,
		},
		{
			name: "ok. explicit available",
			req: func() model.CreateBookRequest {
				r := base()
				r.TotalCopies = ptr(4)
				r.AvailableCopies = ptr(1)
				return r
			},
			wantTotal:     4,
			wantAvailable: 1,
		},
		{
			name:     "err. empty request",
			req:      func() model.CreateBookRequest { return model.CreateBookRequest{} },
			wantKind: errs.ErrValidation,
			wantMsg:  errs.MsgNoData,
		},
		{
			name: "err. blank title",
			req: func() model.CreateBookRequest {
				r := base()
				r.Title = "  "
				return r
			},
			wantKind: errs.ErrValidation,
			wantMsg:  `O campo "titulo" é obrigatório`,
		},
		{
			name: "err. author too long",
			req: func() model.CreateBookRequest {
				r := base()
				r.Author = strings.Repeat("é", model.MaxTextLen+1)
				return r
			},
			wantKind: errs.ErrValidation,
			wantMsg:  `O campo "autor" deve ser menor ou igual a 200`,
		},
		{
			name: "ok. accented title at the limit",
			req: func() model.CreateBookRequest {
				r := base()
				r.Title = strings.Repeat("ã", model.MaxTextLen)
				return r
			},
		},
		{
			name: "err. missing year",
			req: func() model.CreateBookRequest {
				r := base()
				r.PublicationYear = nil
				return r
			},
			wantKind: errs.ErrValidation,
			wantMsg:  `O campo "ano_publicacao" é obrigatório`,
		},
		{
			name: "err. negative total",
			req: func() model.CreateBookRequest {
				r := base()
				r.TotalCopies = ptr(-1)
				return r
			},
			wantKind: errs.ErrValidation,
			wantMsg:  errs.MsgNegativeTotal,
		},
		{
			name: "err. available above total",
			req: func() model.CreateBookRequest {
				r := base()
				r.TotalCopies = ptr(2)
				r.AvailableCopies = ptr(3)
				return r
			},
			wantKind: errs.ErrValidation,
			wantMsg:  errs.MsgAvailAboveTotal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newServices()
			book, err := s.catalog.CreateBook(context.Background(), tt.req())
			if tt.wantKind != nil {
				require.ErrorIs(t, err, tt.wantKind)
				require.EqualError(t, err, tt.wantMsg)
				books, err := s.catalog.ListBooks(context.Background())
				require.NoError(t, err)
				require.Empty(t, books)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, book.ID)
			require.Equal(t, tt.wantTotal, book.TotalCopies)
			require.Equal(t, tt.wantAvailable, book.AvailableCopies)

			got, err := s.catalog.GetBook(context.Background(), book.ID)
			require.NoError(t, err)
			require.Equal(t, book, got)
		})
	}
}

func TestCatalog_UpdateBook(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		req           model.UpdateBookRequest
		wantTotal     int
		wantAvailable int
		wantTitle     string
		wantMsg       string
	}{
		{
			name:          "ok. title only",
			req:           model.UpdateBookRequest{Title: ptr("Vidas Secas (ed. comemorativa)")},
			wantTitle:     "Vidas Secas (ed. comemorativa)",
			wantTotal:     3,
			wantAvailable: 3,
		},
		{
			name:          "ok. total grows, available untouched",
			req:           model.UpdateBookRequest{TotalCopies: ptr(5)},
			wantTitle:     "Vidas Secas",
			wantTotal:     5,
			wantAvailable: 3,
		},
		{
			name:          "ok. available checked against new total",
			req:           model.UpdateBookRequest{TotalCopies: ptr(5), AvailableCopies: ptr(5)},
			wantTitle:     "Vidas Secas",
			wantTotal:     5,
			wantAvailable: 5,
		},
		{
			name:    "err. empty request",
			req:     model.UpdateBookRequest{},
			wantMsg: errs.MsgNoData,
		},
		{
			name:    "err. negative total",
			req:     model.UpdateBookRequest{TotalCopies: ptr(-2)},
			wantMsg: errs.MsgNegativeTotal,
		},
		{
			name:    "err. available above total",
			req:     model.UpdateBookRequest{AvailableCopies: ptr(4)},
			wantMsg: errs.MsgAvailAboveTotal,
		},
		{
			name:    "err. total below available",
			req:     model.UpdateBookRequest{TotalCopies: ptr(1)},
			wantMsg: errs.MsgAvailAboveTotal,
		},
		{
			name:    "err. blank author",
			req:     model.UpdateBookRequest{Author: ptr("")},
			wantMsg: `O campo "autor" é obrigatório`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s := newServices()
			book := s.book(t, 3)

			got, err := s.catalog.UpdateBook(ctx, book.ID, tt.req)
			if tt.wantMsg != "" {
				require.ErrorIs(t, err, errs.ErrValidation)
				require.EqualError(t, err, tt.wantMsg)
				stored, err := s.catalog.GetBook(ctx, book.ID)
				require.NoError(t, err)
				require.Equal(t, book, stored)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantTitle, got.Title)
			require.Equal(t, tt.wantTotal, got.TotalCopies)
			require.Equal(t, tt.wantAvailable, got.AvailableCopies)

			stored, err := s.catalog.GetBook(ctx, book.ID)
			require.NoError(t, err)
			require.Equal(t, got, stored)
		})
	}
}

func TestCatalog_UpdateBook_NotFound(t *testing.T) {
	t.Parallel()
	s := newServices()
	_, err := s.catalog.UpdateBook(context.Background(), 99, model.UpdateBookRequest{Title: ptr("x")})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.EqualError(t, err, errs.MsgBookNotFound)
}

func TestCatalog_DeleteBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices()
	book := s.book(t, 1)
	loan, err := s.registry.CreateLoan(ctx, model.CreateLoanRequest{Borrower: "Fabiano", BookID: ptr(book.ID)})
	require.NoError(t, err)

	err = s.catalog.DeleteBook(ctx, book.ID)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.EqualError(t, err, "Não é possível deletar o livro. Existem 1 empréstimo(s) ativo(s)")

	_, err = s.registry.UpdateLoan(ctx, loan.ID, model.UpdateLoanRequest{Status: ptr(model.StatusReturned)})
	require.NoError(t, err)

	require.NoError(t, s.catalog.DeleteBook(ctx, book.ID))
	_, err = s.catalog.GetBook(ctx, book.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.registry.GetLoan(ctx, loan.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
