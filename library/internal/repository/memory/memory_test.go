package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"github.com/Astemirdum/biblioteca/library/internal/repository/memory"
)

func newBook(t *testing.T, s *memory.Store, total int) model.Book {
	t.Helper()
	b, err := s.CreateBook(context.Background(), model.Book{
		Title:           "Memórias Póstumas de Brás Cubas",
		Author:          "Machado de Assis",
		PublicationYear: 1881,
		TotalCopies:     total,
		AvailableCopies: total,
	})
	require.NoError(t, err)
	return b
}

func TestStore_InTx_RollbackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()
	book := newBook(t, s, 2)
	boom := errors.New("boom")

	err := s.InTx(ctx, func(tx repository.Tx) error {
		b, err := tx.BookForUpdate(ctx, book.ID)
		if err != nil {
			return err
		}
		b.AvailableCopies--
		if err = tx.UpdateBook(ctx, b); err != nil {
			return err
		}
		if _, err = tx.InsertLoan(ctx, model.Loan{
			Borrower: "Quincas Borba",
			BookID:   book.ID,
			Status:   model.StatusActive,
			LoanDate: model.NewDate(time.Now()),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AvailableCopies)
	loans, err := s.ListLoans(ctx)
	require.NoError(t, err)
	require.Empty(t, loans)
}

func TestStore_InTx_RejectsBrokenStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()
	book := newBook(t, s, 1)

	err := s.InTx(ctx, func(tx repository.Tx) error {
		b, err := tx.BookForUpdate(ctx, book.ID)
		if err != nil {
			return err
		}
		b.AvailableCopies = 5
		return tx.UpdateBook(ctx, b)
	})
	require.ErrorIs(t, err, errs.ErrValidation)

	got, err := s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.AvailableCopies)
}

func TestStore_DeleteBookCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()
	book := newBook(t, s, 1)

	var loanID int
	require.NoError(t, s.InTx(ctx, func(tx repository.Tx) error {
		l, err := tx.InsertLoan(ctx, model.Loan{
			Borrower: "Quincas Borba",
			BookID:   book.ID,
			Status:   model.StatusReturned,
			LoanDate: model.NewDate(time.Now()),
		})
		loanID = l.ID
		return err
	}))
	got, err := s.GetLoan(ctx, loanID)
	require.NoError(t, err)
	require.Equal(t, book.Title, *got.BookTitle)

	require.NoError(t, s.InTx(ctx, func(tx repository.Tx) error {
		return tx.DeleteBook(ctx, book.ID)
	}))
	_, err = s.GetLoan(ctx, loanID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStore_InsertLoanUnknownBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	err := s.InTx(ctx, func(tx repository.Tx) error {
		_, err := tx.InsertLoan(ctx, model.Loan{Borrower: "Rubião", BookID: 42, Status: model.StatusActive})
		return err
	})
	require.ErrorIs(t, err, errs.ErrNotFound)
}
