// Package ledger keeps the available-copy counter of every book in step with
// its active loans.
//
// Each operation works on a transaction handle owned by the caller, so the
// counter update and the loan change it accompanies are committed or rolled
// back together. Operations lock the book row before the loan row.
package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
)

type Ledger struct {
	now func() time.Time
	log *zap.Logger
}

type Option func(l *Ledger)

// WithClock replaces time.Now as the source of loan and return dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(log *zap.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		now: time.Now,
		log: log.Named("ledger"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckStock validates a pair of copy counts: 0 <= available <= total.
func CheckStock(total, available int) error {
	switch {
	case total < 0:
		return errs.Validation(errs.MsgNegativeTotal)
	case available < 0:
		return errs.Validation(errs.MsgNegativeAvail)
	case available > total:
		return errs.Validation(errs.MsgAvailAboveTotal)
	}
	return nil
}

// CreateLoan lends one copy of the book to borrower.
func (l *Ledger) CreateLoan(ctx context.Context, tx repository.Tx, borrower string, bookID int) (model.Loan, error) {
	book, err := tx.BookForUpdate(ctx, bookID)
	if err != nil {
		return model.Loan{}, err
	}
	if err := take(&book, errs.MsgBookUnavailable); err != nil {
		return model.Loan{}, err
	}
	if err := tx.UpdateBook(ctx, book); err != nil {
		return model.Loan{}, err
	}

	loan, err := tx.InsertLoan(ctx, model.Loan{
		Borrower: borrower,
		BookID:   book.ID,
		Status:   model.StatusActive,
		LoanDate: model.NewDate(l.now()),
	})
	if err != nil {
		return model.Loan{}, err
	}
	loan.BookTitle = &book.Title

	l.log.Debug("loan created",
		zap.Int("loan_id", loan.ID),
		zap.Int("book_id", book.ID),
		zap.Int("available", book.AvailableCopies))
	return loan, nil
}

// SetLoanStatus moves a loan between active and returned, giving the copy
// back or taking it again. Setting the current status changes nothing and
// reports changed == false.
func (l *Ledger) SetLoanStatus(ctx context.Context, tx repository.Tx, loanID int, status model.Status) (loan model.Loan, changed bool, err error) {
	bookID, err := tx.LoanBookID(ctx, loanID)
	if err != nil {
		return model.Loan{}, false, err
	}
	if !status.Valid() {
		return model.Loan{}, false, errs.Validation(errs.MsgInvalidStatus)
	}

	book, err := tx.BookForUpdate(ctx, bookID)
	if err != nil {
		return model.Loan{}, false, err
	}
	loan, err = tx.LoanForUpdate(ctx, loanID)
	if err != nil {
		return model.Loan{}, false, err
	}
	if loan.Status == status {
		return loan, false, nil
	}

	switch status {
	case model.StatusReturned:
		l.giveBack(&book)
		returned := model.NewDate(l.now())
		loan.ReturnDate = &returned
	case model.StatusActive:
		if err := take(&book, errs.MsgNoCopyToReactivate); err != nil {
			return model.Loan{}, false, err
		}
		loan.ReturnDate = nil
	}
	loan.Status = status

	if err := tx.UpdateBook(ctx, book); err != nil {
		return model.Loan{}, false, err
	}
	if err := tx.UpdateLoan(ctx, loan); err != nil {
		return model.Loan{}, false, err
	}

	l.log.Debug("loan status changed",
		zap.Int("loan_id", loan.ID),
		zap.String("status", string(status)),
		zap.Int("available", book.AvailableCopies))
	return loan, true, nil
}

// DeleteLoan removes a loan. An active loan returns its copy first.
// The removed loan is returned as it was before deletion.
func (l *Ledger) DeleteLoan(ctx context.Context, tx repository.Tx, loanID int) (model.Loan, error) {
	bookID, err := tx.LoanBookID(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}
	book, err := tx.BookForUpdate(ctx, bookID)
	if err != nil {
		return model.Loan{}, err
	}
	loan, err := tx.LoanForUpdate(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}

	if loan.Active() {
		l.giveBack(&book)
		if err := tx.UpdateBook(ctx, book); err != nil {
			return model.Loan{}, err
		}
	}
	if err := tx.DeleteLoan(ctx, loanID); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// DeleteBook removes a book together with its loan history. It refuses while
// any loan of the book is still active.
func (l *Ledger) DeleteBook(ctx context.Context, tx repository.Tx, bookID int) error {
	if _, err := tx.BookForUpdate(ctx, bookID); err != nil {
		return err
	}
	active, err := tx.CountActiveLoans(ctx, bookID)
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.ActiveLoans(active)
	}
	return tx.DeleteBook(ctx, bookID)
}

func take(book *model.Book, unavailableMsg string) error {
	if book.AvailableCopies <= 0 {
		return errs.Conflict(unavailableMsg)
	}
	book.AvailableCopies--
	return nil
}

// giveBack never lets available exceed total. That only happens when the
// counts were edited by hand while copies were out.
func (l *Ledger) giveBack(book *model.Book) {
	if book.AvailableCopies >= book.TotalCopies {
		l.log.Warn("copy returned to a full shelf",
			zap.Int("book_id", book.ID),
			zap.Int("total", book.TotalCopies))
		return
	}
	book.AvailableCopies++
}
