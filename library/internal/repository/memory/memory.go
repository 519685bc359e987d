// Package memory is a process-local implementation of repository.Repository.
// Transactions are serialized by a single mutex and work on a copy of the
// data that replaces the committed state only when the callback succeeds.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
)

type Store struct {
	mu sync.Mutex
	st state
}

var _ repository.Repository = (*Store)(nil)

func New() *Store {
	return &Store{st: state{
		books: make(map[int]model.Book),
		loans: make(map[int]model.Loan),
	}}
}

type state struct {
	books      map[int]model.Book
	loans      map[int]model.Loan
	lastBookID int
	lastLoanID int
}

func (s state) clone() state {
	c := state{
		books:      make(map[int]model.Book, len(s.books)),
		loans:      make(map[int]model.Loan, len(s.loans)),
		lastBookID: s.lastBookID,
		lastLoanID: s.lastLoanID,
	}
	for id, b := range s.books {
		c.books[id] = b
	}
	for id, l := range s.loans {
		c.loans[id] = l
	}
	return c
}

func (s state) loan(id int) (model.Loan, bool) {
	l, ok := s.loans[id]
	if !ok {
		return model.Loan{}, false
	}
	if b, ok := s.books[l.BookID]; ok {
		title := b.Title
		l.BookTitle = &title
	}
	return l, true
}

func (s *Store) ListBooks(_ context.Context) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := make([]model.Book, 0, len(s.st.books))
	for _, b := range s.st.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (s *Store) GetBook(_ context.Context, id int) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.books[id]
	if !ok {
		return model.Book{}, errs.NotFound(errs.MsgBookNotFound)
	}
	return b, nil
}

func (s *Store) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
		return model.Book{}, errs.Validation(errs.MsgAvailAboveTotal)
	}
	s.st.lastBookID++
	book.ID = s.st.lastBookID
	s.st.books[book.ID] = book
	return book, nil
}

func (s *Store) ListLoans(_ context.Context) ([]model.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loans := make([]model.Loan, 0, len(s.st.loans))
	for id := range s.st.loans {
		l, _ := s.st.loan(id)
		loans = append(loans, l)
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ID < loans[j].ID })
	return loans, nil
}

func (s *Store) GetLoan(_ context.Context, id int) (model.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.st.loan(id)
	if !ok {
		return model.Loan{}, errs.NotFound(errs.MsgLoanNotFound)
	}
	return l, nil
}

func (s *Store) InTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	t := &tx{st: s.st.clone()}
	if err := fn(t); err != nil {
		return err
	}
	if err := t.check(); err != nil {
		return err
	}
	s.st = t.st
	return nil
}

type tx struct {
	st state
}

var _ repository.Tx = (*tx)(nil)

// check mirrors the table constraints, which Postgres verifies at statement time.
func (t *tx) check() error {
	for _, b := range t.st.books {
		if b.AvailableCopies < 0 || b.AvailableCopies > b.TotalCopies {
			return errs.Validation(errs.MsgAvailAboveTotal)
		}
	}
	return nil
}

func (t *tx) BookForUpdate(_ context.Context, id int) (model.Book, error) {
	b, ok := t.st.books[id]
	if !ok {
		return model.Book{}, errs.NotFound(errs.MsgBookNotFound)
	}
	return b, nil
}

func (t *tx) UpdateBook(_ context.Context, book model.Book) error {
	if _, ok := t.st.books[book.ID]; !ok {
		return errs.NotFound(errs.MsgBookNotFound)
	}
	t.st.books[book.ID] = book
	return nil
}

func (t *tx) DeleteBook(_ context.Context, id int) error {
	if _, ok := t.st.books[id]; !ok {
		return errs.NotFound(errs.MsgBookNotFound)
	}
	delete(t.st.books, id)
	for loanID, l := range t.st.loans {
		if l.BookID == id {
			delete(t.st.loans, loanID)
		}
	}
	return nil
}

func (t *tx) CountActiveLoans(_ context.Context, bookID int) (int, error) {
	n := 0
	for _, l := range t.st.loans {
		if l.BookID == bookID && l.Active() {
			n++
		}
	}
	return n, nil
}

func (t *tx) LoanBookID(_ context.Context, loanID int) (int, error) {
	l, ok := t.st.loans[loanID]
	if !ok {
		return 0, errs.NotFound(errs.MsgLoanNotFound)
	}
	return l.BookID, nil
}

func (t *tx) LoanForUpdate(_ context.Context, id int) (model.Loan, error) {
	l, ok := t.st.loan(id)
	if !ok {
		return model.Loan{}, errs.NotFound(errs.MsgLoanNotFound)
	}
	return l, nil
}

func (t *tx) InsertLoan(_ context.Context, loan model.Loan) (model.Loan, error) {
	if _, ok := t.st.books[loan.BookID]; !ok {
		return model.Loan{}, errs.NotFound(errs.MsgBookNotFound)
	}
	t.st.lastLoanID++
	loan.ID = t.st.lastLoanID
	loan.BookTitle = nil
	t.st.loans[loan.ID] = loan
	return loan, nil
}

func (t *tx) UpdateLoan(_ context.Context, loan model.Loan) error {
	if _, ok := t.st.loans[loan.ID]; !ok {
		return errs.NotFound(errs.MsgLoanNotFound)
	}
	loan.BookTitle = nil
	t.st.loans[loan.ID] = loan
	return nil
}

func (t *tx) DeleteLoan(_ context.Context, id int) error {
	if _, ok := t.st.loans[id]; !ok {
		return errs.NotFound(errs.MsgLoanNotFound)
	}
	delete(t.st.loans, id)
	return nil
}
