package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"titulo" db:"title"`
	Author          string `json:"autor" db:"author"`
	PublicationYear int    `json:"ano_publicacao" db:"publication_year"`
	TotalCopies     int    `json:"quantidade_total" db:"total_copies"`
	AvailableCopies int    `json:"quantidade_disponivel" db:"available_copies"`
}

// Lent is the number of copies currently out on active loans.
func (b Book) Lent() int {
	return b.TotalCopies - b.AvailableCopies
}

type Status string

const (
	StatusActive   Status = "ativo"
	StatusReturned Status = "devolvido"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusReturned
}

type Loan struct {
	ID         int     `json:"id" db:"id"`
	Borrower   string  `json:"nome_usuario" db:"borrower"`
	BookID     int     `json:"livro_id" db:"book_id"`
	BookTitle  *string `json:"titulo_livro" db:"book_title"`
	Status     Status  `json:"status" db:"status"`
	LoanDate   Date    `json:"data_emprestimo" db:"loan_date"`
	ReturnDate *Date   `json:"data_devolucao" db:"return_date"`
}

func (l Loan) Active() bool {
	return l.Status == StatusActive
}

// MaxTextLen is the column width of titles, authors and borrower names.
const MaxTextLen = 200

type CreateBookRequest struct {
	Title           string `json:"titulo" validate:"required,max=200"`
	Author          string `json:"autor" validate:"required,max=200"`
	PublicationYear *int   `json:"ano_publicacao" validate:"required"`
	TotalCopies     *int   `json:"quantidade_total"`
	AvailableCopies *int   `json:"quantidade_disponivel"`
}

func (r CreateBookRequest) Empty() bool {
	return r == CreateBookRequest{}
}

// UpdateBookRequest is a partial update: nil fields are left untouched.
type UpdateBookRequest struct {
	Title           *string `json:"titulo" validate:"omitempty,max=200"`
	Author          *string `json:"autor" validate:"omitempty,max=200"`
	PublicationYear *int    `json:"ano_publicacao"`
	TotalCopies     *int    `json:"quantidade_total"`
	AvailableCopies *int    `json:"quantidade_disponivel"`
}

func (r UpdateBookRequest) Empty() bool {
	return r == UpdateBookRequest{}
}

type CreateLoanRequest struct {
	Borrower string `json:"nome_usuario" validate:"required,max=200"`
	BookID   *int   `json:"livro_id"`
}

func (r CreateLoanRequest) Empty() bool {
	return r == CreateLoanRequest{}
}

// UpdateLoanRequest is a partial update: nil fields are left untouched.
type UpdateLoanRequest struct {
	Borrower *string `json:"nome_usuario" validate:"omitempty,max=200"`
	Status   *Status `json:"status"`
}

func (r UpdateLoanRequest) Empty() bool {
	return r == UpdateLoanRequest{}
}

type LoanEventType string

const (
	LoanCreated     LoanEventType = "created"
	LoanReturned    LoanEventType = "returned"
	LoanReactivated LoanEventType = "reactivated"
	LoanRenamed     LoanEventType = "renamed"
	LoanDeleted     LoanEventType = "deleted"
)

// LoanEvent is published after a loan change has been committed.
type LoanEvent struct {
	ID        uuid.UUID     `json:"id"`
	Type      LoanEventType `json:"type"`
	LoanID    int           `json:"loanId"`
	BookID    int           `json:"bookId"`
	Borrower  string        `json:"borrower"`
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

func NewLoanEvent(typ LoanEventType, loan Loan, ts time.Time) LoanEvent {
	return LoanEvent{
		ID:        uuid.New(),
		Type:      typ,
		LoanID:    loan.ID,
		BookID:    loan.BookID,
		Borrower:  loan.Borrower,
		Status:    loan.Status,
		Timestamp: ts.UTC(),
	}
}
