package errs

import (
	"errors"
	"fmt"
)

// Kinds of failure. Every *Error unwraps to one of them, so callers match
// with errors.Is(err, errs.ErrNotFound).
var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Error carries the message shown to the API client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// ActiveLoans is the conflict reported when a book with active loans is deleted.
func ActiveLoans(count int) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(MsgActiveLoansBlock, count)}
}

// Messages shared by the service layers.
const (
	MsgBookNotFound       = "Livro não encontrado"
	MsgLoanNotFound       = "Empréstimo não encontrado"
	MsgNoData             = "Nenhum dado foi enviado"
	MsgBookUnavailable    = "Livro indisponível para empréstimo"
	MsgNoCopyToReactivate = "Não há exemplares disponíveis para reativar o empréstimo"
	MsgInvalidStatus      = `Status inválido. Use "ativo" ou "devolvido"`
	MsgNegativeTotal      = "A quantidade total não pode ser negativa"
	MsgNegativeAvail      = "A quantidade disponível não pode ser negativa"
	MsgAvailAboveTotal    = "A quantidade disponível não pode ser maior que a quantidade total"
	MsgActiveLoansBlock   = "Não é possível deletar o livro. Existem %d empréstimo(s) ativo(s)"
	MsgTextTooLong        = "O texto excede o tamanho máximo de 200 caracteres"
)
