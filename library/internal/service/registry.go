package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/events"
	"github.com/Astemirdum/biblioteca/library/internal/ledger"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
)

// Registry manages loan records. Every change to copy counts goes through
// the ledger; committed changes are announced to the publisher.
type Registry struct {
	log       *zap.Logger
	repo      repository.Repository
	ledger    *ledger.Ledger
	publisher events.Publisher
}

func NewRegistry(repo repository.Repository, l *ledger.Ledger, publisher events.Publisher, log *zap.Logger) *Registry {
	return &Registry{
		log:       log.Named("registry"),
		repo:      repo,
		ledger:    l,
		publisher: publisher,
	}
}

func (s *Registry) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx)
}

func (s *Registry) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Registry) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	if req.Empty() {
		return model.Loan{}, errs.Validation(errs.MsgNoData)
	}
	if err := requireText("nome_usuario", req.Borrower); err != nil {
		return model.Loan{}, err
	}
	if req.BookID == nil {
		return model.Loan{}, errs.Validation(`O campo "livro_id" é obrigatório`)
	}

	var loan model.Loan
	err := s.repo.InTx(ctx, func(tx repository.Tx) (err error) {
		loan, err = s.ledger.CreateLoan(ctx, tx, req.Borrower, *req.BookID)
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.publish(ctx, model.LoanCreated, loan)
	return loan, nil
}

// UpdateLoan renames the borrower and/or changes the status in a single
// transaction: if the status change is refused, the rename is dropped too.
func (s *Registry) UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error) {
	if req.Empty() {
		return model.Loan{}, errs.Validation(errs.MsgNoData)
	}
	if req.Borrower != nil {
		if err := requireText("nome_usuario", *req.Borrower); err != nil {
			return model.Loan{}, err
		}
	}

	var (
		loan          model.Loan
		statusChanged bool
		renamed       bool
	)
	err := s.repo.InTx(ctx, func(tx repository.Tx) (err error) {
		if req.Status != nil {
			loan, statusChanged, err = s.ledger.SetLoanStatus(ctx, tx, id, *req.Status)
		} else {
			loan, err = tx.LoanForUpdate(ctx, id)
		}
		if err != nil {
			return err
		}
		if req.Borrower == nil || *req.Borrower == loan.Borrower {
			return nil
		}
		loan.Borrower = *req.Borrower
		renamed = true
		return tx.UpdateLoan(ctx, loan)
	})
	if err != nil {
		return model.Loan{}, err
	}

	if statusChanged {
		typ := model.LoanReturned
		if loan.Active() {
			typ = model.LoanReactivated
		}
		s.publish(ctx, typ, loan)
	}
	if renamed {
		s.publish(ctx, model.LoanRenamed, loan)
	}
	return loan, nil
}

func (s *Registry) DeleteLoan(ctx context.Context, id int) error {
	var loan model.Loan
	err := s.repo.InTx(ctx, func(tx repository.Tx) (err error) {
		loan, err = s.ledger.DeleteLoan(ctx, tx, id)
		return err
	})
	if err != nil {
		return err
	}
	s.publish(ctx, model.LoanDeleted, loan)
	return nil
}

// publish is best effort: the loan change is already committed.
func (s *Registry) publish(ctx context.Context, typ model.LoanEventType, loan model.Loan) {
	if err := s.publisher.Publish(ctx, model.NewLoanEvent(typ, loan, time.Now())); err != nil {
		s.log.Warn("publish loan event",
			zap.String("type", string(typ)),
			zap.Int("loan_id", loan.ID),
			zap.Error(err))
	}
}
