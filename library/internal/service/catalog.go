package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/ledger"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
)

// Catalog manages book records.
type Catalog struct {
	log    *zap.Logger
	repo   repository.Repository
	ledger *ledger.Ledger
}

func NewCatalog(repo repository.Repository, l *ledger.Ledger, log *zap.Logger) *Catalog {
	return &Catalog{
		log:    log.Named("catalog"),
		repo:   repo,
		ledger: l,
	}
}

func (s *Catalog) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Catalog) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

// CreateBook defaults the total to 0 and the available copies to the total.
func (s *Catalog) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if req.Empty() {
		return model.Book{}, errs.Validation(errs.MsgNoData)
	}
	if err := requireText("titulo", req.Title); err != nil {
		return model.Book{}, err
	}
	if err := requireText("autor", req.Author); err != nil {
		return model.Book{}, err
	}
	if req.PublicationYear == nil {
		return model.Book{}, errs.Validation(`O campo "ano_publicacao" é obrigatório`)
	}

	book := model.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublicationYear: *req.PublicationYear,
	}
	if req.TotalCopies != nil {
		book.TotalCopies = *req.TotalCopies
	}
	book.AvailableCopies = book.TotalCopies
	if req.AvailableCopies != nil {
		book.AvailableCopies = *req.AvailableCopies
	}
	if err := ledger.CheckStock(book.TotalCopies, book.AvailableCopies); err != nil {
		return model.Book{}, err
	}

	book, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book created", zap.Int("book_id", book.ID), zap.String("title", book.Title))
	return book, nil
}

// UpdateBook applies the fields present in req. Copy counts are not adjusted
// to each other, only checked: the total may not go negative and available
// copies may not exceed the total after the update.
func (s *Catalog) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	if req.Empty() {
		return model.Book{}, errs.Validation(errs.MsgNoData)
	}

	var book model.Book
	err := s.repo.InTx(ctx, func(tx repository.Tx) (err error) {
		book, err = tx.BookForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := applyBookUpdate(&book, req); err != nil {
			return err
		}
		return tx.UpdateBook(ctx, book)
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func applyBookUpdate(book *model.Book, req model.UpdateBookRequest) error {
	if req.Title != nil {
		if err := requireText("titulo", *req.Title); err != nil {
			return err
		}
		book.Title = *req.Title
	}
	if req.Author != nil {
		if err := requireText("autor", *req.Author); err != nil {
			return err
		}
		book.Author = *req.Author
	}
	if req.PublicationYear != nil {
		book.PublicationYear = *req.PublicationYear
	}
	if req.TotalCopies != nil {
		if *req.TotalCopies < 0 {
			return errs.Validation(errs.MsgNegativeTotal)
		}
		book.TotalCopies = *req.TotalCopies
	}
	if req.AvailableCopies != nil {
		book.AvailableCopies = *req.AvailableCopies
	}
	return ledger.CheckStock(book.TotalCopies, book.AvailableCopies)
}

// DeleteBook removes the book and its loan history unless loans are active.
func (s *Catalog) DeleteBook(ctx context.Context, id int) error {
	err := s.repo.InTx(ctx, func(tx repository.Tx) error {
		return s.ledger.DeleteBook(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("book deleted", zap.Int("book_id", id))
	return nil
}
