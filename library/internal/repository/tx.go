package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
)

type txRepository struct {
	tx  *sqlx.Tx
	log *zap.Logger
}

var _ Tx = (*txRepository)(nil)

func (r *txRepository) BookForUpdate(ctx context.Context, id int) (model.Book, error) {
	return getBook(ctx, r.tx, id, true)
}

func (r *txRepository) UpdateBook(ctx context.Context, book model.Book) error {
	query, args, err := qb.Update(booksTableName).
		SetMap(map[string]any{
			"title":            book.Title,
			"author":           book.Author,
			"publication_year": book.PublicationYear,
			"total_copies":     book.TotalCopies,
			"available_copies": book.AvailableCopies,
		}).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args, errs.MsgBookNotFound)
}

func (r *txRepository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args, errs.MsgBookNotFound)
}

func (r *txRepository) CountActiveLoans(ctx context.Context, bookID int) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(loansTableName).
		Where(sq.Eq{"book_id": bookID, "status": string(model.StatusActive)}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.tx.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count active loans")
	}
	return count, nil
}

func (r *txRepository) LoanBookID(ctx context.Context, loanID int) (int, error) {
	query, args, err := qb.Select("book_id").
		From(loansTableName).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var bookID int
	if err := r.tx.GetContext(ctx, &bookID, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NotFound(errs.MsgLoanNotFound)
		}
		return 0, errors.Wrap(err, "select loan book")
	}
	return bookID, nil
}

func (r *txRepository) LoanForUpdate(ctx context.Context, id int) (model.Loan, error) {
	return getLoan(ctx, r.tx, id, true)
}

func (r *txRepository) InsertLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("borrower", "book_id", "status", "loan_date", "return_date").
		Values(loan.Borrower, loan.BookID, string(loan.Status), loan.LoanDate, loan.ReturnDate).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	if err := r.tx.QueryRowxContext(ctx, query, args...).Scan(&loan.ID); err != nil {
		r.log.Error("InsertLoan", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Loan{}, mapPgErr(errors.Wrap(err, "insert loan"))
	}
	return loan, nil
}

func (r *txRepository) UpdateLoan(ctx context.Context, loan model.Loan) error {
	query, args, err := qb.Update(loansTableName).
		SetMap(map[string]any{
			"borrower":    loan.Borrower,
			"status":      string(loan.Status),
			"return_date": loan.ReturnDate,
		}).
		Where(sq.Eq{"id": loan.ID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args, errs.MsgLoanNotFound)
}

func (r *txRepository) DeleteLoan(ctx context.Context, id int) error {
	query, args, err := qb.Delete(loansTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args, errs.MsgLoanNotFound)
}

func (r *txRepository) exec(ctx context.Context, query string, args []any, notFoundMsg string) error {
	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("exec", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return mapPgErr(errors.Wrap(err, "exec"))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return errs.NotFound(notFoundMsg)
	}
	return nil
}
