package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
)

type Repository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	// InTx runs fn inside one transaction. It commits when fn returns nil and
	// rolls back otherwise.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is a transaction handle scoped to a single request. Rows read with the
// ForUpdate methods stay locked until the transaction ends; callers lock the
// book row before the loan row.
type Tx interface {
	BookForUpdate(ctx context.Context, id int) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBook(ctx context.Context, id int) error
	CountActiveLoans(ctx context.Context, bookID int) (int, error)
	LoanBookID(ctx context.Context, loanID int) (int, error)
	LoanForUpdate(ctx context.Context, id int) (model.Loan, error)
	InsertLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	UpdateLoan(ctx context.Context, loan model.Loan) error
	DeleteLoan(ctx context.Context, id int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName = `books`
	loansTableName = `loans`
)

var (
	qb          = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	bookColumns = []string{"id", "title", "author", "publication_year", "total_copies", "available_copies"}
)

func loanSelect() sq.SelectBuilder {
	return qb.Select("l.id", "l.borrower", "l.book_id", "b.title as book_title", "l.status", "l.loan_date", "l.return_date").
		From(loansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id")
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "select books")
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	return getBook(ctx, r.db, id, false)
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns[1:]...).
		Values(book.Title, book.Author, book.PublicationYear, book.TotalCopies, book.AvailableCopies).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&book.ID); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, mapPgErr(errors.Wrap(err, "insert book"))
	}
	return book, nil
}

func (r *repository) ListLoans(ctx context.Context) ([]model.Loan, error) {
	query, args, err := loanSelect().OrderBy("l.id").ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0)
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, errors.Wrap(err, "select loans")
	}
	return loans, nil
}

func (r *repository) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	return getLoan(ctx, r.db, id, false)
}

func (r *repository) InTx(ctx context.Context, fn func(tx Tx) error) error {
	sqlTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&txRepository{tx: sqlTx, log: r.log}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			r.log.Error("rollback", zap.Error(rbErr))
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return mapPgErr(errors.Wrap(err, "commit"))
	}
	return nil
}

func getBook(ctx context.Context, q sqlx.QueryerContext, id int, forUpdate bool) (model.Book, error) {
	b := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, q, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.NotFound(errs.MsgBookNotFound)
		}
		return model.Book{}, errors.Wrap(err, "select book")
	}
	return book, nil
}

func getLoan(ctx context.Context, q sqlx.QueryerContext, id int, forUpdate bool) (model.Loan, error) {
	b := loanSelect().Where(sq.Eq{"l.id": id})
	if forUpdate {
		b = b.Suffix("for update of l")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, q, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.NotFound(errs.MsgLoanNotFound)
		}
		return model.Loan{}, errors.Wrap(err, "select loan")
	}
	return loan, nil
}

// mapPgErr turns constraint violations into domain errors. Other errors
// are returned unchanged.
func mapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return errs.NotFound(errs.MsgBookNotFound)
	case pgerrcode.CheckViolation:
		if pgErr.ConstraintName == "loans_status_check" {
			return errs.Validation(errs.MsgInvalidStatus)
		}
		return errs.Validation(errs.MsgAvailAboveTotal)
	case pgerrcode.StringDataRightTruncationDataException:
		return errs.Validation(errs.MsgTextTooLong)
	}
	return err
}
