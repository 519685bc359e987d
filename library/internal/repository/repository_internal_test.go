package repository

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
)

func TestMapPgErr(t *testing.T) {
	t.Parallel()
	plain := errors.New("conn closed")
	tests := []struct {
		name     string
		err      error
		wantKind error
		wantMsg  string
		wantSame bool
	}{
		{
			name:     "foreign key",
			err:      errors.Wrap(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "insert loan"),
			wantKind: errs.ErrNotFound,
			wantMsg:  errs.MsgBookNotFound,
		},
		{
			name:     "status check",
			err:      &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "loans_status_check"},
			wantKind: errs.ErrValidation,
			wantMsg:  errs.MsgInvalidStatus,
		},
		{
			name:     "copies check",
			err:      &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "books_copies_check"},
			wantKind: errs.ErrValidation,
			wantMsg:  errs.MsgAvailAboveTotal,
		},
		{
			name:     "value too long",
			err:      errors.Wrap(&pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException}, "insert book"),
			wantKind: errs.ErrValidation,
			wantMsg:  errs.MsgTextTooLong,
		},
		{
			name:     "other pg error",
			err:      &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			wantSame: true,
		},
		{
			name:     "not a pg error",
			err:      plain,
			wantSame: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapPgErr(tt.err)
			if tt.wantSame {
				require.Equal(t, tt.err, got)
				return
			}
			require.ErrorIs(t, got, tt.wantKind)
			require.EqualError(t, got, tt.wantMsg)
		})
	}
}

func TestLoanSelect(t *testing.T) {
	t.Parallel()
	query, args, err := loanSelect().Where("l.id = ?", 3).Suffix("for update of l").ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT l.id, l.borrower, l.book_id, b.title as book_title, l.status, l.loan_date, l.return_date "+
			"FROM loans l JOIN books b on b.id = l.book_id WHERE l.id = $1 for update of l",
		query)
	require.Equal(t, []interface{}{3}, args)
}
