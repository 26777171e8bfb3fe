package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func assertExpectations(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslatePgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translatePgError(pgErr, directory.ErrDuplicateName), directory.ErrDuplicateName) {
		t.Fatalf("expected unique violation mapped to duplicate name")
	}

	if err := translatePgError(pgErr, nil); !errors.Is(err, record.ErrStore) {
		t.Fatalf("expected unmapped unique violation wrapped as store error, got %v", err)
	}

	if err := translatePgError(directory.ErrEntryNotFound, nil); err != directory.ErrEntryNotFound {
		t.Fatalf("domain errors must pass through, got %v", err)
	}

	otherErr := errors.New("connection reset")
	err := translatePgError(otherErr, nil)
	if !errors.Is(err, record.ErrStore) || !errors.Is(err, otherErr) {
		t.Fatalf("expected store error wrapping the cause, got %v", err)
	}

	if translatePgError(nil, nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestWhereBuilder(t *testing.T) {
	t.Parallel()

	var w whereBuilder
	if w.clause() != "" {
		t.Fatalf("empty builder must not render a clause")
	}

	w.add("record_status = ?", "active")
	w.add("team_id = ?", "team-1")
	limit := w.placeholder(11)

	if got := w.clause(); got != " WHERE record_status = $1 AND team_id = $2" {
		t.Fatalf("unexpected clause: %q", got)
	}
	if limit != "$3" {
		t.Fatalf("unexpected placeholder: %s", limit)
	}
	if len(w.args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(w.args))
	}
}
