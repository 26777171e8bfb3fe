package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

var entryColumns = []string{"id", "name", "kind", "record_status", "created_at", "updated_at"}

type stubRow struct {
	scanFn func(dest ...any) error
}

func (s stubRow) Scan(dest ...any) error {
	return s.scanFn(dest...)
}

func TestScanEntry_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(...any) error { return pgx.ErrNoRows }}

	if _, err := scanEntry(row, directory.CollectionClients); !errors.Is(err, directory.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDirectoryRepository_CreateTask(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDirectoryRepository(mock)
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tasks (name, kind, record_status, created_at, updated_at)`)).
		WithArgs("Coding", "Break", "active", now, now).
		WillReturnRows(pgxmock.NewRows(entryColumns).AddRow("task-1", "Coding", "Break", "active", now, now))

	created, err := repo.Create(context.Background(), &directory.Entry{
		Meta:       record.NewMeta(now),
		Collection: directory.CollectionTasks,
		Name:       "Coding",
		TaskKind:   directory.TaskKindBreak,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "task-1" || created.TaskKind != directory.TaskKindBreak || created.Collection != directory.CollectionTasks {
		t.Fatalf("unexpected entry: %+v", created)
	}

	assertExpectations(t, mock)
}

func TestDirectoryRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDirectoryRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clients (name, record_status, created_at, updated_at)`)).
		WithArgs("Acme", "active", now, now).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), &directory.Entry{
		Meta:       record.NewMeta(now),
		Collection: directory.CollectionClients,
		Name:       "Acme",
	})
	if !errors.Is(err, directory.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestDirectoryRepository_FindActiveByName(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDirectoryRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM teams\s+WHERE lower\(name\) = lower\(\$1\)\s+AND record_status = 'active'`).
		WithArgs("platform").
		WillReturnRows(pgxmock.NewRows(entryColumns).AddRow("team-1", "Platform", nil, "active", now, now))

	found, err := repo.FindActiveByName(context.Background(), directory.CollectionTeams, "platform")
	if err != nil {
		t.Fatalf("FindActiveByName returned error: %v", err)
	}
	if found.Name != "Platform" || found.TaskKind != "" {
		t.Fatalf("unexpected entry: %+v", found)
	}

	mock.ExpectQuery(`FROM teams`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(entryColumns))

	if _, err := repo.FindActiveByName(context.Background(), directory.CollectionTeams, "missing"); !errors.Is(err, directory.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestDirectoryRepository_SoftDelete(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDirectoryRepository(mock)
	at := time.Now().UTC()

	mock.ExpectExec(`UPDATE staff_types\s+SET updated_at = CASE WHEN record_status = 'deleted'`).
		WithArgs("type-1", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE staff_types`).
		WithArgs("missing", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := repo.SoftDelete(context.Background(), directory.CollectionStaffTypes, "type-1", at); err != nil {
		t.Fatalf("SoftDelete returned error: %v", err)
	}
	if err := repo.SoftDelete(context.Background(), directory.CollectionStaffTypes, "missing", at); !errors.Is(err, directory.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestDirectoryRepository_List_WithNextToken(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDirectoryRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients WHERE record_status = $1`) + `\s+ORDER BY created_at, id\s+LIMIT \$2\s+OFFSET \$3`).
		WithArgs("active", 3, 2).
		WillReturnRows(pgxmock.NewRows(entryColumns).
			AddRow("c3", "Acme", nil, "active", now, now).
			AddRow("c4", "Globex", nil, "active", now, now).
			AddRow("c5", "Initech", nil, "active", now, now))

	entries, next, err := repo.List(context.Background(), directory.ListEntriesFilter{
		Collection: directory.CollectionClients,
		Status:     record.StatusActive,
		Limit:      2,
		Offset:     2,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if next != "4" {
		t.Fatalf("expected next token '4', got %s", next)
	}

	assertExpectations(t, mock)
}

func TestDirectoryRepository_InvalidCollection(t *testing.T) {
	t.Parallel()

	repo := NewDirectoryRepository(newMockPool(t))

	if _, err := repo.FindByID(context.Background(), directory.Collection("projects"), "p1"); !errors.Is(err, directory.ErrInvalidCollection) {
		t.Fatalf("expected ErrInvalidCollection, got %v", err)
	}
}

func TestDirectoryRepository_CountActive(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDirectoryRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM clients WHERE record_status = 'active'`)).
		WithArgs().
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := repo.CountActive(context.Background(), directory.CollectionClients)
	if err != nil {
		t.Fatalf("CountActive returned error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}

	assertExpectations(t, mock)
}
