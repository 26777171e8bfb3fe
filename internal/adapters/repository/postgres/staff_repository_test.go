package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/staff"
)

var staffColumnNames = []string{
	"id", "name", "email", "password_hash", "team_id", "staff_type_id", "shift_time_id",
	"activation_code", "reset_token", "record_status", "created_at", "updated_at",
}

func TestStaffRepository_CreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStaffRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO staff`)).
		WithArgs("Alice", "alice@example.com", "hash", "team-1", "type-1", "shift-1", "code", "", "inactive", now, now).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), &staff.Staff{
		Meta:           record.Meta{Status: record.StatusInactive, CreatedAt: now, UpdatedAt: now},
		Name:           "Alice",
		Email:          "alice@example.com",
		PasswordHash:   "hash",
		TeamID:         "team-1",
		StaffTypeID:    "type-1",
		ShiftTimeID:    "shift-1",
		ActivationCode: "code",
	})
	if !errors.Is(err, staff.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestStaffRepository_FindByEmailSkipsDeleted(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStaffRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`WHERE lower\(email\) = lower\(\$1\)\s+AND record_status <> 'deleted'`).
		WithArgs("ALICE@example.com").
		WillReturnRows(pgxmock.NewRows(staffColumnNames).
			AddRow("s1", "Alice", "alice@example.com", "hash", "team-1", "type-1", "shift-1", "", "", "active", now, now))

	found, err := repo.FindByEmail(context.Background(), "ALICE@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if found.ID != "s1" || !found.IsActive() {
		t.Fatalf("unexpected staff: %+v", found)
	}

	mock.ExpectQuery(`FROM staff`).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(staffColumnNames))

	if _, err := repo.FindByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, staff.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestStaffRepository_ListWithTeamFilter(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStaffRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM staff WHERE record_status = $1 AND team_id = $2`) + `\s+ORDER BY created_at, id\s+LIMIT \$3\s+OFFSET \$4`).
		WithArgs("active", "team-1", 11, 0).
		WillReturnRows(pgxmock.NewRows(staffColumnNames).
			AddRow("s1", "Alice", "alice@example.com", "hash", "team-1", "type-1", "shift-1", "", "", "active", now, now))

	members, next, err := repo.List(context.Background(), staff.ListStaffFilter{
		Status: record.StatusActive,
		TeamID: "team-1",
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(members) != 1 || next != "" {
		t.Fatalf("unexpected result: %d members, next %q", len(members), next)
	}

	assertExpectations(t, mock)
}

func TestStaffRepository_ListActive(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStaffRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM staff WHERE record_status = 'active'`) + `\s+ORDER BY`).
		WithArgs().
		WillReturnRows(pgxmock.NewRows(staffColumnNames).
			AddRow("s1", "Alice", "a@example.com", "h", "team-1", "type-1", "shift-1", "", "", "active", now, now).
			AddRow("s2", "Bob", "b@example.com", "h", "team-2", "type-1", "shift-1", "", "", "active", now, now))

	members, err := repo.ListActive(context.Background(), staff.ActiveStaffFilter{})
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}

	assertExpectations(t, mock)
}

func TestStaffRepository_CountActiveNonAdmin(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStaffRepository(mock)

	mock.ExpectQuery(`JOIN staff_types t ON t.id = s.staff_type_id\s+WHERE s.record_status = 'active'\s+AND lower\(t.name\) <> lower\(\$1\)`).
		WithArgs("Admin").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	n, err := repo.CountActiveNonAdmin(context.Background())
	if err != nil {
		t.Fatalf("CountActiveNonAdmin returned error: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}

	assertExpectations(t, mock)
}

func TestStaffRepository_StoreFailure(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStaffRepository(mock)

	mock.ExpectQuery(`FROM staff`).
		WithArgs("s1").
		WillReturnError(errors.New("connection refused"))

	if _, err := repo.FindByID(context.Background(), "s1"); !errors.Is(err, record.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}

	assertExpectations(t, mock)
}
