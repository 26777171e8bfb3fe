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

	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/report"
	"github.com/ogurasousui/timetrack/internal/core/timer"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

var timeLogColumnNames = []string{"id", "staff_id", "client_id", "project_id", "task_id", "start_time", "end_time", "duration_seconds", "created_at"}

func TestSessionRepository_InsertAlreadyRunning(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewSessionRepository(mock)
	start := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO timer_sessions (staff_id, id, started_at)`)).
		WithArgs("s1", "sess-1", start).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO timer_sessions (staff_id, id, started_at)`)).
		WithArgs("s1", "sess-2", start).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	if err := repo.Insert(context.Background(), &timer.Session{ID: "sess-1", StaffID: "s1", StartedAt: start}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := repo.Insert(context.Background(), &timer.Session{ID: "sess-2", StaffID: "s1", StartedAt: start}); !errors.Is(err, timer.ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestSessionRepository_FindNotRunning(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewSessionRepository(mock)

	mock.ExpectQuery(`FROM timer_sessions`).
		WithArgs("s1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "staff_id", "started_at"}))

	if _, err := repo.Find(context.Background(), "s1"); !errors.Is(err, timer.ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}

	assertExpectations(t, mock)
}

func TestSessionRepository_DeleteIsConditional(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewSessionRepository(mock)
	start := time.Now().UTC()

	mock.ExpectExec(`DELETE FROM timer_sessions\s+WHERE staff_id = \$1\s+AND started_at = \$2`).
		WithArgs("s1", start).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM timer_sessions`).
		WithArgs("s1", start).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), "s1", start)
	if err != nil || !deleted {
		t.Fatalf("expected first delete to succeed, deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(context.Background(), "s1", start)
	if err != nil || deleted {
		t.Fatalf("expected second delete to be a no-op, deleted=%v err=%v", deleted, err)
	}

	assertExpectations(t, mock)
}

func TestStopFlow_InsideTransaction(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := pgdb.NewTransactionManager(mock)
	sessions := NewSessionRepository(mock)
	logs := NewTimeLogRepository(mock)

	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec(`DELETE FROM timer_sessions`).
		WithArgs("s1", start).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO time_logs`)).
		WithArgs("s1", nil, "p1", "task-1", start, end, int64(90), end).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, err := sessions.Delete(ctx, "s1", start); err != nil {
			return err
		}
		_, err := logs.Insert(ctx, &timer.TimeLog{
			StaffID: "s1", ProjectID: "p1", TaskID: "task-1",
			StartTime: start, EndTime: end, DurationSeconds: 90, CreatedAt: end,
		})
		return err
	})
	if !errors.Is(err, record.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}

	assertExpectations(t, mock)
}

type stepClock struct {
	times []time.Time
}

func (c *stepClock) Now() time.Time {
	now := c.times[0]
	c.times = c.times[1:]
	return now
}

type allowAllAssignments struct{}

func (allowAllAssignments) GetProject(_ context.Context, id string) (*assignment.Project, error) {
	return &assignment.Project{Meta: record.Meta{ID: id, Status: record.StatusActive}, Name: "Website", ClientID: "c1"}, nil
}

func (allowAllAssignments) IsStaffAssigned(context.Context, string, string) (bool, error) {
	return true, nil
}

func (allowAllAssignments) IsTaskAssigned(context.Context, string, string) (bool, error) {
	return true, nil
}

func TestTimerService_StopTwiceWritesDistinctLogs(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	first := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)
	ends := []time.Time{first.Add(time.Hour), second.Add(30 * time.Minute)}
	clock := &stepClock{times: append([]time.Time(nil), ends...)}
	svc := timer.NewService(NewSessionRepository(mock), NewTimeLogRepository(mock), allowAllAssignments{}, clock, pgdb.NewTransactionManager(mock))

	for i, start := range []time.Time{first, second} {
		end := ends[i]
		mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
		mock.ExpectQuery(`FROM timer_sessions`).
			WithArgs("s1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "staff_id", "started_at"}).AddRow("sess", "s1", start))
		mock.ExpectExec(`DELETE FROM timer_sessions`).
			WithArgs("s1", start).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO time_logs (staff_id, client_id, project_id, task_id, start_time, end_time, duration_seconds, created_at)`)).
			WithArgs("s1", "c1", "p1", "task-1", start, end, int64(end.Sub(start)/time.Second), end).
			WillReturnRows(pgxmock.NewRows(timeLogColumnNames).
				AddRow([]string{"log-a", "log-b"}[i], "s1", "c1", "p1", "task-1", start, end, int64(end.Sub(start)/time.Second), end))
		mock.ExpectCommit()
	}

	var ids []string
	for range 2 {
		log, err := svc.Stop(context.Background(), timer.StopInput{StaffID: "s1", ProjectID: "p1", TaskID: "task-1"})
		if err != nil {
			t.Fatalf("Stop returned error: %v", err)
		}
		ids = append(ids, log.ID)
	}
	if ids[0] == "" || ids[0] == ids[1] {
		t.Fatalf("expected store-assigned distinct ids, got %q", ids)
	}

	assertExpectations(t, mock)
}

func TestTimeLogRepository_ListRange(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewTimeLogRepository(mock)
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(9 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM time_logs WHERE start_time >= $1 AND start_time < $2 AND staff_id = $3`) + `\s+ORDER BY start_time DESC, id DESC`).
		WithArgs(from, to, "s1").
		WillReturnRows(pgxmock.NewRows(timeLogColumnNames).
			AddRow("l2", "s1", "c1", "p1", "task-1", start.Add(time.Hour), start.Add(2*time.Hour), int64(3600), start.Add(2*time.Hour)).
			AddRow("l1", "s1", nil, "p2", "task-1", start, start.Add(time.Minute), int64(60), start.Add(time.Minute)))

	logs, err := repo.ListRange(context.Background(), report.RangeFilter{StaffID: "s1", From: from, To: to})
	if err != nil {
		t.Fatalf("ListRange returned error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].ClientID != "c1" || logs[1].ClientID != "" || logs[1].DurationSeconds != 60 {
		t.Fatalf("unexpected logs: %+v %+v", logs[0], logs[1])
	}

	assertExpectations(t, mock)
}

func TestTimeLogRepository_CountDistinctStaffSince(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewTimeLogRepository(mock)
	since := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(DISTINCT staff_id) FROM time_logs WHERE created_at >= $1`)).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := repo.CountDistinctStaffSince(context.Background(), since)
	if err != nil {
		t.Fatalf("CountDistinctStaffSince returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}

	assertExpectations(t, mock)
}
