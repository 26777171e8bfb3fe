package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/report"
	"github.com/ogurasousui/timetrack/internal/core/timer"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

const timeLogColumns = `id, staff_id, client_id, project_id, task_id, start_time, end_time, duration_seconds, created_at`

// TimeLogRepository は作業ログの書き込みと読み出しを行います。ログは追記のみです。
type TimeLogRepository struct {
	pool pgdb.Queryer
}

// NewTimeLogRepository は TimeLogRepository を生成します。
func NewTimeLogRepository(pool pgdb.Queryer) *TimeLogRepository {
	return &TimeLogRepository{pool: pool}
}

// Insert は作業ログを追加します。ID はストア側で採番されます。
func (r *TimeLogRepository) Insert(ctx context.Context, l *timer.TimeLog) (*timer.TimeLog, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO time_logs (staff_id, client_id, project_id, task_id, start_time, end_time, duration_seconds, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+timeLogColumns+`
    `, l.StaffID, nullableString(l.ClientID), l.ProjectID, l.TaskID, l.StartTime, l.EndTime, l.DurationSeconds, l.CreatedAt)

	created, err := scanTimeLog(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return created, nil
}

// ListByStaff はスタッフの作業ログを新しい順に返します。
func (r *TimeLogRepository) ListByStaff(ctx context.Context, staffID string) ([]*timer.TimeLog, error) {
	return r.query(ctx, `
        SELECT `+timeLogColumns+`
          FROM time_logs
         WHERE staff_id = $1
         ORDER BY start_time DESC, id DESC
    `, staffID)
}

// ListAll は全作業ログを新しい順に返します。
func (r *TimeLogRepository) ListAll(ctx context.Context) ([]*timer.TimeLog, error) {
	return r.query(ctx, `
        SELECT `+timeLogColumns+`
          FROM time_logs
         ORDER BY start_time DESC, id DESC
    `)
}

// ListRange は開始時刻が [From, To) に入る作業ログを返します。
func (r *TimeLogRepository) ListRange(ctx context.Context, filter report.RangeFilter) ([]*timer.TimeLog, error) {
	var where whereBuilder
	where.add("start_time >= ?", filter.From)
	where.add("start_time < ?", filter.To)
	if filter.StaffID != "" {
		where.add("staff_id = ?", filter.StaffID)
	}
	return r.query(ctx, `
        SELECT `+timeLogColumns+`
          FROM time_logs`+where.clause()+`
         ORDER BY start_time DESC, id DESC
    `, where.args...)
}

// CountCreatedSince は since 以降に作成された作業ログ数を返します。
func (r *TimeLogRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return countRows(ctx, pgdb.QueryerFromContext(ctx, r.pool), `SELECT count(*) FROM time_logs WHERE created_at >= $1`, since)
}

// CountDistinctStaffSince は since 以降に作業ログを作成したスタッフ数を返します。
func (r *TimeLogRepository) CountDistinctStaffSince(ctx context.Context, since time.Time) (int, error) {
	return countRows(ctx, pgdb.QueryerFromContext(ctx, r.pool), `SELECT count(DISTINCT staff_id) FROM time_logs WHERE created_at >= $1`, since)
}

func (r *TimeLogRepository) query(ctx context.Context, query string, args ...any) ([]*timer.TimeLog, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	defer rows.Close()

	var logs []*timer.TimeLog
	for rows.Next() {
		l, err := scanTimeLog(rows)
		if err != nil {
			return nil, translatePgError(err, nil)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err, nil)
	}
	return logs, nil
}

func scanTimeLog(row pgx.Row) (*timer.TimeLog, error) {
	var (
		l        timer.TimeLog
		clientID sql.NullString
	)
	if err := row.Scan(&l.ID, &l.StaffID, &clientID, &l.ProjectID, &l.TaskID,
		&l.StartTime, &l.EndTime, &l.DurationSeconds, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.ClientID = clientID.String
	return &l, nil
}

var (
	_ timer.LogRepository = (*TimeLogRepository)(nil)
	_ report.LogReader    = (*TimeLogRepository)(nil)
)
