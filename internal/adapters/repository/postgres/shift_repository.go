package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

const shiftColumns = `id, name, kind, from_time, to_time, applicable_days, work_hours, break_hours, total_hours, min_hours, record_status, created_at, updated_at`

// ShiftRepository は PostgreSQL を利用したシフトの永続化実装です。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// Create はシフトを新規作成します。
func (r *ShiftRepository) Create(ctx context.Context, s *directory.ShiftTime) (*directory.ShiftTime, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shift_times (name, kind, from_time, to_time, applicable_days, work_hours, break_hours, total_hours, min_hours, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING `+shiftColumns+`
    `, s.Name, string(s.Kind), s.FromTime, s.ToTime, weekdaysToStrings(s.ApplicableDays),
		s.WorkHours, s.BreakHours, s.TotalHours, s.MinHours, string(s.Status), s.CreatedAt, s.UpdatedAt)

	created, err := scanShift(row)
	if err != nil {
		return nil, translatePgError(err, directory.ErrDuplicateName)
	}
	return created, nil
}

// Update はシフトを更新します。
func (r *ShiftRepository) Update(ctx context.Context, s *directory.ShiftTime) (*directory.ShiftTime, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE shift_times
           SET name = $1,
               kind = $2,
               from_time = $3,
               to_time = $4,
               applicable_days = $5,
               work_hours = $6,
               break_hours = $7,
               total_hours = $8,
               min_hours = $9,
               record_status = $10,
               updated_at = $11
         WHERE id = $12
        RETURNING `+shiftColumns+`
    `, s.Name, string(s.Kind), s.FromTime, s.ToTime, weekdaysToStrings(s.ApplicableDays),
		s.WorkHours, s.BreakHours, s.TotalHours, s.MinHours, string(s.Status), s.UpdatedAt, s.ID)

	updated, err := scanShift(row)
	if err != nil {
		return nil, translatePgError(err, directory.ErrDuplicateName)
	}
	return updated, nil
}

// SoftDelete はシフトを論理削除します。
func (r *ShiftRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, softDeleteSQL("shift_times"), id, at)
	if err != nil {
		return translatePgError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return directory.ErrShiftNotFound
	}
	return nil
}

// FindByID は ID でシフトを取得します。
func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*directory.ShiftTime, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+shiftColumns+`
          FROM shift_times
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanShift(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// FindActiveByName は大文字小文字を区別せずに有効なシフトを取得します。
func (r *ShiftRepository) FindActiveByName(ctx context.Context, name string) (*directory.ShiftTime, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+shiftColumns+`
          FROM shift_times
         WHERE lower(name) = lower($1)
           AND record_status = 'active'
         LIMIT 1
    `, name)

	found, err := scanShift(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// List はシフトを作成順に一覧します。
func (r *ShiftRepository) List(ctx context.Context, filter directory.ListShiftsFilter) ([]*directory.ShiftTime, string, error) {
	if filter.Limit <= 0 {
		return nil, "", record.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", record.ErrInvalidPageToken
	}

	var where whereBuilder
	if filter.Status != "" {
		where.add("record_status = ?", string(filter.Status))
	}
	limitPlaceholder := where.placeholder(filter.Limit + 1)
	offsetPlaceholder := where.placeholder(filter.Offset)

	query := `
        SELECT ` + shiftColumns + `
          FROM shift_times` + where.clause() + `
         ORDER BY created_at, id
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, where.args...)
	if err != nil {
		return nil, "", translatePgError(err, nil)
	}
	defer rows.Close()

	var shifts []*directory.ShiftTime
	for rows.Next() {
		found, err := scanShift(rows)
		if err != nil {
			return nil, "", translatePgError(err, nil)
		}
		shifts = append(shifts, found)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translatePgError(err, nil)
	}

	shifts, next := record.NextPageToken(shifts, record.Page{Limit: filter.Limit, Offset: filter.Offset})
	return shifts, next, nil
}

func scanShift(row pgx.Row) (*directory.ShiftTime, error) {
	var (
		s                    directory.ShiftTime
		kind, status         string
		days                 []string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&s.ID, &s.Name, &kind, &s.FromTime, &s.ToTime, &days,
		&s.WorkHours, &s.BreakHours, &s.TotalHours, &s.MinHours, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrShiftNotFound
		}
		return nil, err
	}

	s.Kind = directory.ShiftKind(kind)
	s.Status = record.Status(status)
	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt
	s.ApplicableDays = make([]directory.Weekday, 0, len(days))
	for _, d := range days {
		s.ApplicableDays = append(s.ApplicableDays, directory.Weekday(d))
	}
	return &s, nil
}

func weekdaysToStrings(days []directory.Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, string(d))
	}
	return out
}
