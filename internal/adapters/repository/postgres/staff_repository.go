package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/staff"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

const staffColumns = `id, name, email, password_hash, team_id, staff_type_id, shift_time_id, activation_code, reset_token, record_status, created_at, updated_at`

// StaffRepository は PostgreSQL を利用したスタッフの永続化実装です。
type StaffRepository struct {
	pool pgdb.Queryer
}

// NewStaffRepository は StaffRepository を生成します。
func NewStaffRepository(pool pgdb.Queryer) *StaffRepository {
	return &StaffRepository{pool: pool}
}

// Create はスタッフを新規作成します。
func (r *StaffRepository) Create(ctx context.Context, s *staff.Staff) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO staff (name, email, password_hash, team_id, staff_type_id, shift_time_id, activation_code, reset_token, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+staffColumns+`
    `, s.Name, s.Email, s.PasswordHash, s.TeamID, s.StaffTypeID, s.ShiftTimeID,
		s.ActivationCode, s.ResetToken, string(s.Status), s.CreatedAt, s.UpdatedAt)

	created, err := scanStaff(row)
	if err != nil {
		return nil, translatePgError(err, staff.ErrDuplicateEmail)
	}
	return created, nil
}

// Update はスタッフ情報を更新します。
func (r *StaffRepository) Update(ctx context.Context, s *staff.Staff) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE staff
           SET name = $1,
               email = $2,
               password_hash = $3,
               team_id = $4,
               staff_type_id = $5,
               shift_time_id = $6,
               activation_code = $7,
               reset_token = $8,
               record_status = $9,
               updated_at = $10
         WHERE id = $11
        RETURNING `+staffColumns+`
    `, s.Name, s.Email, s.PasswordHash, s.TeamID, s.StaffTypeID, s.ShiftTimeID,
		s.ActivationCode, s.ResetToken, string(s.Status), s.UpdatedAt, s.ID)

	updated, err := scanStaff(row)
	if err != nil {
		return nil, translatePgError(err, staff.ErrDuplicateEmail)
	}
	return updated, nil
}

// SoftDelete はスタッフを論理削除します。
func (r *StaffRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, softDeleteSQL("staff"), id, at)
	if err != nil {
		return translatePgError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

// FindByID は ID でスタッフを取得します。
func (r *StaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+staffColumns+`
          FROM staff
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanStaff(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// FindByEmail は削除済みを除いたスタッフをメールアドレスで取得します。
func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+staffColumns+`
          FROM staff
         WHERE lower(email) = lower($1)
           AND record_status <> 'deleted'
         LIMIT 1
    `, email)

	found, err := scanStaff(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// List はスタッフを作成順に一覧します。
func (r *StaffRepository) List(ctx context.Context, filter staff.ListStaffFilter) ([]*staff.Staff, string, error) {
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
	if filter.TeamID != "" {
		where.add("team_id = ?", filter.TeamID)
	}
	limitPlaceholder := where.placeholder(filter.Limit + 1)
	offsetPlaceholder := where.placeholder(filter.Offset)

	query := `
        SELECT ` + staffColumns + `
          FROM staff` + where.clause() + `
         ORDER BY created_at, id
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	members, err := r.query(ctx, query, where.args...)
	if err != nil {
		return nil, "", err
	}
	members, next := record.NextPageToken(members, record.Page{Limit: filter.Limit, Offset: filter.Offset})
	return members, next, nil
}

// ListActive は有効なスタッフを返します。TeamID を指定するとそのチームに絞り込みます。
func (r *StaffRepository) ListActive(ctx context.Context, filter staff.ActiveStaffFilter) ([]*staff.Staff, error) {
	where := whereBuilder{conditions: []string{"record_status = 'active'"}}
	if filter.TeamID != "" {
		where.add("team_id = ?", filter.TeamID)
	}
	return r.query(ctx, `
        SELECT `+staffColumns+`
          FROM staff`+where.clause()+`
         ORDER BY created_at, id
    `, where.args...)
}

// CountActiveNonAdmin は管理者種別以外の有効なスタッフ数を返します。
func (r *StaffRepository) CountActiveNonAdmin(ctx context.Context) (int, error) {
	return countRows(ctx, pgdb.QueryerFromContext(ctx, r.pool), `
        SELECT count(*)
          FROM staff s
          JOIN staff_types t ON t.id = s.staff_type_id
         WHERE s.record_status = 'active'
           AND lower(t.name) <> lower($1)
    `, identity.AdminStaffTypeName)
}

func (r *StaffRepository) query(ctx context.Context, query string, args ...any) ([]*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	defer rows.Close()

	var members []*staff.Staff
	for rows.Next() {
		found, err := scanStaff(rows)
		if err != nil {
			return nil, translatePgError(err, nil)
		}
		members = append(members, found)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err, nil)
	}
	return members, nil
}

func scanStaff(row pgx.Row) (*staff.Staff, error) {
	var (
		s      staff.Staff
		status string
	)

	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.TeamID, &s.StaffTypeID, &s.ShiftTimeID,
		&s.ActivationCode, &s.ResetToken, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, err
	}
	s.Status = record.Status(status)
	return &s, nil
}
