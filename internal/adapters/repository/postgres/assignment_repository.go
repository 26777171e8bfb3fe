package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/record"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

const (
	staffAssignmentColumns = `id, project_id, staff_id, assigned_at, record_status, created_at, updated_at`
	taskAssignmentColumns  = `id, project_id, task_id, record_status, created_at, updated_at`
)

// AssignmentRepository は PostgreSQL を利用した割り当てレコードの永続化実装です。
// 有効な組の一意性は部分一意インデックスで保証します。
type AssignmentRepository struct {
	pool pgdb.Queryer
}

// NewAssignmentRepository は AssignmentRepository を生成します。
func NewAssignmentRepository(pool pgdb.Queryer) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// InsertStaff はスタッフ割り当てを追加します。有効な割り当てが既にあれば false を返します。
func (r *AssignmentRepository) InsertStaff(ctx context.Context, a *assignment.StaffAssignment) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var id string
	err := exec.QueryRow(ctx, `
        INSERT INTO project_staff_assignments (project_id, staff_id, assigned_at, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (project_id, staff_id) WHERE record_status = 'active' DO NOTHING
        RETURNING id
    `, a.ProjectID, a.StaffID, a.AssignedAt, string(a.Status), a.CreatedAt, a.UpdatedAt).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translatePgError(err, nil)
	}
	a.ID = id
	return true, nil
}

// InsertTask はタスク割り当てを追加します。有効な割り当てが既にあれば ErrDuplicateAssignment を返します。
func (r *AssignmentRepository) InsertTask(ctx context.Context, a *assignment.TaskAssignment) (*assignment.TaskAssignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO project_task_assignments (project_id, task_id, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+taskAssignmentColumns+`
    `, a.ProjectID, a.TaskID, string(a.Status), a.CreatedAt, a.UpdatedAt)

	created, err := scanTaskAssignment(row)
	if err != nil {
		return nil, translatePgError(err, assignment.ErrDuplicateAssignment)
	}
	return created, nil
}

// DeactivateStaff は有効なスタッフ割り当てを無効化します。該当がなくても成功です。
func (r *AssignmentRepository) DeactivateStaff(ctx context.Context, projectID, staffID string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        UPDATE project_staff_assignments
           SET record_status = 'inactive',
               updated_at = $3
         WHERE project_id = $1
           AND staff_id = $2
           AND record_status = 'active'
    `, projectID, staffID, at)
	return translatePgError(err, nil)
}

// DeactivateTask は有効なタスク割り当てを無効化します。該当がなくても成功です。
func (r *AssignmentRepository) DeactivateTask(ctx context.Context, projectID, taskID string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        UPDATE project_task_assignments
           SET record_status = 'inactive',
               updated_at = $3
         WHERE project_id = $1
           AND task_id = $2
           AND record_status = 'active'
    `, projectID, taskID, at)
	return translatePgError(err, nil)
}

// ListActiveStaff はプロジェクトの有効なスタッフ割り当てを返します。
func (r *AssignmentRepository) ListActiveStaff(ctx context.Context, projectID string) ([]*assignment.StaffAssignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+staffAssignmentColumns+`
          FROM project_staff_assignments
         WHERE project_id = $1
           AND record_status = 'active'
         ORDER BY assigned_at, id
    `, projectID)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	defer rows.Close()

	var out []*assignment.StaffAssignment
	for rows.Next() {
		a, err := scanStaffAssignment(rows)
		if err != nil {
			return nil, translatePgError(err, nil)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err, nil)
	}
	return out, nil
}

// ListActiveTasks はプロジェクトの有効なタスク割り当てを返します。
func (r *AssignmentRepository) ListActiveTasks(ctx context.Context, projectID string) ([]*assignment.TaskAssignment, error) {
	return r.queryTasks(ctx, `
        SELECT `+taskAssignmentColumns+`
          FROM project_task_assignments
         WHERE project_id = $1
           AND record_status = 'active'
         ORDER BY created_at, id
    `, projectID)
}

// ListActiveTasksForStaff はスタッフが有効に割り当てられたプロジェクトのタスク割り当てを返します。
// 無効化または削除されたプロジェクトのタスクは含みません。
func (r *AssignmentRepository) ListActiveTasksForStaff(ctx context.Context, staffID string) ([]*assignment.TaskAssignment, error) {
	return r.queryTasks(ctx, `
        SELECT t.id, t.project_id, t.task_id, t.record_status, t.created_at, t.updated_at
          FROM project_task_assignments t
          JOIN project_staff_assignments s
            ON s.project_id = t.project_id
           AND s.record_status = 'active'
          JOIN projects p
            ON p.id = t.project_id
           AND p.record_status = 'active'
         WHERE s.staff_id = $1
           AND t.record_status = 'active'
         ORDER BY t.project_id, t.created_at, t.id
    `, staffID)
}

// HasActiveStaff はスタッフの有効な割り当てがあるかを返します。
func (r *AssignmentRepository) HasActiveStaff(ctx context.Context, projectID, staffID string) (bool, error) {
	return r.exists(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM project_staff_assignments
             WHERE project_id = $1 AND staff_id = $2 AND record_status = 'active'
        )
    `, projectID, staffID)
}

// HasActiveTask はタスクの有効な割り当てがあるかを返します。
func (r *AssignmentRepository) HasActiveTask(ctx context.Context, projectID, taskID string) (bool, error) {
	return r.exists(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM project_task_assignments
             WHERE project_id = $1 AND task_id = $2 AND record_status = 'active'
        )
    `, projectID, taskID)
}

func (r *AssignmentRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var ok bool
	if err := exec.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, translatePgError(err, nil)
	}
	return ok, nil
}

func (r *AssignmentRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*assignment.TaskAssignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	defer rows.Close()

	var out []*assignment.TaskAssignment
	for rows.Next() {
		a, err := scanTaskAssignment(rows)
		if err != nil {
			return nil, translatePgError(err, nil)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err, nil)
	}
	return out, nil
}

func scanStaffAssignment(row pgx.Row) (*assignment.StaffAssignment, error) {
	var (
		a      assignment.StaffAssignment
		status string
	)
	if err := row.Scan(&a.ID, &a.ProjectID, &a.StaffID, &a.AssignedAt, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = record.Status(status)
	return &a, nil
}

func scanTaskAssignment(row pgx.Row) (*assignment.TaskAssignment, error) {
	var (
		a      assignment.TaskAssignment
		status string
	)
	if err := row.Scan(&a.ID, &a.ProjectID, &a.TaskID, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = record.Status(status)
	return &a, nil
}
