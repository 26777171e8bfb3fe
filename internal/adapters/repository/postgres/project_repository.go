package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/record"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

const projectColumns = `id, name, client_id, record_status, created_at, updated_at`

// ProjectRepository は PostgreSQL を利用したプロジェクトの永続化実装です。
type ProjectRepository struct {
	pool pgdb.Queryer
}

// NewProjectRepository は ProjectRepository を生成します。
func NewProjectRepository(pool pgdb.Queryer) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create はプロジェクトを新規作成します。ClientID が空の場合は NULL で保存します。
func (r *ProjectRepository) Create(ctx context.Context, p *assignment.Project) (*assignment.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO projects (name, client_id, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+projectColumns+`
    `, p.Name, nullableString(p.ClientID), string(p.Status), p.CreatedAt, p.UpdatedAt)

	created, err := scanProject(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return created, nil
}

// Update はプロジェクトを更新します。
func (r *ProjectRepository) Update(ctx context.Context, p *assignment.Project) (*assignment.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE projects
           SET name = $1,
               client_id = $2,
               record_status = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+projectColumns+`
    `, p.Name, nullableString(p.ClientID), string(p.Status), p.UpdatedAt, p.ID)

	updated, err := scanProject(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return updated, nil
}

// SoftDelete はプロジェクトを論理削除します。
func (r *ProjectRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, softDeleteSQL("projects"), id, at)
	if err != nil {
		return translatePgError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrProjectNotFound
	}
	return nil
}

// FindByID は ID でプロジェクトを取得します。
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*assignment.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+projectColumns+`
          FROM projects
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanProject(row)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// List はプロジェクトを作成順に一覧します。
func (r *ProjectRepository) List(ctx context.Context, filter assignment.ListProjectsFilter) ([]*assignment.Project, string, error) {
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
	if filter.ClientID != "" {
		where.add("client_id = ?", filter.ClientID)
	}
	limitPlaceholder := where.placeholder(filter.Limit + 1)
	offsetPlaceholder := where.placeholder(filter.Offset)

	query := `
        SELECT ` + projectColumns + `
          FROM projects` + where.clause() + `
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

	var projects []*assignment.Project
	for rows.Next() {
		found, err := scanProject(rows)
		if err != nil {
			return nil, "", translatePgError(err, nil)
		}
		projects = append(projects, found)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translatePgError(err, nil)
	}

	projects, next := record.NextPageToken(projects, record.Page{Limit: filter.Limit, Offset: filter.Offset})
	return projects, next, nil
}

// CountActive は有効なプロジェクト数を返します。
func (r *ProjectRepository) CountActive(ctx context.Context) (int, error) {
	return countRows(ctx, pgdb.QueryerFromContext(ctx, r.pool), `SELECT count(*) FROM projects WHERE record_status = 'active'`)
}

func scanProject(row pgx.Row) (*assignment.Project, error) {
	var (
		p        assignment.Project
		clientID sql.NullString
		status   string
	)

	if err := row.Scan(&p.ID, &p.Name, &clientID, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrProjectNotFound
		}
		return nil, err
	}
	p.ClientID = clientID.String
	p.Status = record.Status(status)
	return &p, nil
}
