package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

var directoryTables = map[directory.Collection]string{
	directory.CollectionClients:    "clients",
	directory.CollectionTeams:      "teams",
	directory.CollectionStaffTypes: "staff_types",
	directory.CollectionTasks:      "tasks",
}

// DirectoryRepository は PostgreSQL を利用した名前付きディレクトリの永続化実装です。
type DirectoryRepository struct {
	pool pgdb.Queryer
}

// NewDirectoryRepository は DirectoryRepository を生成します。
func NewDirectoryRepository(pool pgdb.Queryer) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

func directoryTable(collection directory.Collection) (string, error) {
	table, ok := directoryTables[collection]
	if !ok {
		return "", directory.ErrInvalidCollection
	}
	return table, nil
}

// kind 列を持つのは tasks のみです。
func directoryColumns(collection directory.Collection) string {
	if collection == directory.CollectionTasks {
		return "id, name, kind, record_status, created_at, updated_at"
	}
	return "id, name, NULL::text AS kind, record_status, created_at, updated_at"
}

// Create はエントリを新規作成します。
func (r *DirectoryRepository) Create(ctx context.Context, e *directory.Entry) (*directory.Entry, error) {
	table, err := directoryTable(e.Collection)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var row pgx.Row
	if e.Collection == directory.CollectionTasks {
		row = exec.QueryRow(ctx, `
        INSERT INTO tasks (name, kind, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+directoryColumns(e.Collection)+`
    `, e.Name, string(e.TaskKind), string(e.Status), e.CreatedAt, e.UpdatedAt)
	} else {
		row = exec.QueryRow(ctx, `
        INSERT INTO `+table+` (name, record_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING `+directoryColumns(e.Collection)+`
    `, e.Name, string(e.Status), e.CreatedAt, e.UpdatedAt)
	}

	created, err := scanEntry(row, e.Collection)
	if err != nil {
		return nil, translatePgError(err, directory.ErrDuplicateName)
	}
	return created, nil
}

// Update はエントリの名前・種類・状態を更新します。
func (r *DirectoryRepository) Update(ctx context.Context, e *directory.Entry) (*directory.Entry, error) {
	table, err := directoryTable(e.Collection)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var row pgx.Row
	if e.Collection == directory.CollectionTasks {
		row = exec.QueryRow(ctx, `
        UPDATE tasks
           SET name = $1,
               kind = $2,
               record_status = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+directoryColumns(e.Collection)+`
    `, e.Name, string(e.TaskKind), string(e.Status), e.UpdatedAt, e.ID)
	} else {
		row = exec.QueryRow(ctx, `
        UPDATE `+table+`
           SET name = $1,
               record_status = $2,
               updated_at = $3
         WHERE id = $4
        RETURNING `+directoryColumns(e.Collection)+`
    `, e.Name, string(e.Status), e.UpdatedAt, e.ID)
	}

	updated, err := scanEntry(row, e.Collection)
	if err != nil {
		return nil, translatePgError(err, directory.ErrDuplicateName)
	}
	return updated, nil
}

// SoftDelete はエントリを論理削除します。削除済みであれば更新日時は変更しません。
func (r *DirectoryRepository) SoftDelete(ctx context.Context, collection directory.Collection, id string, at time.Time) error {
	table, err := directoryTable(collection)
	if err != nil {
		return err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, softDeleteSQL(table), id, at)
	if err != nil {
		return translatePgError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return directory.ErrEntryNotFound
	}
	return nil
}

// FindByID は ID でエントリを取得します。削除済みも返却します。
func (r *DirectoryRepository) FindByID(ctx context.Context, collection directory.Collection, id string) (*directory.Entry, error) {
	table, err := directoryTable(collection)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+directoryColumns(collection)+`
          FROM `+table+`
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanEntry(row, collection)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// FindActiveByName は大文字小文字を区別せずに有効なエントリを取得します。
func (r *DirectoryRepository) FindActiveByName(ctx context.Context, collection directory.Collection, name string) (*directory.Entry, error) {
	table, err := directoryTable(collection)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+directoryColumns(collection)+`
          FROM `+table+`
         WHERE lower(name) = lower($1)
           AND record_status = 'active'
         LIMIT 1
    `, name)

	found, err := scanEntry(row, collection)
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return found, nil
}

// List はエントリを作成順に一覧します。
func (r *DirectoryRepository) List(ctx context.Context, filter directory.ListEntriesFilter) ([]*directory.Entry, string, error) {
	table, err := directoryTable(filter.Collection)
	if err != nil {
		return nil, "", err
	}
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
        SELECT ` + directoryColumns(filter.Collection) + `
          FROM ` + table + where.clause() + `
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

	var entries []*directory.Entry
	for rows.Next() {
		found, err := scanEntry(rows, filter.Collection)
		if err != nil {
			return nil, "", translatePgError(err, nil)
		}
		entries = append(entries, found)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translatePgError(err, nil)
	}

	entries, next := record.NextPageToken(entries, record.Page{Limit: filter.Limit, Offset: filter.Offset})
	return entries, next, nil
}

// CountActive は有効なエントリ数を返します。
func (r *DirectoryRepository) CountActive(ctx context.Context, collection directory.Collection) (int, error) {
	table, err := directoryTable(collection)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, pgdb.QueryerFromContext(ctx, r.pool), `SELECT count(*) FROM `+table+` WHERE record_status = 'active'`)
}

func scanEntry(row pgx.Row, collection directory.Collection) (*directory.Entry, error) {
	var (
		id, name, status     string
		kind                 sql.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &kind, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrEntryNotFound
		}
		return nil, err
	}

	return &directory.Entry{
		Meta: record.Meta{
			ID:        id,
			Status:    record.Status(status),
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
		Collection: collection,
		Name:       name,
		TaskKind:   directory.TaskKind(kind.String),
	}, nil
}

func softDeleteSQL(table string) string {
	return `
        UPDATE ` + table + `
           SET updated_at = CASE WHEN record_status = 'deleted' THEN updated_at ELSE $2 END,
               record_status = 'deleted'
         WHERE id = $1
    `
}

func countRows(ctx context.Context, exec pgdb.Queryer, query string, args ...any) (int, error) {
	var n int64
	if err := exec.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, translatePgError(err, nil)
	}
	return int(n), nil
}
