package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/timetrack/internal/core/timer"
	pgdb "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

// SessionRepository は計測中セッションを timer_sessions に保存します。
// staff_id が主キーのため、スタッフごとのセッションは高々 1 件です。
type SessionRepository struct {
	pool pgdb.Queryer
}

// NewSessionRepository は SessionRepository を生成します。
func NewSessionRepository(pool pgdb.Queryer) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Insert はセッションを開始します。既に計測中なら timer.ErrAlreadyRunning を返します。
func (r *SessionRepository) Insert(ctx context.Context, s *timer.Session) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO timer_sessions (staff_id, id, started_at)
        VALUES ($1, $2, $3)
    `, s.StaffID, s.ID, s.StartedAt)
	return translatePgError(err, timer.ErrAlreadyRunning)
}

// Find はスタッフの計測中セッションを取得します。
func (r *SessionRepository) Find(ctx context.Context, staffID string) (*timer.Session, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var s timer.Session
	err := exec.QueryRow(ctx, `
        SELECT id, staff_id, started_at
          FROM timer_sessions
         WHERE staff_id = $1
    `, staffID).Scan(&s.ID, &s.StaffID, &s.StartedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, timer.ErrNotRunning
	}
	if err != nil {
		return nil, translatePgError(err, nil)
	}
	return &s, nil
}

// Delete は開始時刻が一致するセッションのみ削除します。
func (r *SessionRepository) Delete(ctx context.Context, staffID string, startedAt time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        DELETE FROM timer_sessions
         WHERE staff_id = $1
           AND started_at = $2
    `, staffID, startedAt)
	if err != nil {
		return false, translatePgError(err, nil)
	}
	return tag.RowsAffected() == 1, nil
}
