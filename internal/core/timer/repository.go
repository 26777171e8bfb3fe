package timer

import (
	"context"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/assignment"
)

// SessionRepository は計測中セッションの永続化を行うインターフェースです。
type SessionRepository interface {
	// Insert はスタッフのセッションが既にあれば ErrAlreadyRunning を返します。
	Insert(ctx context.Context, s *Session) error
	// Find はセッションがなければ ErrNotRunning を返します。
	Find(ctx context.Context, staffID string) (*Session, error)
	// Delete は開始時刻が一致するセッションのみ削除し、削除したかどうかを返します。
	Delete(ctx context.Context, staffID string, startedAt time.Time) (bool, error)
}

// LogRepository は作業ログの書き込みを行うインターフェースです。
type LogRepository interface {
	Insert(ctx context.Context, l *TimeLog) (*TimeLog, error)
}

// Assignments は割り当てグラフへの問い合わせです。
type Assignments interface {
	GetProject(ctx context.Context, id string) (*assignment.Project, error)
	IsStaffAssigned(ctx context.Context, projectID, staffID string) (bool, error)
	IsTaskAssigned(ctx context.Context, projectID, taskID string) (bool, error)
}
