package report

import (
	"context"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/staff"
	"github.com/ogurasousui/timetrack/internal/core/timer"
)

// LogReader は作業ログの読み出しを行うインターフェースです。一覧はすべて新しい順です。
type LogReader interface {
	ListByStaff(ctx context.Context, staffID string) ([]*timer.TimeLog, error)
	ListAll(ctx context.Context) ([]*timer.TimeLog, error)
	// ListRange は開始時刻が [From, To) に入るログを返します。StaffID が空なら全スタッフです。
	ListRange(ctx context.Context, filter RangeFilter) ([]*timer.TimeLog, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountDistinctStaffSince(ctx context.Context, since time.Time) (int, error)
}

// RangeFilter は期間指定のログ検索条件です。
type RangeFilter struct {
	StaffID string
	From    time.Time
	To      time.Time
}

// Staff はスタッフ名簿への問い合わせです。
type Staff interface {
	GetStaff(ctx context.Context, id string) (*staff.Staff, error)
	CountActiveNonAdmin(ctx context.Context) (int, error)
}

// Directory はクライアントとタスクへの問い合わせです。
type Directory interface {
	GetEntry(ctx context.Context, in directory.EntryRef) (*directory.Entry, error)
	CountActive(ctx context.Context, collection directory.Collection) (int, error)
}

// Projects はプロジェクトへの問い合わせです。
type Projects interface {
	GetProject(ctx context.Context, id string) (*assignment.Project, error)
	CountActiveProjects(ctx context.Context) (int, error)
}
