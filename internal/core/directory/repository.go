package directory

import (
	"context"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

// Repository は名前付きディレクトリの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, entry *Entry) (*Entry, error)
	Update(ctx context.Context, entry *Entry) (*Entry, error)
	SoftDelete(ctx context.Context, collection Collection, id string, at time.Time) error
	FindByID(ctx context.Context, collection Collection, id string) (*Entry, error)
	// FindActiveByName は大文字小文字を区別せずに有効なレコードを検索します。
	FindActiveByName(ctx context.Context, collection Collection, name string) (*Entry, error)
	List(ctx context.Context, filter ListEntriesFilter) ([]*Entry, string, error)
	CountActive(ctx context.Context, collection Collection) (int, error)
}

// ListEntriesFilter は一覧取得時の検索条件です。
type ListEntriesFilter struct {
	Collection Collection
	Status     record.Status
	Limit      int
	Offset     int
}

// ShiftRepository はシフトの永続化を行うインターフェースです。
type ShiftRepository interface {
	Create(ctx context.Context, shift *ShiftTime) (*ShiftTime, error)
	Update(ctx context.Context, shift *ShiftTime) (*ShiftTime, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	FindByID(ctx context.Context, id string) (*ShiftTime, error)
	FindActiveByName(ctx context.Context, name string) (*ShiftTime, error)
	List(ctx context.Context, filter ListShiftsFilter) ([]*ShiftTime, string, error)
}

// ListShiftsFilter はシフト一覧の検索条件です。
type ListShiftsFilter struct {
	Status record.Status
	Limit  int
	Offset int
}
