package assignment

import (
	"context"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/staff"
)

// ProjectRepository はプロジェクトの永続化を行うインターフェースです。
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, p *Project) (*Project, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	FindByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]*Project, string, error)
	CountActive(ctx context.Context) (int, error)
}

// ListProjectsFilter はプロジェクト一覧の検索条件です。
type ListProjectsFilter struct {
	Status   record.Status
	ClientID string
	Limit    int
	Offset   int
}

// Repository は割り当てレコードの永続化を行うインターフェースです。
// 同じ組の有効な割り当てはストア側の一意制約で高々 1 件に保たれます。
type Repository interface {
	// InsertStaff は有効な割り当てが既にあれば何もせず false を返します。挿入した場合は a.ID を設定します。
	InsertStaff(ctx context.Context, a *StaffAssignment) (bool, error)
	// InsertTask は有効な割り当てが既にあれば ErrDuplicateAssignment を返します。
	InsertTask(ctx context.Context, a *TaskAssignment) (*TaskAssignment, error)
	DeactivateStaff(ctx context.Context, projectID, staffID string, at time.Time) error
	DeactivateTask(ctx context.Context, projectID, taskID string, at time.Time) error
	ListActiveStaff(ctx context.Context, projectID string) ([]*StaffAssignment, error)
	ListActiveTasks(ctx context.Context, projectID string) ([]*TaskAssignment, error)
	// ListActiveTasksForStaff はスタッフが有効に割り当てられたプロジェクトのタスク割り当てを返します。
	ListActiveTasksForStaff(ctx context.Context, staffID string) ([]*TaskAssignment, error)
	HasActiveStaff(ctx context.Context, projectID, staffID string) (bool, error)
	HasActiveTask(ctx context.Context, projectID, taskID string) (bool, error)
}

// Roster はスタッフ名簿への問い合わせです。
type Roster interface {
	ActiveStaffIDs(ctx context.Context, teamID string) ([]string, error)
	GetStaff(ctx context.Context, id string) (*staff.Staff, error)
}

// Directory はクライアント・チーム・タスクへの問い合わせです。
type Directory interface {
	IsActive(ctx context.Context, collection directory.Collection, id string) (bool, error)
	GetEntry(ctx context.Context, in directory.EntryRef) (*directory.Entry, error)
}
