package assignment

import (
	"time"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

// UnknownName は参照先を解決できなかった場合の表示名です。
const UnknownName = "Unknown"

// Project はプロジェクトを表すエンティティです。ClientID が空の場合はクライアントなしです。
type Project struct {
	record.Meta
	Name     string
	ClientID string
}

// StaffAssignment はプロジェクトとスタッフの割り当てレコードです。
type StaffAssignment struct {
	record.Meta
	ProjectID  string
	StaffID    string
	AssignedAt time.Time
}

// TaskAssignment はプロジェクトとタスクの割り当てレコードです。
type TaskAssignment struct {
	record.Meta
	ProjectID string
	TaskID    string
}

// StaffAssignmentView は表示名を付与したスタッフ割り当てです。
type StaffAssignmentView struct {
	StaffAssignment
	ProjectName string
	StaffName   string
}

// TaskAssignmentView は表示名を付与したタスク割り当てです。
type TaskAssignmentView struct {
	TaskAssignment
	ProjectName string
	TaskName    string
}
