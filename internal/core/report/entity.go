package report

import "github.com/ogurasousui/timetrack/internal/core/timer"

// NotAvailable は参照先を解決できなかった場合の表示名です。
const NotAvailable = "N/A"

// Dashboard は管理者向けの集計値です。
type Dashboard struct {
	TotalStaff  int
	Clients     int
	Projects    int
	LogsToday   int
	ActiveToday int
}

// LogEntry は表示名を付与した作業ログです。
type LogEntry struct {
	timer.TimeLog
	StaffName   string
	ClientName  string
	ProjectName string
	TaskName    string
}

// DailyTotal はスタッフと日付ごとの作業時間の合計です。Date は集計タイムゾーンでの YYYY-MM-DD です。
type DailyTotal struct {
	StaffID      string
	Date         string
	TotalSeconds int64
	Entries      int
}
