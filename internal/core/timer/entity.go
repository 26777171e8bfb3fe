package timer

import "time"

// Session は計測中のタイマーです。スタッフごとに高々 1 件です。
type Session struct {
	ID        string
	StaffID   string
	StartedAt time.Time
}

// TimeLog は停止したタイマーから作られる作業ログです。作成後は変更されません。
type TimeLog struct {
	ID              string
	StaffID         string
	ClientID        string
	ProjectID       string
	TaskID          string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
	CreatedAt       time.Time
}

// Running は計測中のセッションと参考表示用の経過秒数です。
type Running struct {
	Session        *Session
	ElapsedSeconds int64
}
