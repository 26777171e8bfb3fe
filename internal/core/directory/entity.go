package directory

import "github.com/ogurasousui/timetrack/internal/core/record"

// Collection は名前付きディレクトリの種類です。
type Collection string

const (
	CollectionClients    Collection = "clients"
	CollectionTeams      Collection = "teams"
	CollectionStaffTypes Collection = "staffTypes"
	CollectionTasks      Collection = "tasks"
)

// Valid は既知のコレクションかどうかを返します。
func (c Collection) Valid() bool {
	switch c {
	case CollectionClients, CollectionTeams, CollectionStaffTypes, CollectionTasks:
		return true
	default:
		return false
	}
}

// TaskKind はタスクの種類です。
type TaskKind string

const (
	TaskKindWork  TaskKind = "Work"
	TaskKindBreak TaskKind = "Break"
)

// Entry はクライアント・チーム・スタッフ種別・タスクを表す名前付きレコードです。
// TaskKind はタスクの場合のみ設定されます。
type Entry struct {
	record.Meta
	Collection Collection
	Name       string
	TaskKind   TaskKind
}

// ShiftKind はシフトの種類です。
type ShiftKind string

const (
	ShiftKindFixed    ShiftKind = "Fixed"
	ShiftKindFlexible ShiftKind = "Flexible"
)

// Weekday はシフトの適用曜日です。
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

var weekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ShiftTime は勤務シフトです。固定シフトの時間項目は FromTime/ToTime から常に再計算されます。
type ShiftTime struct {
	record.Meta
	Name           string
	Kind           ShiftKind
	FromTime       string
	ToTime         string
	ApplicableDays []Weekday
	WorkHours      float64
	BreakHours     float64
	TotalHours     float64
	MinHours       string
}
