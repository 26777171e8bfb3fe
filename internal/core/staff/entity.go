package staff

import "github.com/ogurasousui/timetrack/internal/core/record"

// Staff はスタッフを表すエンティティです。
// パスワードはハッシュのみを保持し、登録直後は inactive で作成されます。
type Staff struct {
	record.Meta
	Name           string
	Email          string
	PasswordHash   string
	TeamID         string
	StaffTypeID    string
	ShiftTimeID    string
	ActivationCode string
	ResetToken     string
}
