package record

import (
	"context"
	"strings"
	"time"
)

// Status はレコードのライフサイクル状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeleted  Status = "deleted"
)

// Valid は既知のステータスかどうかを返します。
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeleted:
		return true
	default:
		return false
	}
}

// Meta はすべてのエンティティが共有する共通項目です。
type Meta struct {
	ID        string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMeta は作成直後のメタ情報を返します。ID はストア側で採番されます。
func NewMeta(now time.Time) Meta {
	return Meta{Status: StatusActive, CreatedAt: now, UpdatedAt: now}
}

// IsActive は選択可能なレコードかどうかを返します。
func (m Meta) IsActive() bool {
	return m.Status == StatusActive
}

// Touch は更新日時を記録します。
func (m *Meta) Touch(now time.Time) {
	m.UpdatedAt = now
}

// SoftDeleter は論理削除を行うリポジトリの共通契約です。
// 既に削除済みのレコードに対する呼び出しは成功として扱い、存在しない ID には NotFound 系のエラーを返します。
type SoftDeleter interface {
	SoftDelete(ctx context.Context, id string, at time.Time) error
}

// Remove は ID を検証したうえで論理削除を委譲します。
func Remove(ctx context.Context, d SoftDeleter, id string, now time.Time) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ErrInvalidID
	}
	return d.SoftDelete(ctx, trimmed, now)
}

// NormalizeName は名前の前後空白を除去し、空であれば false を返します。
func NormalizeName(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, trimmed != ""
}

// SameName は大文字小文字を区別せずに名前を比較します。
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
