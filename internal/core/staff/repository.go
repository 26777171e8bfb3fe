package staff

import (
	"context"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

// Repository はスタッフの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, s *Staff) (*Staff, error)
	Update(ctx context.Context, s *Staff) (*Staff, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	FindByID(ctx context.Context, id string) (*Staff, error)
	// FindByEmail は削除済みを除いたスタッフを大文字小文字を区別せずに検索します。
	FindByEmail(ctx context.Context, email string) (*Staff, error)
	List(ctx context.Context, filter ListStaffFilter) ([]*Staff, string, error)
	ListActive(ctx context.Context, filter ActiveStaffFilter) ([]*Staff, error)
	// CountActiveNonAdmin は管理者種別以外の有効なスタッフ数を返します。
	CountActiveNonAdmin(ctx context.Context) (int, error)
}

// ListStaffFilter は一覧取得時の検索条件です。
type ListStaffFilter struct {
	Status record.Status
	TeamID string
	Limit  int
	Offset int
}

// ActiveStaffFilter は有効なスタッフを抽出する条件です。TeamID が空なら全チームが対象です。
type ActiveStaffFilter struct {
	TeamID string
}

// PasswordHasher は一方向かつソルト付きのパスワードハッシュを扱います。
type PasswordHasher interface {
	Hash(raw string) (string, error)
	// Compare は一致しない場合にエラーを返します。
	Compare(hash, raw string) error
}

// Notifier はアクティベーションとパスワード再設定のリンクを利用者へ伝えます。
type Notifier interface {
	SendActivationLink(ctx context.Context, staffID, code string) error
	SendPasswordResetLink(ctx context.Context, staffID, token string) error
}

// Directory はスタッフの参照先となるディレクトリへの問い合わせです。
type Directory interface {
	IsActive(ctx context.Context, collection directory.Collection, id string) (bool, error)
	IsActiveShift(ctx context.Context, id string) (bool, error)
	GetEntry(ctx context.Context, in directory.EntryRef) (*directory.Entry, error)
}
