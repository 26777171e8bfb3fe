package identity

import (
	"context"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

// Role は呼び出し元の役割です。
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// AdminStaffTypeName は管理者を表す予約済みスタッフ種別名です。
const AdminStaffTypeName = "Admin"

// ErrForbidden は管理者専用の操作を権限のない呼び出し元が実行した場合に返却されます。
var ErrForbidden = record.NewError(record.ErrUnauthorized, "identity: admin role required")

// ErrNoActor はコンテキストに呼び出し元が設定されていない場合に返却されます。
var ErrNoActor = record.NewError(record.ErrUnauthorized, "identity: caller is not identified")

// Actor は操作を実行する呼び出し元です。プロセス全体の状態ではなく、操作ごとに明示的に渡されます。
type Actor struct {
	StaffID string
	Role    Role
}

// IsAdmin は管理者かどうかを返します。
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RoleForStaffType はスタッフ種別名から役割を導出します。
func RoleForStaffType(name string) Role {
	if record.SameName(name, AdminStaffTypeName) {
		return RoleAdmin
	}
	return RoleStaff
}

type actorContextKey struct{}

// WithActor は呼び出し元をコンテキストに格納します。
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, a)
}

// FromContext はコンテキストから呼び出し元を取り出します。
func FromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	a, ok := ctx.Value(actorContextKey{}).(Actor)
	return a, ok
}

// RequireAdmin は呼び出し元が管理者であることを検証します。
func RequireAdmin(ctx context.Context) (Actor, error) {
	a, ok := FromContext(ctx)
	if !ok {
		return Actor{}, ErrNoActor
	}
	if !a.IsAdmin() {
		return Actor{}, ErrForbidden
	}
	return a, nil
}
