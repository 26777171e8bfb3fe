package record

import (
	"context"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

// SystemClock は UTC の現在時刻を返す Clock です。
type SystemClock struct{}

// Now は現在時刻を返します。
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// NoopTransactionManager はトランザクションを張らずに fn を実行します。
type NoopTransactionManager struct{}

// WithinReadOnly は fn をそのまま実行します。
func (NoopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// WithinReadWrite は fn をそのまま実行します。
func (NoopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Locker はトランザクション内でキー単位の排他を取得します。
type Locker interface {
	LockKey(ctx context.Context, key string) error
}

// NoopLocker は排他を取得しない Locker です。
type NoopLocker struct{}

// LockKey は何もしません。
func (NoopLocker) LockKey(context.Context, string) error { return nil }
