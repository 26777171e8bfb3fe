package record

import (
	"errors"
	"fmt"
)

// エラー種別。各パッケージのセンチネルエラーはいずれかの種別をラップします。
var (
	// ErrValidation は入力不備 (利用者が修正可能) を表します。
	ErrValidation = errors.New("validation error")
	// ErrDuplicate は名前・メール・割り当ての重複を表します。
	ErrDuplicate = errors.New("duplicate")
	// ErrNotFound は参照先が存在しないことを表します。
	ErrNotFound = errors.New("not found")
	// ErrConflict は状態遷移の違反を表します。
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized は割り当てや権限の不一致を表します。
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStore はストア側の障害を表します。
	ErrStore = errors.New("store failure")
)

var (
	// ErrInvalidID は ID が空の場合に返却されます。
	ErrInvalidID = NewError(ErrValidation, "invalid id")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = NewError(ErrValidation, "invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = NewError(ErrValidation, "invalid page token")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = NewError(ErrValidation, "invalid status")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError は種別 kind に属するセンチネルエラーを生成します。
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// StoreError はドライバ由来のエラーを ErrStore 種別でラップします。
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}

// KindOf は err が属する種別を返します。該当しなければ nil です。
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrDuplicate, ErrNotFound, ErrConflict, ErrUnauthorized, ErrStore} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
