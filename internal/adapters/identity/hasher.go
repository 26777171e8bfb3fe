package identity

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch はパスワードがハッシュと一致しない場合に返却されます。
var ErrPasswordMismatch = errors.New("identity: password mismatch")

// BcryptHasher は bcrypt によるパスワードハッシュを提供します。
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher は BcryptHasher を生成します。範囲外のコストは既定値に置き換えます。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash は raw をソルト付きでハッシュ化します。
func (h *BcryptHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("identity: hash password: %w", err)
	}
	return string(b), nil
}

// Compare は hash と raw が一致しなければ ErrPasswordMismatch を返します。
func (h *BcryptHasher) Compare(hash, raw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("identity: compare password: %w", err)
}
