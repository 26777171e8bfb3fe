package record

import (
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Page は一覧取得時の正規化済みページ指定です。
type Page struct {
	Limit  int
	Offset int
}

// NewPage はページサイズとトークンを検証して Page を返します。
func NewPage(pageSize int, pageToken string) (Page, error) {
	limit, err := NormalizePageSize(pageSize)
	if err != nil {
		return Page{}, err
	}
	offset, err := ParsePageToken(pageToken)
	if err != nil {
		return Page{}, err
	}
	return Page{Limit: limit, Offset: offset}, nil
}

// NormalizePageSize は 0 以下を既定値に置き換え、上限超過を拒否します。
func NormalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return DefaultPageSize, nil
	}
	if pageSize > MaxPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

// ParsePageToken はオフセット形式のページトークンを解釈します。
func ParsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}

// NextPageToken は limit+1 件取得した結果から次ページのトークンを算出し、余分な要素を切り詰めます。
func NextPageToken[T any](items []T, page Page) ([]T, string) {
	if len(items) > page.Limit {
		return items[:page.Limit], strconv.Itoa(page.Offset + page.Limit)
	}
	return items, ""
}
