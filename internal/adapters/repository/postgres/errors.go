package postgres

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// translatePgError は一意制約違反を duplicate に置き換え、ドメインエラー以外を ErrStore でラップします。
func translatePgError(err error, duplicate error) error {
	if err == nil {
		return nil
	}
	if duplicate != nil && isUniqueViolation(err) {
		return duplicate
	}
	if record.KindOf(err) != nil {
		return err
	}
	return record.StoreError(err)
}

// whereBuilder は $N プレースホルダ付きの WHERE 句を組み立てます。
type whereBuilder struct {
	args       []any
	conditions []string
}

func (w *whereBuilder) add(expr string, value any) {
	w.args = append(w.args, value)
	w.conditions = append(w.conditions, strings.ReplaceAll(expr, "?", "$"+strconv.Itoa(len(w.args))))
}

func (w *whereBuilder) placeholder(value any) string {
	w.args = append(w.args, value)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
