package report

import "github.com/ogurasousui/timetrack/internal/core/record"

// ErrInvalidRange は集計期間の終了が開始以前の場合に返却されます。
var ErrInvalidRange = record.NewError(record.ErrValidation, "report: range end must be after start")
