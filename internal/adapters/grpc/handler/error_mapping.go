package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

// toStatusError はドメインエラーをその種別に応じた gRPC ステータスへ変換します。
func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	if errors.Is(err, identity.ErrNoActor) {
		return codes.Unauthenticated
	}
	switch record.KindOf(err) {
	case record.ErrValidation:
		return codes.InvalidArgument
	case record.ErrDuplicate:
		return codes.AlreadyExists
	case record.ErrNotFound:
		return codes.NotFound
	case record.ErrConflict:
		return codes.FailedPrecondition
	case record.ErrUnauthorized:
		return codes.PermissionDenied
	case record.ErrStore:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
