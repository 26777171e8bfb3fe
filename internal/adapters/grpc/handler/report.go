package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	reportpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/report/v1"
	timerpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/timer/v1"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/report"
)

// ReportGrpcHandler は ReportService の gRPC 実装です。
type ReportGrpcHandler struct {
	svc report.UseCase
	reportpb.UnimplementedReportServiceServer
}

// NewReportGrpcHandler は ReportGrpcHandler を生成します。
func NewReportGrpcHandler(svc report.UseCase) *ReportGrpcHandler {
	return &ReportGrpcHandler{svc: svc}
}

// Dashboard は管理者向けの集計値を返します。
func (h *ReportGrpcHandler) Dashboard(ctx context.Context, _ *emptypb.Empty) (*reportpb.Dashboard, error) {
	d, err := h.svc.DashboardSnapshot(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &reportpb.Dashboard{
		TotalStaff:  int32(d.TotalStaff),
		Clients:     int32(d.Clients),
		Projects:    int32(d.Projects),
		LogsToday:   int32(d.LogsToday),
		ActiveToday: int32(d.ActiveToday),
	}, nil
}

// MyLogs は呼び出し元の作業ログを返します。
func (h *ReportGrpcHandler) MyLogs(ctx context.Context, _ *emptypb.Empty) (*reportpb.ListLogsResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := h.svc.MyLogs(ctx, actor.StaffID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &reportpb.ListLogsResponse{Logs: toProtoTimeLogs(entries)}, nil
}

// AllLogs は全スタッフの作業ログを返します。
func (h *ReportGrpcHandler) AllLogs(ctx context.Context, _ *emptypb.Empty) (*reportpb.ListLogsResponse, error) {
	entries, err := h.svc.AllLogs(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &reportpb.ListLogsResponse{Logs: toProtoTimeLogs(entries)}, nil
}

// DailyTotals は日別の作業時間を返します。管理者以外は自分自身の集計のみ取得できます。
func (h *ReportGrpcHandler) DailyTotals(ctx context.Context, req *reportpb.DailyTotalsRequest) (*reportpb.DailyTotalsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.GetFrom() == nil || req.GetTo() == nil {
		return nil, toStatusError(report.ErrInvalidRange)
	}

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	staffID := req.GetStaffId()
	if !actor.IsAdmin() {
		if staffID != "" && staffID != actor.StaffID {
			return nil, toStatusError(identity.ErrForbidden)
		}
		staffID = actor.StaffID
	}

	totals, err := h.svc.DailyTotals(ctx, report.DailyTotalsInput{
		StaffID: staffID,
		From:    req.GetFrom().AsTime(),
		To:      req.GetTo().AsTime(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*reportpb.DailyTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, &reportpb.DailyTotal{
			StaffId:      t.StaffID,
			Date:         t.Date,
			TotalSeconds: t.TotalSeconds,
			Total:        report.FormatVerbose(t.TotalSeconds),
			Entries:      int32(t.Entries),
		})
	}
	return &reportpb.DailyTotalsResponse{Totals: out}, nil
}

func toProtoTimeLogs(entries []*report.LogEntry) []*timerpb.TimeLog {
	out := make([]*timerpb.TimeLog, 0, len(entries))
	for _, e := range entries {
		out = append(out, toProtoTimeLog(e))
	}
	return out
}
