package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	reportpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/report/v1"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/report"
	"github.com/ogurasousui/timetrack/internal/core/timer"
)

type stubReportUseCase struct {
	myLogsFor   string
	totalsInput report.DailyTotalsInput
}

func (s *stubReportUseCase) DashboardSnapshot(context.Context) (*report.Dashboard, error) {
	return &report.Dashboard{TotalStaff: 3, Clients: 2, Projects: 1, LogsToday: 4, ActiveToday: 2}, nil
}

func (s *stubReportUseCase) MyLogs(_ context.Context, staffID string) ([]*report.LogEntry, error) {
	s.myLogsFor = staffID
	return []*report.LogEntry{{
		TimeLog:     timer.TimeLog{ID: "log-1", StaffID: staffID, DurationSeconds: 90},
		ClientName:  report.NotAvailable,
		ProjectName: "Apollo",
	}}, nil
}

func (s *stubReportUseCase) AllLogs(ctx context.Context) ([]*report.LogEntry, error) {
	if _, err := identity.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *stubReportUseCase) DailyTotals(_ context.Context, in report.DailyTotalsInput) ([]*report.DailyTotal, error) {
	s.totalsInput = in
	return []*report.DailyTotal{{StaffID: in.StaffID, Date: "2025-04-01", TotalSeconds: 5400, Entries: 2}}, nil
}

func TestReportGrpcHandler_MyLogs(t *testing.T) {
	t.Parallel()

	stub := &stubReportUseCase{}
	handler := NewReportGrpcHandler(stub)

	resp, err := handler.MyLogs(staffCtx("s1"), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("MyLogs returned error: %v", err)
	}
	if stub.myLogsFor != "s1" {
		t.Fatalf("expected logs for caller, got %q", stub.myLogsFor)
	}
	if len(resp.Logs) != 1 || resp.Logs[0].GetDuration() != "00:01:30" || resp.Logs[0].GetClientName() != "N/A" {
		t.Fatalf("unexpected response %+v", resp.Logs)
	}
}

func TestReportGrpcHandler_AllLogs_RequiresAdmin(t *testing.T) {
	t.Parallel()

	handler := NewReportGrpcHandler(&stubReportUseCase{})

	_, err := handler.AllLogs(staffCtx("s1"), &emptypb.Empty{})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}
}

func TestReportGrpcHandler_DailyTotals_ScopedToCaller(t *testing.T) {
	t.Parallel()

	stub := &stubReportUseCase{}
	handler := NewReportGrpcHandler(stub)
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	from := timestamppb.New(start)
	to := timestamppb.New(start.AddDate(0, 0, 1))

	resp, err := handler.DailyTotals(staffCtx("s1"), &reportpb.DailyTotalsRequest{From: from, To: to})
	if err != nil {
		t.Fatalf("DailyTotals returned error: %v", err)
	}
	if stub.totalsInput.StaffID != "s1" {
		t.Fatalf("expected totals scoped to caller, got %q", stub.totalsInput.StaffID)
	}
	if len(resp.Totals) != 1 || resp.Totals[0].GetTotal() != "1h 30m 0s" {
		t.Fatalf("unexpected response %+v", resp.Totals)
	}

	_, err = handler.DailyTotals(staffCtx("s1"), &reportpb.DailyTotalsRequest{StaffId: "s2", From: from, To: to})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}

	admin := identity.WithActor(context.Background(), identity.Actor{StaffID: "admin", Role: identity.RoleAdmin})
	if _, err := handler.DailyTotals(admin, &reportpb.DailyTotalsRequest{From: from, To: to}); err != nil {
		t.Fatalf("DailyTotals returned error: %v", err)
	}
	if stub.totalsInput.StaffID != "" {
		t.Fatalf("expected admin query across all staff, got %q", stub.totalsInput.StaffID)
	}
}

func TestReportGrpcHandler_DailyTotals_RequiresRange(t *testing.T) {
	t.Parallel()

	stub := &stubReportUseCase{}
	handler := NewReportGrpcHandler(stub)

	_, err := handler.DailyTotals(staffCtx("s1"), &reportpb.DailyTotalsRequest{From: timestamppb.Now()})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestReportGrpcHandler_Dashboard(t *testing.T) {
	t.Parallel()

	handler := NewReportGrpcHandler(&stubReportUseCase{})

	resp, err := handler.Dashboard(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if resp.GetTotalStaff() != 3 || resp.GetLogsToday() != 4 || resp.GetActiveToday() != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
}
