package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	timerpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/timer/v1"
	"github.com/ogurasousui/timetrack/internal/core/report"
	"github.com/ogurasousui/timetrack/internal/core/timer"
)

// TimerGrpcHandler は TimerService の gRPC 実装です。対象は常に呼び出し元のスタッフです。
type TimerGrpcHandler struct {
	svc timer.UseCase
	timerpb.UnimplementedTimerServiceServer
}

// NewTimerGrpcHandler は TimerGrpcHandler を生成します。
func NewTimerGrpcHandler(svc timer.UseCase) *TimerGrpcHandler {
	return &TimerGrpcHandler{svc: svc}
}

// Start は呼び出し元のタイマーを開始します。
func (h *TimerGrpcHandler) Start(ctx context.Context, _ *emptypb.Empty) (*timerpb.Session, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	session, err := h.svc.Start(ctx, actor.StaffID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoSession(session), nil
}

// Stop は呼び出し元のタイマーを停止し、作業ログを返します。
func (h *TimerGrpcHandler) Stop(ctx context.Context, req *timerpb.StopRequest) (*timerpb.TimeLog, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	log, err := h.svc.Stop(ctx, timer.StopInput{StaffID: actor.StaffID, ProjectID: req.GetProjectId(), TaskID: req.GetTaskId()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoTimeLog(&report.LogEntry{TimeLog: *log}), nil
}

// Current は計測中のセッションを返します。計測していなければ Running は false です。
func (h *TimerGrpcHandler) Current(ctx context.Context, _ *emptypb.Empty) (*timerpb.CurrentResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	running, err := h.svc.Current(ctx, actor.StaffID)
	if errors.Is(err, timer.ErrNotRunning) {
		return &timerpb.CurrentResponse{Running: false, Elapsed: report.FormatClock(0)}, nil
	}
	if err != nil {
		return nil, toStatusError(err)
	}
	return &timerpb.CurrentResponse{
		Running:        true,
		Session:        toProtoSession(running.Session),
		ElapsedSeconds: running.ElapsedSeconds,
		Elapsed:        report.FormatClock(running.ElapsedSeconds),
	}, nil
}

// Discard は作業ログを作らずにセッションを破棄します。
func (h *TimerGrpcHandler) Discard(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Discard(ctx, actor.StaffID); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

func toProtoSession(s *timer.Session) *timerpb.Session {
	if s == nil {
		return nil
	}
	return &timerpb.Session{Id: s.ID, StaffId: s.StaffID, StartedAt: timestamppb.New(s.StartedAt)}
}

// toProtoTimeLog は所要時間を HH:MM:SS 形式でも付与します。
func toProtoTimeLog(e *report.LogEntry) *timerpb.TimeLog {
	return &timerpb.TimeLog{
		Id:              e.ID,
		StaffId:         e.StaffID,
		ClientId:        e.ClientID,
		ProjectId:       e.ProjectID,
		TaskId:          e.TaskID,
		StartTime:       timestamppb.New(e.StartTime),
		EndTime:         timestamppb.New(e.EndTime),
		DurationSeconds: e.DurationSeconds,
		Duration:        report.FormatClock(e.DurationSeconds),
		StaffName:       e.StaffName,
		ClientName:      e.ClientName,
		ProjectName:     e.ProjectName,
		TaskName:        e.TaskName,
	}
}
