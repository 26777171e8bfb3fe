package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	directorypb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/directory/v1"
	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

// DirectoryGrpcHandler は DirectoryService の gRPC 実装です。
type DirectoryGrpcHandler struct {
	svc directory.UseCase
	directorypb.UnimplementedDirectoryServiceServer
}

// NewDirectoryGrpcHandler は DirectoryGrpcHandler を生成します。
func NewDirectoryGrpcHandler(svc directory.UseCase) *DirectoryGrpcHandler {
	return &DirectoryGrpcHandler{svc: svc}
}

// CreateEntry はディレクトリエントリを作成します。
func (h *DirectoryGrpcHandler) CreateEntry(ctx context.Context, req *directorypb.CreateEntryRequest) (*directorypb.Entry, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateEntry(ctx, directory.CreateEntryInput{
		Collection: directory.Collection(req.GetCollection()),
		Name:       req.GetName(),
		TaskKind:   directory.TaskKind(req.GetTaskKind()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEntry(created), nil
}

// UpdateEntry はディレクトリエントリを更新します。
func (h *DirectoryGrpcHandler) UpdateEntry(ctx context.Context, req *directorypb.UpdateEntryRequest) (*directorypb.Entry, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var kind *directory.TaskKind
	if req.GetTaskKind() != nil {
		value := directory.TaskKind(req.GetTaskKind().GetValue())
		kind = &value
	}

	updated, err := h.svc.UpdateEntry(ctx, directory.UpdateEntryInput{
		Collection: directory.Collection(req.GetCollection()),
		ID:         req.GetId(),
		Name:       optionalString(req.GetName()),
		TaskKind:   kind,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEntry(updated), nil
}

// RemoveEntry はディレクトリエントリを論理削除します。
func (h *DirectoryGrpcHandler) RemoveEntry(ctx context.Context, req *directorypb.EntryRef) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.RemoveEntry(ctx, toEntryRef(req)); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// GetEntry は削除済みを含めてエントリを取得します。
func (h *DirectoryGrpcHandler) GetEntry(ctx context.Context, req *directorypb.EntryRef) (*directorypb.Entry, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEntry(ctx, toEntryRef(req))
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEntry(found), nil
}

// ListEntries はエントリを一覧します。
func (h *DirectoryGrpcHandler) ListEntries(ctx context.Context, req *directorypb.ListEntriesRequest) (*directorypb.ListEntriesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListEntries(ctx, directory.ListEntriesInput{
		Collection: directory.Collection(req.GetCollection()),
		Status:     toStatusFilter(req.GetStatus()),
		PageSize:   int(req.GetPageSize()),
		PageToken:  req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	entries := make([]*directorypb.Entry, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, toProtoEntry(e))
	}
	return &directorypb.ListEntriesResponse{Entries: entries, NextPageToken: result.NextPageToken}, nil
}

// CreateShiftTime はシフトを作成します。
func (h *DirectoryGrpcHandler) CreateShiftTime(ctx context.Context, req *directorypb.ShiftTimeRequest) (*directorypb.ShiftTime, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateShiftTime(ctx, toShiftTimeInput(req))
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoShiftTime(created), nil
}

// UpdateShiftTime はシフトを更新します。
func (h *DirectoryGrpcHandler) UpdateShiftTime(ctx context.Context, req *directorypb.ShiftTimeRequest) (*directorypb.ShiftTime, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateShiftTime(ctx, directory.UpdateShiftTimeInput{ID: req.GetId(), ShiftTimeInput: toShiftTimeInput(req)})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoShiftTime(updated), nil
}

// RemoveShiftTime はシフトを論理削除します。
func (h *DirectoryGrpcHandler) RemoveShiftTime(ctx context.Context, req *directorypb.ShiftTimeRef) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.RemoveShiftTime(ctx, req.GetId()); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// GetShiftTime はシフトを取得します。
func (h *DirectoryGrpcHandler) GetShiftTime(ctx context.Context, req *directorypb.ShiftTimeRef) (*directorypb.ShiftTime, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetShiftTime(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoShiftTime(found), nil
}

// ListShiftTimes はシフトを一覧します。
func (h *DirectoryGrpcHandler) ListShiftTimes(ctx context.Context, req *directorypb.ListShiftTimesRequest) (*directorypb.ListShiftTimesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListShiftTimes(ctx, directory.ListShiftTimesInput{
		Status:    toStatusFilter(req.GetStatus()),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	shifts := make([]*directorypb.ShiftTime, 0, len(result.ShiftTimes))
	for _, s := range result.ShiftTimes {
		shifts = append(shifts, toProtoShiftTime(s))
	}
	return &directorypb.ListShiftTimesResponse{ShiftTimes: shifts, NextPageToken: result.NextPageToken}, nil
}

func toEntryRef(req *directorypb.EntryRef) directory.EntryRef {
	return directory.EntryRef{Collection: directory.Collection(req.GetCollection()), ID: req.GetId()}
}

func toShiftTimeInput(req *directorypb.ShiftTimeRequest) directory.ShiftTimeInput {
	days := make([]directory.Weekday, 0, len(req.GetApplicableDays()))
	for _, d := range req.GetApplicableDays() {
		days = append(days, directory.Weekday(d))
	}
	return directory.ShiftTimeInput{
		Name:           req.GetName(),
		Kind:           directory.ShiftKind(req.GetKind()),
		FromTime:       req.GetFromTime(),
		ToTime:         req.GetToTime(),
		ApplicableDays: days,
		MinHours:       req.GetMinHours(),
	}
}

// toStatusFilter は空文字を未指定として扱います。
func toStatusFilter(raw string) *record.Status {
	if raw == "" {
		return nil
	}
	s := record.Status(raw)
	return &s
}

// optionalString は未指定の wrapper を nil として扱います。
func optionalString(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	value := v.GetValue()
	return &value
}

func toProtoEntry(e *directory.Entry) *directorypb.Entry {
	if e == nil {
		return nil
	}
	return &directorypb.Entry{
		Id:         e.ID,
		Collection: string(e.Collection),
		Name:       e.Name,
		TaskKind:   string(e.TaskKind),
		Status:     string(e.Status),
		CreatedAt:  timestamppb.New(e.CreatedAt),
		UpdatedAt:  timestamppb.New(e.UpdatedAt),
	}
}

func toProtoShiftTime(s *directory.ShiftTime) *directorypb.ShiftTime {
	if s == nil {
		return nil
	}
	days := make([]string, 0, len(s.ApplicableDays))
	for _, d := range s.ApplicableDays {
		days = append(days, string(d))
	}
	return &directorypb.ShiftTime{
		Id:             s.ID,
		Name:           s.Name,
		Kind:           string(s.Kind),
		FromTime:       s.FromTime,
		ToTime:         s.ToTime,
		ApplicableDays: days,
		WorkHours:      s.WorkHours,
		BreakHours:     s.BreakHours,
		TotalHours:     s.TotalHours,
		MinHours:       s.MinHours,
		Status:         string(s.Status),
		CreatedAt:      timestamppb.New(s.CreatedAt),
		UpdatedAt:      timestamppb.New(s.UpdatedAt),
	}
}
