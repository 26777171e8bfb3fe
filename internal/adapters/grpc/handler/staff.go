package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	staffpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/staff/v1"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/staff"
)

// StaffGrpcHandler は StaffService の gRPC 実装です。
type StaffGrpcHandler struct {
	svc staff.UseCase
	staffpb.UnimplementedStaffServiceServer
}

// NewStaffGrpcHandler は StaffGrpcHandler を生成します。
func NewStaffGrpcHandler(svc staff.UseCase) *StaffGrpcHandler {
	return &StaffGrpcHandler{svc: svc}
}

// Register はスタッフを登録します。
func (h *StaffGrpcHandler) Register(ctx context.Context, req *staffpb.RegisterRequest) (*staffpb.Staff, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.Register(ctx, staff.RegisterInput{
		Name:        req.GetName(),
		Email:       req.GetEmail(),
		Password:    req.GetPassword(),
		TeamID:      req.GetTeamId(),
		StaffTypeID: req.GetStaffTypeId(),
		ShiftTimeID: req.GetShiftTimeId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoStaff(created), nil
}

// Activate はアクティベーションコードを検証してスタッフを有効化します。
func (h *StaffGrpcHandler) Activate(ctx context.Context, req *staffpb.ActivateRequest) (*staffpb.Staff, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	activated, err := h.svc.Activate(ctx, staff.ActivateInput{ID: req.GetId(), Code: req.GetCode()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoStaff(activated), nil
}

// RequestPasswordReset はパスワード再設定リンクを発行します。
func (h *StaffGrpcHandler) RequestPasswordReset(ctx context.Context, req *staffpb.RequestPasswordResetRequest) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.RequestPasswordReset(ctx, req.GetEmail()); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// ResetPassword はトークンを検証してパスワードを再設定します。
func (h *StaffGrpcHandler) ResetPassword(ctx context.Context, req *staffpb.ResetPasswordRequest) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	err := h.svc.ResetPassword(ctx, staff.ResetPasswordInput{ID: req.GetId(), Token: req.GetToken(), NewPassword: req.GetNewPassword()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// Authenticate はメールアドレスとパスワードを検証し、スタッフと役割を返します。
func (h *StaffGrpcHandler) Authenticate(ctx context.Context, req *staffpb.AuthenticateRequest) (*staffpb.AuthenticateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.Authenticate(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatusError(err)
	}
	actor, err := h.svc.ResolveActor(ctx, found.ID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffpb.AuthenticateResponse{Staff: toProtoStaff(found), Role: string(actor.Role)}, nil
}

// UpdateStaff はスタッフを更新します。
func (h *StaffGrpcHandler) UpdateStaff(ctx context.Context, req *staffpb.UpdateStaffRequest) (*staffpb.Staff, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateStaff(ctx, staff.UpdateStaffInput{
		ID:          req.GetId(),
		Name:        optionalString(req.GetName()),
		Email:       optionalString(req.GetEmail()),
		Password:    optionalString(req.GetPassword()),
		TeamID:      optionalString(req.GetTeamId()),
		StaffTypeID: optionalString(req.GetStaffTypeId()),
		ShiftTimeID: optionalString(req.GetShiftTimeId()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoStaff(updated), nil
}

// RemoveStaff はスタッフを論理削除します。
func (h *StaffGrpcHandler) RemoveStaff(ctx context.Context, req *staffpb.StaffRef) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.RemoveStaff(ctx, req.GetId()); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// GetStaff はスタッフを取得します。管理者以外は自分自身のみ参照できます。
func (h *StaffGrpcHandler) GetStaff(ctx context.Context, req *staffpb.StaffRef) (*staffpb.Staff, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.StaffID != req.GetId() {
		return nil, toStatusError(identity.ErrForbidden)
	}

	found, err := h.svc.GetStaff(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoStaff(found), nil
}

// ListStaff はスタッフを一覧します。
func (h *StaffGrpcHandler) ListStaff(ctx context.Context, req *staffpb.ListStaffRequest) (*staffpb.ListStaffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListStaff(ctx, staff.ListStaffInput{
		Status:    toStatusFilter(req.GetStatus()),
		TeamID:    req.GetTeamId(),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	members := make([]*staffpb.Staff, 0, len(result.Staff))
	for _, m := range result.Staff {
		members = append(members, toProtoStaff(m))
	}
	return &staffpb.ListStaffResponse{Staff: members, NextPageToken: result.NextPageToken}, nil
}

// toProtoStaff はパスワードハッシュやトークンを含めずに変換します。
func toProtoStaff(s *staff.Staff) *staffpb.Staff {
	if s == nil {
		return nil
	}
	return &staffpb.Staff{
		Id:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		TeamId:      s.TeamID,
		StaffTypeId: s.StaffTypeID,
		ShiftTimeId: s.ShiftTimeID,
		Status:      string(s.Status),
		CreatedAt:   timestamppb.New(s.CreatedAt),
		UpdatedAt:   timestamppb.New(s.UpdatedAt),
	}
}
