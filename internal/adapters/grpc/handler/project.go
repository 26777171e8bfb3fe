package handler

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	projectpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/project/v1"
	"github.com/ogurasousui/timetrack/internal/core/assignment"
)

// 割り当て方法の指定値です。
const (
	strategyAll      = "all"
	strategyTeam     = "team"
	strategySelected = "selected"
)

// ProjectGrpcHandler は ProjectService の gRPC 実装です。
type ProjectGrpcHandler struct {
	svc assignment.UseCase
	projectpb.UnimplementedProjectServiceServer
}

// NewProjectGrpcHandler は ProjectGrpcHandler を生成します。
func NewProjectGrpcHandler(svc assignment.UseCase) *ProjectGrpcHandler {
	return &ProjectGrpcHandler{svc: svc}
}

// CreateProject はプロジェクトを作成し、指定された方法でスタッフを割り当てます。
func (h *ProjectGrpcHandler) CreateProject(ctx context.Context, req *projectpb.CreateProjectRequest) (*projectpb.CreateProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	strategy, err := toStrategy(req.GetStrategy())
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := h.svc.CreateProject(ctx, assignment.CreateProjectInput{
		Name:     req.GetName(),
		ClientID: req.GetClientId(),
		Strategy: strategy,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &projectpb.CreateProjectResponse{
		Project:     toProtoProject(result.Project),
		Assignments: toProtoStaffAssignments(result.Assignments),
	}, nil
}

// UpdateProject はプロジェクトを更新します。
func (h *ProjectGrpcHandler) UpdateProject(ctx context.Context, req *projectpb.UpdateProjectRequest) (*projectpb.Project, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateProject(ctx, assignment.UpdateProjectInput{
		ID:       req.GetId(),
		Name:     optionalString(req.GetName()),
		ClientID: optionalString(req.GetClientId()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoProject(updated), nil
}

// RemoveProject はプロジェクトを論理削除します。
func (h *ProjectGrpcHandler) RemoveProject(ctx context.Context, req *projectpb.ProjectRef) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.RemoveProject(ctx, req.GetId()); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// GetProject はプロジェクトを取得します。
func (h *ProjectGrpcHandler) GetProject(ctx context.Context, req *projectpb.ProjectRef) (*projectpb.Project, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetProject(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoProject(found), nil
}

// ListProjects はプロジェクトを一覧します。
func (h *ProjectGrpcHandler) ListProjects(ctx context.Context, req *projectpb.ListProjectsRequest) (*projectpb.ListProjectsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListProjects(ctx, assignment.ListProjectsInput{
		Status:    toStatusFilter(req.GetStatus()),
		ClientID:  req.GetClientId(),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	projects := make([]*projectpb.Project, 0, len(result.Projects))
	for _, p := range result.Projects {
		projects = append(projects, toProtoProject(p))
	}
	return &projectpb.ListProjectsResponse{Projects: projects, NextPageToken: result.NextPageToken}, nil
}

// AssignStaff はスタッフを追加で割り当てます。
func (h *ProjectGrpcHandler) AssignStaff(ctx context.Context, req *projectpb.StaffSelectionRequest) (*projectpb.AssignStaffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.AssignStaff(ctx, assignment.StaffSelectionInput{ProjectID: req.GetProjectId(), StaffIDs: req.GetStaffIds()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &projectpb.AssignStaffResponse{Added: toProtoStaffAssignments(result.Added), Skipped: result.Skipped}, nil
}

// ReplaceStaff は割り当てを指定されたスタッフの集合に置き換えます。
func (h *ProjectGrpcHandler) ReplaceStaff(ctx context.Context, req *projectpb.StaffSelectionRequest) (*projectpb.ReplaceStaffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ReplaceStaff(ctx, assignment.StaffSelectionInput{ProjectID: req.GetProjectId(), StaffIDs: req.GetStaffIds()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &projectpb.ReplaceStaffResponse{Added: toProtoStaffAssignments(result.Added), Removed: result.Removed}, nil
}

// UnassignStaff はスタッフの割り当てを解除します。
func (h *ProjectGrpcHandler) UnassignStaff(ctx context.Context, req *projectpb.StaffAssignmentRequest) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.UnassignStaff(ctx, req.GetProjectId(), req.GetStaffId()); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// AssignTask はタスクを割り当てます。
func (h *ProjectGrpcHandler) AssignTask(ctx context.Context, req *projectpb.TaskAssignmentRequest) (*projectpb.TaskAssignment, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.AssignTask(ctx, req.GetProjectId(), req.GetTaskId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoTaskAssignment(&assignment.TaskAssignmentView{TaskAssignment: *created}), nil
}

// UnassignTask はタスクの割り当てを解除します。
func (h *ProjectGrpcHandler) UnassignTask(ctx context.Context, req *projectpb.TaskAssignmentRequest) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.UnassignTask(ctx, req.GetProjectId(), req.GetTaskId()); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// ListStaffAssignments はプロジェクトのスタッフ割り当てを表示名付きで返します。
func (h *ProjectGrpcHandler) ListStaffAssignments(ctx context.Context, req *projectpb.ProjectRef) (*projectpb.ListStaffAssignmentsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	views, err := h.svc.ListStaffAssignments(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*projectpb.StaffAssignment, 0, len(views))
	for _, v := range views {
		a := toProtoStaffAssignment(&v.StaffAssignment)
		a.ProjectName = v.ProjectName
		a.StaffName = v.StaffName
		out = append(out, a)
	}
	return &projectpb.ListStaffAssignmentsResponse{Assignments: out}, nil
}

// ListTaskAssignments はプロジェクトのタスク割り当てを表示名付きで返します。
func (h *ProjectGrpcHandler) ListTaskAssignments(ctx context.Context, req *projectpb.ProjectRef) (*projectpb.ListTaskAssignmentsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	views, err := h.svc.ListTaskAssignments(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &projectpb.ListTaskAssignmentsResponse{Assignments: toProtoTaskAssignments(views)}, nil
}

// ListMyTaskAssignments は呼び出し元が割り当てられたプロジェクトのタスクを返します。
func (h *ProjectGrpcHandler) ListMyTaskAssignments(ctx context.Context, _ *emptypb.Empty) (*projectpb.ListTaskAssignmentsResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	views, err := h.svc.ListTaskAssignmentsForStaff(ctx, actor.StaffID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &projectpb.ListTaskAssignmentsResponse{Assignments: toProtoTaskAssignments(views)}, nil
}

// toStrategy は未指定の方針を不正として扱います。
func toStrategy(in *projectpb.StaffStrategy) (assignment.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(in.GetKind())) {
	case strategyAll:
		return assignment.AllStaff{}, nil
	case strategyTeam:
		return assignment.TeamStaff{TeamID: in.GetTeamId()}, nil
	case strategySelected:
		return assignment.SelectedStaff{StaffIDs: in.GetStaffIds()}, nil
	default:
		return nil, assignment.ErrInvalidStrategy
	}
}

func toProtoProject(p *assignment.Project) *projectpb.Project {
	if p == nil {
		return nil
	}
	return &projectpb.Project{
		Id:        p.ID,
		Name:      p.Name,
		ClientId:  p.ClientID,
		Status:    string(p.Status),
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
	}
}

func toProtoStaffAssignment(a *assignment.StaffAssignment) *projectpb.StaffAssignment {
	return &projectpb.StaffAssignment{
		Id:         a.ID,
		ProjectId:  a.ProjectID,
		StaffId:    a.StaffID,
		Status:     string(a.Status),
		AssignedAt: timestamppb.New(a.AssignedAt),
	}
}

func toProtoStaffAssignments(in []*assignment.StaffAssignment) []*projectpb.StaffAssignment {
	out := make([]*projectpb.StaffAssignment, 0, len(in))
	for _, a := range in {
		out = append(out, toProtoStaffAssignment(a))
	}
	return out
}

func toProtoTaskAssignment(v *assignment.TaskAssignmentView) *projectpb.TaskAssignment {
	return &projectpb.TaskAssignment{
		Id:          v.ID,
		ProjectId:   v.ProjectID,
		TaskId:      v.TaskID,
		ProjectName: v.ProjectName,
		TaskName:    v.TaskName,
		Status:      string(v.Status),
		CreatedAt:   timestamppb.New(v.CreatedAt),
	}
}

func toProtoTaskAssignments(views []*assignment.TaskAssignmentView) []*projectpb.TaskAssignment {
	out := make([]*projectpb.TaskAssignment, 0, len(views))
	for _, v := range views {
		out = append(out, toProtoTaskAssignment(v))
	}
	return out
}
