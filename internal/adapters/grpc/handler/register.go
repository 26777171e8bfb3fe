package handler

import (
	"google.golang.org/grpc"

	directorypb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/directory/v1"
	projectpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/project/v1"
	reportpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/report/v1"
	staffpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/staff/v1"
	timerpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/timer/v1"
)

// Handlers はサーバーに登録するハンドラ一式です。nil のものは登録しません。
type Handlers struct {
	Directory directorypb.DirectoryServiceServer
	Staff     staffpb.StaffServiceServer
	Project   projectpb.ProjectServiceServer
	Timer     timerpb.TimerServiceServer
	Report    reportpb.ReportServiceServer
}

// Register はハンドラを gRPC サーバーに登録します。
func Register(s grpc.ServiceRegistrar, h Handlers) {
	if h.Directory != nil {
		directorypb.RegisterDirectoryServiceServer(s, h.Directory)
	}
	if h.Staff != nil {
		staffpb.RegisterStaffServiceServer(s, h.Staff)
	}
	if h.Project != nil {
		projectpb.RegisterProjectServiceServer(s, h.Project)
	}
	if h.Timer != nil {
		timerpb.RegisterTimerServiceServer(s, h.Timer)
	}
	if h.Report != nil {
		reportpb.RegisterReportServiceServer(s, h.Report)
	}
}

// DefaultAccessPolicy は認証不要のメソッドと管理者専用のメソッドを定義します。
// ディレクトリ・シフト・プロジェクトの参照は全スタッフに許可し、変更は管理者に限定します。
func DefaultAccessPolicy() AccessPolicy {
	public := []string{
		staffpb.StaffService_Register_FullMethodName,
		staffpb.StaffService_Activate_FullMethodName,
		staffpb.StaffService_RequestPasswordReset_FullMethodName,
		staffpb.StaffService_ResetPassword_FullMethodName,
		staffpb.StaffService_Authenticate_FullMethodName,
	}
	adminOnly := []string{
		directorypb.DirectoryService_CreateEntry_FullMethodName,
		directorypb.DirectoryService_UpdateEntry_FullMethodName,
		directorypb.DirectoryService_RemoveEntry_FullMethodName,
		directorypb.DirectoryService_CreateShiftTime_FullMethodName,
		directorypb.DirectoryService_UpdateShiftTime_FullMethodName,
		directorypb.DirectoryService_RemoveShiftTime_FullMethodName,
		staffpb.StaffService_UpdateStaff_FullMethodName,
		staffpb.StaffService_RemoveStaff_FullMethodName,
		staffpb.StaffService_ListStaff_FullMethodName,
		projectpb.ProjectService_CreateProject_FullMethodName,
		projectpb.ProjectService_UpdateProject_FullMethodName,
		projectpb.ProjectService_RemoveProject_FullMethodName,
		projectpb.ProjectService_AssignStaff_FullMethodName,
		projectpb.ProjectService_ReplaceStaff_FullMethodName,
		projectpb.ProjectService_UnassignStaff_FullMethodName,
		projectpb.ProjectService_AssignTask_FullMethodName,
		projectpb.ProjectService_UnassignTask_FullMethodName,
		projectpb.ProjectService_ListStaffAssignments_FullMethodName,
		reportpb.ReportService_Dashboard_FullMethodName,
		reportpb.ReportService_AllLogs_FullMethodName,
	}

	policy := AccessPolicy{Public: make(map[string]bool), AdminOnly: make(map[string]bool)}
	for _, m := range public {
		policy.Public[m] = true
	}
	for _, m := range adminOnly {
		policy.AdminOnly[m] = true
	}
	return policy
}
