package handler

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	projectpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/project/v1"
	reportpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/report/v1"
	staffpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/staff/v1"
	timerpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/timer/v1"
	"github.com/ogurasousui/timetrack/internal/platform/logging"
)

func dialTestServer(t *testing.T, h Handlers, resolver ActorResolver) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(logging.Discard()),
		AuthInterceptor(resolver, DefaultAccessPolicy()),
	))
	Register(srv, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func asStaff(id string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), StaffIDHeader, id)
}

func TestRoundTrip_TimerRequiresCaller(t *testing.T) {
	t.Parallel()

	timers := &stubTimerUseCase{}
	staffStub := newStaffStub()
	conn := dialTestServer(t, Handlers{Timer: NewTimerGrpcHandler(timers), Staff: NewStaffGrpcHandler(staffStub)}, staffStub)
	client := timerpb.NewTimerServiceClient(conn)

	_, err := client.Start(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.Start(asStaff("ghost"), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	session, err := client.Start(asStaff("s1"), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "s1", session.GetStaffId())
	assert.Equal(t, "sess-1", session.GetId())

	log, err := client.Stop(asStaff("s1"), &timerpb.StopRequest{ProjectId: "p1", TaskId: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "01:02:05", log.GetDuration())
	assert.Equal(t, "p1", timers.stopInput.ProjectID)
}

func TestRoundTrip_PublicAndAdminOnly(t *testing.T) {
	t.Parallel()

	staffStub := newStaffStub()
	conn := dialTestServer(t, Handlers{Staff: NewStaffGrpcHandler(staffStub), Report: NewReportGrpcHandler(&stubReportUseCase{})}, staffStub)

	auth, err := staffpb.NewStaffServiceClient(conn).Authenticate(context.Background(),
		&staffpb.AuthenticateRequest{Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "staff", auth.GetRole())
	assert.Equal(t, "s1", auth.GetStaff().GetId())

	reports := reportpb.NewReportServiceClient(conn)
	_, err = reports.Dashboard(asStaff("s1"), &emptypb.Empty{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	dashboard, err := reports.Dashboard(asStaff("admin"), &emptypb.Empty{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, dashboard.GetTotalStaff())
	assert.EqualValues(t, 2, dashboard.GetActiveToday())
}

func TestRoundTrip_UnregisteredService(t *testing.T) {
	t.Parallel()

	staffStub := newStaffStub()
	conn := dialTestServer(t, Handlers{Staff: NewStaffGrpcHandler(staffStub)}, staffStub)

	_, err := projectpb.NewProjectServiceClient(conn).ListMyTaskAssignments(asStaff("s1"), &emptypb.Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestDefaultAccessPolicy(t *testing.T) {
	t.Parallel()

	policy := DefaultAccessPolicy()
	assert.True(t, policy.Public[staffpb.StaffService_Register_FullMethodName])
	assert.False(t, policy.Public[timerpb.TimerService_Start_FullMethodName])
	assert.True(t, policy.AdminOnly[projectpb.ProjectService_CreateProject_FullMethodName])
	assert.False(t, policy.AdminOnly[projectpb.ProjectService_ListMyTaskAssignments_FullMethodName])
	assert.False(t, policy.AdminOnly[reportpb.ReportService_DailyTotals_FullMethodName])
}
