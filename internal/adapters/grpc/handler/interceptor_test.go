package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	projectpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/project/v1"
	staffpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/staff/v1"
	timerpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/timer/v1"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/platform/config"
	"github.com/ogurasousui/timetrack/internal/platform/logging"
)

func incoming(staffID string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(StaffIDHeader, staffID))
}

func TestAuthInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := AuthInterceptor(newStaffStub(), DefaultAccessPolicy())
	var seen identity.Actor
	next := func(ctx context.Context, _ any) (any, error) {
		seen, _ = identity.FromContext(ctx)
		return "ok", nil
	}
	info := func(method string) *grpc.UnaryServerInfo {
		return &grpc.UnaryServerInfo{FullMethod: method}
	}

	_, err := interceptor(context.Background(), nil, info(staffpb.StaffService_Register_FullMethodName), next)
	require.NoError(t, err)

	_, err = interceptor(context.Background(), nil, info(timerpb.TimerService_Start_FullMethodName), next)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = interceptor(incoming("s1"), nil, info(timerpb.TimerService_Start_FullMethodName), next)
	require.NoError(t, err)
	assert.Equal(t, identity.Actor{StaffID: "s1", Role: identity.RoleStaff}, seen)

	_, err = interceptor(incoming("s1"), nil, info(projectpb.ProjectService_CreateProject_FullMethodName), next)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = interceptor(incoming("admin"), nil, info(projectpb.ProjectService_CreateProject_FullMethodName), next)
	require.NoError(t, err)
	assert.True(t, seen.IsAdmin())
}

func TestLoggingInterceptor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, config.LogConfig{Level: "info", Format: "json"})
	interceptor := LoggingInterceptor(logger)
	info := &grpc.UnaryServerInfo{FullMethod: timerpb.TimerService_Stop_FullMethodName}

	_, err := interceptor(incoming("s1"), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.FailedPrecondition, "no session is running")
	})
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/timetrack.timer.v1.TimerService/Stop", entry["method"])
	assert.Equal(t, "FailedPrecondition", entry["code"])
	assert.Equal(t, "s1", entry["staff_id"])
	assert.Equal(t, "no session is running", entry["error"])
}
