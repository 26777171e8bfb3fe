package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	timerpb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/timer/v1"
	"github.com/ogurasousui/timetrack/internal/platform/config"
	"github.com/ogurasousui/timetrack/internal/platform/logging"
)

func TestServer_RejectsAnonymousAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Report:   config.ReportConfig{Location: time.UTC},
		Identity: config.IdentityConfig{BaseURL: "http://localhost:8080"},
	}
	srv := New("bufnet", NewServices(cfg, nil, logging.Discard()), logging.Discard())

	lis := bufconn.Listen(1024 * 1024)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	_, err = timerpb.NewTimerServiceClient(conn).Start(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
