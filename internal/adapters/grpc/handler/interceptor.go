package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/timetrack/internal/core/identity"
)

// StaffIDHeader は呼び出し元スタッフ ID を運ぶメタデータキーです。
const StaffIDHeader = "x-staff-id"

// ActorResolver はスタッフ ID から呼び出し元を解決します。
type ActorResolver interface {
	ResolveActor(ctx context.Context, staffID string) (identity.Actor, error)
}

// AccessPolicy はメソッドごとの認可要件です。キーはフルメソッド名です。
type AccessPolicy struct {
	Public    map[string]bool
	AdminOnly map[string]bool
}

// LoggingInterceptor は呼び出しごとにメソッドとステータスコード、所要時間を記録します。
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		started := time.Now()
		resp, err := next(ctx, req)

		code := status.Code(err)
		attrs := []slog.Attr{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(started)),
		}
		if staffID := staffIDFromMetadata(ctx); staffID != "" {
			attrs = append(attrs, slog.String("staff_id", staffID))
		}

		switch code {
		case codes.OK:
			logger.LogAttrs(ctx, slog.LevelInfo, "rpc completed", attrs...)
		case codes.Internal, codes.Unavailable, codes.Unknown:
			logger.LogAttrs(ctx, slog.LevelError, "rpc failed", append(attrs, slog.String("error", err.Error()))...)
		default:
			logger.LogAttrs(ctx, slog.LevelWarn, "rpc rejected", append(attrs, slog.String("error", status.Convert(err).Message()))...)
		}
		return resp, err
	}
}

// AuthInterceptor は x-staff-id から呼び出し元を解決してコンテキストに格納し、管理者専用メソッドを保護します。
// x-staff-id は署名されていないため、サーバーはログイン済みセッションを検証してヘッダーを付け直す
// 信頼できるフロントプロキシの背後にのみ配置してください。クライアントが付けたヘッダーはプロキシで破棄する前提です。
func AuthInterceptor(resolver ActorResolver, policy AccessPolicy) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if policy.Public[info.FullMethod] {
			return next(ctx, req)
		}

		staffID := staffIDFromMetadata(ctx)
		if staffID == "" {
			return nil, status.Error(codes.Unauthenticated, StaffIDHeader+" metadata is required")
		}

		actor, err := resolver.ResolveActor(ctx, staffID)
		if err != nil {
			return nil, toStatusError(err)
		}
		ctx = identity.WithActor(ctx, actor)

		if policy.AdminOnly[info.FullMethod] {
			if _, err := identity.RequireAdmin(ctx); err != nil {
				return nil, toStatusError(err)
			}
		}
		return next(ctx, req)
	}
}

func staffIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(StaffIDHeader)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// actorFrom はハンドラ内で呼び出し元を取り出します。
func actorFrom(ctx context.Context) (identity.Actor, error) {
	actor, ok := identity.FromContext(ctx)
	if !ok {
		return identity.Actor{}, toStatusError(identity.ErrNoActor)
	}
	return actor, nil
}
