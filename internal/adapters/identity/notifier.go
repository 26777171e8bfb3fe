package identity

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
)

// LinkNotifier はアクティベーションとパスワード再設定のリンクを生成し、構造化ログへ出力します。
// 配送 (メール送信など) は行いません。
type LinkNotifier struct {
	baseURL string
	logger  *slog.Logger
}

// NewLinkNotifier は LinkNotifier を生成します。
func NewLinkNotifier(baseURL string, logger *slog.Logger) *LinkNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkNotifier{baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// ActivationLink はアクティベーション用の URL を返します。
func (n *LinkNotifier) ActivationLink(staffID, code string) string {
	return n.baseURL + "/activate/" + url.PathEscape(staffID) + "/" + url.PathEscape(code)
}

// ResetLink はパスワード再設定用の URL を返します。
func (n *LinkNotifier) ResetLink(staffID, token string) string {
	return n.baseURL + "/reset-password/" + url.PathEscape(staffID) + "/" + url.PathEscape(token)
}

// SendActivationLink はアクティベーションリンクを記録します。
func (n *LinkNotifier) SendActivationLink(ctx context.Context, staffID, code string) error {
	n.logger.InfoContext(ctx, "activation link issued",
		slog.String("staff_id", staffID),
		slog.String("link", n.ActivationLink(staffID, code)),
	)
	return nil
}

// SendPasswordResetLink はパスワード再設定リンクを記録します。
func (n *LinkNotifier) SendPasswordResetLink(ctx context.Context, staffID, token string) error {
	n.logger.InfoContext(ctx, "password reset link issued",
		slog.String("staff_id", staffID),
		slog.String("link", n.ResetLink(staffID, token)),
	)
	return nil
}
