package server

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ogurasousui/timetrack/internal/adapters/grpc/handler"
	"github.com/ogurasousui/timetrack/internal/adapters/identity"
	repo "github.com/ogurasousui/timetrack/internal/adapters/repository/postgres"
	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/report"
	"github.com/ogurasousui/timetrack/internal/core/staff"
	"github.com/ogurasousui/timetrack/internal/core/timer"
	"github.com/ogurasousui/timetrack/internal/platform/config"
	pg "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
)

// Services はサーバーが公開するユースケース一式です。
type Services struct {
	Directory  *directory.Service
	Staff      *staff.Service
	Assignment *assignment.Service
	Timer      *timer.Service
	Report     *report.Service
}

// NewServices は PostgreSQL のリポジトリを用いてユースケースを組み立てます。
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	clock := record.SystemClock{}
	tx := pg.NewTransactionManager(pool)

	dir := directory.NewService(repo.NewDirectoryRepository(pool), repo.NewShiftRepository(pool), clock, tx)
	staffSvc := staff.NewService(
		repo.NewStaffRepository(pool),
		dir,
		identity.NewBcryptHasher(cfg.Identity.BcryptCost),
		identity.NewLinkNotifier(cfg.Identity.BaseURL, logger),
		clock,
		tx,
	)
	projects := repo.NewProjectRepository(pool)
	assignments := assignment.NewService(projects, repo.NewAssignmentRepository(pool), staffSvc, dir, clock, tx, tx)
	logs := repo.NewTimeLogRepository(pool)

	return &Services{
		Directory:  dir,
		Staff:      staffSvc,
		Assignment: assignments,
		Timer:      timer.NewService(repo.NewSessionRepository(pool), logs, assignments, clock, tx),
		Report:     report.NewService(logs, staffSvc, dir, assignments, clock, cfg.Report.Location),
	}
}

// Handlers はユースケースを gRPC ハンドラに変換します。
func (s *Services) Handlers() handler.Handlers {
	return handler.Handlers{
		Directory: handler.NewDirectoryGrpcHandler(s.Directory),
		Staff:     handler.NewStaffGrpcHandler(s.Staff),
		Project:   handler.NewProjectGrpcHandler(s.Assignment),
		Timer:     handler.NewTimerGrpcHandler(s.Timer),
		Report:    handler.NewReportGrpcHandler(s.Report),
	}
}
