//go:build integration

package integration

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/report"
	"github.com/ogurasousui/timetrack/internal/core/staff"
	"github.com/ogurasousui/timetrack/internal/core/timer"
	"github.com/ogurasousui/timetrack/internal/platform/config"
	pg "github.com/ogurasousui/timetrack/internal/platform/db/postgres"
	"github.com/ogurasousui/timetrack/internal/platform/logging"
	"github.com/ogurasousui/timetrack/internal/platform/server"
)

const (
	migrationsDir = "../assets/migrations"
	seedsDir      = "../assets/seeds"
	password      = "Secret1!"
)

func startDatabase(t *testing.T) (*config.Config, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("timetrack"),
		tcpostgres.WithUsername("timetrack"),
		tcpostgres.WithPassword("timetrack"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     host,
			Port:     portNum,
			User:     "timetrack",
			Password: "timetrack",
			Name:     "timetrack",
			SSLMode:  "disable",
			Timezone: "UTC",
		},
		Report:   config.ReportConfig{Timezone: "UTC", Location: time.UTC},
		Identity: config.IdentityConfig{BcryptCost: 4, BaseURL: "http://localhost:8080"},
	}

	require.NoError(t, migrateUp("file://"+migrationsDir, cfg.Database.DSN()))
	require.NoError(t, migrateUp("file://"+seedsDir, cfg.Database.DSN()+"&x-migrations-table=seed_migrations"))

	pool, err := pg.NewPool(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return cfg, pool
}

func migrateUp(source, dsn string) error {
	m, err := migrate.New(source, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func activationCode(t *testing.T, pool *pgxpool.Pool, staffID string) string {
	t.Helper()
	var code string
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT activation_code FROM staff WHERE id = $1`, staffID).Scan(&code))
	return code
}

func TestTimeTrackingFlowIntegration(t *testing.T) {
	cfg, pool := startDatabase(t)
	svc := server.NewServices(cfg, pool, logging.Discard())
	ctx := context.Background()

	types, err := svc.Directory.ListEntries(ctx, directory.ListEntriesInput{Collection: directory.CollectionStaffTypes})
	require.NoError(t, err)
	require.Len(t, types.Entries, 1, "seeded admin staff type")
	adminType := types.Entries[0]

	devType, err := svc.Directory.CreateEntry(ctx, directory.CreateEntryInput{Collection: directory.CollectionStaffTypes, Name: "Developer"})
	require.NoError(t, err)
	team, err := svc.Directory.CreateEntry(ctx, directory.CreateEntryInput{Collection: directory.CollectionTeams, Name: "Platform"})
	require.NoError(t, err)
	client, err := svc.Directory.CreateEntry(ctx, directory.CreateEntryInput{Collection: directory.CollectionClients, Name: "Acme"})
	require.NoError(t, err)
	task, err := svc.Directory.CreateEntry(ctx, directory.CreateEntryInput{Collection: directory.CollectionTasks, Name: "Coding", TaskKind: directory.TaskKindWork})
	require.NoError(t, err)

	_, err = svc.Directory.CreateEntry(ctx, directory.CreateEntryInput{Collection: directory.CollectionClients, Name: "ACME"})
	require.ErrorIs(t, err, record.ErrDuplicate)

	shift, err := svc.Directory.CreateShiftTime(ctx, directory.ShiftTimeInput{
		Name:           "Day",
		Kind:           directory.ShiftKindFixed,
		FromTime:       "09:00",
		ToTime:         "18:00",
		ApplicableDays: []directory.Weekday{directory.Monday, directory.Tuesday},
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, shift.TotalHours)

	register := func(name, email, staffTypeID string) *staff.Staff {
		created, err := svc.Staff.Register(ctx, staff.RegisterInput{
			Name:        name,
			Email:       email,
			Password:    password,
			TeamID:      team.ID,
			StaffTypeID: staffTypeID,
			ShiftTimeID: shift.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, record.StatusInactive, created.Status)

		activated, err := svc.Staff.Activate(ctx, staff.ActivateInput{ID: created.ID, Code: activationCode(t, pool, created.ID)})
		require.NoError(t, err)
		assert.Equal(t, record.StatusActive, activated.Status)
		return activated
	}
	admin := register("Boss", "boss@example.com", adminType.ID)
	dev := register("Alice", "alice@example.com", devType.ID)

	_, err = svc.Staff.Register(ctx, staff.RegisterInput{
		Name: "Copy", Email: "ALICE@example.com", Password: password,
		TeamID: team.ID, StaffTypeID: devType.ID, ShiftTimeID: shift.ID,
	})
	require.ErrorIs(t, err, staff.ErrDuplicateEmail)

	authed, err := svc.Staff.Authenticate(ctx, "alice@example.com", password)
	require.NoError(t, err)
	assert.Equal(t, dev.ID, authed.ID)

	adminActor, err := svc.Staff.ResolveActor(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.RoleAdmin, adminActor.Role)

	created, err := svc.Assignment.CreateProject(ctx, assignment.CreateProjectInput{
		Name:     "Apollo",
		ClientID: client.ID,
		Strategy: assignment.TeamStaff{TeamID: team.ID},
	})
	require.NoError(t, err)
	assert.Len(t, created.Assignments, 2)
	project := created.Project

	_, err = svc.Assignment.AssignTask(ctx, project.ID, task.ID)
	require.NoError(t, err)
	_, err = svc.Assignment.AssignTask(ctx, project.ID, task.ID)
	require.ErrorIs(t, err, assignment.ErrDuplicateAssignment)

	mine, err := svc.Assignment.ListTaskAssignmentsForStaff(ctx, dev.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Coding", mine[0].TaskName)

	_, err = svc.Timer.Start(ctx, dev.ID)
	require.NoError(t, err)
	_, err = svc.Timer.Start(ctx, dev.ID)
	require.ErrorIs(t, err, timer.ErrAlreadyRunning)

	running, err := svc.Timer.Current(ctx, dev.ID)
	require.NoError(t, err)
	assert.Equal(t, dev.ID, running.Session.StaffID)

	log, err := svc.Timer.Stop(ctx, timer.StopInput{StaffID: dev.ID, ProjectID: project.ID, TaskID: task.ID})
	require.NoError(t, err)
	assert.Equal(t, client.ID, log.ClientID)
	assert.GreaterOrEqual(t, log.DurationSeconds, int64(0))

	_, err = svc.Timer.Current(ctx, dev.ID)
	require.ErrorIs(t, err, timer.ErrNotRunning)

	_, err = svc.Timer.Start(ctx, dev.ID)
	require.NoError(t, err)
	second, err := svc.Timer.Stop(ctx, timer.StopInput{StaffID: dev.ID, ProjectID: project.ID, TaskID: task.ID})
	require.NoError(t, err)
	require.NotEmpty(t, log.ID)
	assert.NotEqual(t, log.ID, second.ID)

	logs, err := svc.Report.MyLogs(ctx, dev.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "Alice", logs[0].StaffName)
	assert.Equal(t, "Acme", logs[0].ClientName)
	assert.Equal(t, "Apollo", logs[0].ProjectName)

	_, err = svc.Report.AllLogs(identity.WithActor(ctx, identity.Actor{StaffID: dev.ID, Role: identity.RoleStaff}))
	require.ErrorIs(t, err, identity.ErrForbidden)
	all, err := svc.Report.AllLogs(identity.WithActor(ctx, adminActor))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dashboard, err := svc.Report.DashboardSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, &report.Dashboard{TotalStaff: 1, Clients: 1, Projects: 1, LogsToday: 2, ActiveToday: 1}, dashboard)

	require.NoError(t, svc.Directory.RemoveEntry(ctx, directory.EntryRef{Collection: directory.CollectionClients, ID: client.ID}))
	afterRemoval, err := svc.Report.MyLogs(ctx, dev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", afterRemoval[0].ClientName, "deleted client keeps its name in history")
}
