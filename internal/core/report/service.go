package report

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/timer"
)

// Service は作業ログの集計と表示用の整形を行います。
type Service struct {
	logs     LogReader
	staff    Staff
	dir      Directory
	projects Projects
	clock    record.Clock
	loc      *time.Location
}

// UseCase はレポートユースケースの公開インターフェースです。
type UseCase interface {
	DashboardSnapshot(ctx context.Context) (*Dashboard, error)
	MyLogs(ctx context.Context, staffID string) ([]*LogEntry, error)
	AllLogs(ctx context.Context) ([]*LogEntry, error)
	DailyTotals(ctx context.Context, in DailyTotalsInput) ([]*DailyTotal, error)
}

// NewService は Service を生成します。loc は「今日」と日別集計の基準となるタイムゾーンです。
func NewService(logs LogReader, staff Staff, dir Directory, projects Projects, clock record.Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = record.SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{logs: logs, staff: staff, dir: dir, projects: projects, clock: clock, loc: loc}
}

// DailyTotalsInput は日別集計の入力です。StaffID が空なら全スタッフを集計します。
type DailyTotalsInput struct {
	StaffID string
	From    time.Time
	To      time.Time
}

// DashboardSnapshot は有効なスタッフ・クライアント・プロジェクト数と当日のログ状況を返します。
func (s *Service) DashboardSnapshot(ctx context.Context) (*Dashboard, error) {
	midnight := s.startOfDay(s.clock.Now())

	var (
		d   Dashboard
		err error
	)
	if d.TotalStaff, err = s.staff.CountActiveNonAdmin(ctx); err != nil {
		return nil, err
	}
	if d.Clients, err = s.dir.CountActive(ctx, directory.CollectionClients); err != nil {
		return nil, err
	}
	if d.Projects, err = s.projects.CountActiveProjects(ctx); err != nil {
		return nil, err
	}
	if d.LogsToday, err = s.logs.CountCreatedSince(ctx, midnight); err != nil {
		return nil, err
	}
	if d.ActiveToday, err = s.logs.CountDistinctStaffSince(ctx, midnight); err != nil {
		return nil, err
	}
	return &d, nil
}

// MyLogs はスタッフ自身の作業ログを新しい順に返します。
func (s *Service) MyLogs(ctx context.Context, staffID string) ([]*LogEntry, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return nil, record.ErrInvalidID
	}
	logs, err := s.logs.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, logs)
}

// AllLogs は全スタッフの作業ログを新しい順に返します。管理者のみ実行できます。
func (s *Service) AllLogs(ctx context.Context) ([]*LogEntry, error) {
	if _, err := identity.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, logs)
}

// DailyTotals はスタッフと日付ごとに作業時間を合計します。日付は開始時刻で判定します。
func (s *Service) DailyTotals(ctx context.Context, in DailyTotalsInput) ([]*DailyTotal, error) {
	if !in.To.After(in.From) {
		return nil, ErrInvalidRange
	}

	logs, err := s.logs.ListRange(ctx, RangeFilter{
		StaffID: strings.TrimSpace(in.StaffID),
		From:    in.From,
		To:      in.To,
	})
	if err != nil {
		return nil, err
	}

	type key struct{ staffID, date string }
	totals := make(map[key]*DailyTotal)
	for _, l := range logs {
		k := key{staffID: l.StaffID, date: l.StartTime.In(s.loc).Format(time.DateOnly)}
		t, ok := totals[k]
		if !ok {
			t = &DailyTotal{StaffID: k.staffID, Date: k.date}
			totals[k] = t
		}
		t.TotalSeconds += l.DurationSeconds
		t.Entries++
	}

	out := make([]*DailyTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StaffID < out[j].StaffID
	})
	return out, nil
}

func (s *Service) startOfDay(now time.Time) time.Time {
	local := now.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Service) enrich(ctx context.Context, logs []*timer.TimeLog) ([]*LogEntry, error) {
	names := make(nameCache)
	out := make([]*LogEntry, 0, len(logs))
	for _, l := range logs {
		staffName, err := names.get("staff", l.StaffID, func() (string, error) {
			st, err := s.staff.GetStaff(ctx, l.StaffID)
			if err != nil {
				return "", err
			}
			return st.Name, nil
		})
		if err != nil {
			return nil, err
		}
		clientName, err := names.get("client", l.ClientID, func() (string, error) {
			return s.entryName(ctx, directory.CollectionClients, l.ClientID)
		})
		if err != nil {
			return nil, err
		}
		projectName, err := names.get("project", l.ProjectID, func() (string, error) {
			p, err := s.projects.GetProject(ctx, l.ProjectID)
			if err != nil {
				return "", err
			}
			return p.Name, nil
		})
		if err != nil {
			return nil, err
		}
		taskName, err := names.get("task", l.TaskID, func() (string, error) {
			return s.entryName(ctx, directory.CollectionTasks, l.TaskID)
		})
		if err != nil {
			return nil, err
		}

		out = append(out, &LogEntry{
			TimeLog:     *l,
			StaffName:   staffName,
			ClientName:  clientName,
			ProjectName: projectName,
			TaskName:    taskName,
		})
	}
	return out, nil
}

func (s *Service) entryName(ctx context.Context, collection directory.Collection, id string) (string, error) {
	e, err := s.dir.GetEntry(ctx, directory.EntryRef{Collection: collection, ID: id})
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

type nameCache map[string]string

// get は解決済みの名前を再利用します。ID が空または解決できない場合は NotAvailable です。
func (n nameCache) get(kind, id string, resolve func() (string, error)) (string, error) {
	if id == "" {
		return NotAvailable, nil
	}
	key := kind + "/" + id
	if name, ok := n[key]; ok {
		return name, nil
	}
	name, err := resolve()
	if err != nil {
		if !errors.Is(err, record.ErrNotFound) {
			return "", err
		}
		name = NotAvailable
	}
	n[key] = name
	return name, nil
}
