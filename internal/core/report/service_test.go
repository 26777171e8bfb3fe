package report

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/assignment"
	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/staff"
	"github.com/ogurasousui/timetrack/internal/core/timer"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time { return s.now }

type fakeLogs struct {
	logs []*timer.TimeLog
}

func (r *fakeLogs) newestFirst(keep func(*timer.TimeLog) bool) []*timer.TimeLog {
	var out []*timer.TimeLog
	for _, l := range r.logs {
		if keep(l) {
			clone := *l
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out
}

func (r *fakeLogs) ListByStaff(_ context.Context, staffID string) ([]*timer.TimeLog, error) {
	return r.newestFirst(func(l *timer.TimeLog) bool { return l.StaffID == staffID }), nil
}

func (r *fakeLogs) ListAll(context.Context) ([]*timer.TimeLog, error) {
	return r.newestFirst(func(*timer.TimeLog) bool { return true }), nil
}

func (r *fakeLogs) ListRange(_ context.Context, filter RangeFilter) ([]*timer.TimeLog, error) {
	return r.newestFirst(func(l *timer.TimeLog) bool {
		return (filter.StaffID == "" || l.StaffID == filter.StaffID) &&
			!l.StartTime.Before(filter.From) && l.StartTime.Before(filter.To)
	}), nil
}

func (r *fakeLogs) CountCreatedSince(_ context.Context, since time.Time) (int, error) {
	n := 0
	for _, l := range r.logs {
		if !l.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeLogs) CountDistinctStaffSince(_ context.Context, since time.Time) (int, error) {
	seen := make(map[string]bool)
	for _, l := range r.logs {
		if !l.CreatedAt.Before(since) {
			seen[l.StaffID] = true
		}
	}
	return len(seen), nil
}

type fakeStaff struct {
	members    map[string]*staff.Staff
	adminTypes map[string]bool
}

func (f *fakeStaff) GetStaff(_ context.Context, id string) (*staff.Staff, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	out := *m
	return &out, nil
}

func (f *fakeStaff) CountActiveNonAdmin(context.Context) (int, error) {
	n := 0
	for _, m := range f.members {
		if m.IsActive() && !f.adminTypes[m.StaffTypeID] {
			n++
		}
	}
	return n, nil
}

type fakeDirectory struct {
	entries map[string]*directory.Entry
}

func (d *fakeDirectory) GetEntry(_ context.Context, in directory.EntryRef) (*directory.Entry, error) {
	e, ok := d.entries[in.ID]
	if !ok || e.Collection != in.Collection {
		return nil, directory.ErrEntryNotFound
	}
	out := *e
	return &out, nil
}

func (d *fakeDirectory) CountActive(_ context.Context, collection directory.Collection) (int, error) {
	n := 0
	for _, e := range d.entries {
		if e.Collection == collection && e.IsActive() {
			n++
		}
	}
	return n, nil
}

type fakeProjects struct {
	items map[string]*assignment.Project
}

func (f *fakeProjects) GetProject(_ context.Context, id string) (*assignment.Project, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, assignment.ErrProjectNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeProjects) CountActiveProjects(context.Context) (int, error) {
	n := 0
	for _, p := range f.items {
		if p.IsActive() {
			n++
		}
	}
	return n, nil
}

func meta(id string, status record.Status) record.Meta {
	return record.Meta{ID: id, Status: status}
}

type fixture struct {
	svc   *Service
	logs  *fakeLogs
	clock *stubClock
}

var tokyo = time.FixedZone("JST", 9*60*60)

func newFixture() *fixture {
	members := map[string]*staff.Staff{
		"admin": {Meta: meta("admin", record.StatusActive), Name: "Boss", StaffTypeID: "type-admin"},
		"gone":  {Meta: meta("gone", record.StatusDeleted), Name: "Former", StaffTypeID: "type-dev"},
	}
	for _, id := range []string{"s1", "s2", "s3", "s4", "s5"} {
		members[id] = &staff.Staff{Meta: meta(id, record.StatusActive), Name: "Staff " + id, StaffTypeID: "type-dev"}
	}

	f := &fixture{
		logs:  &fakeLogs{},
		clock: &stubClock{now: time.Date(2025, 4, 1, 15, 0, 0, 0, tokyo)},
	}
	f.svc = NewService(
		f.logs,
		&fakeStaff{members: members, adminTypes: map[string]bool{"type-admin": true}},
		&fakeDirectory{entries: map[string]*directory.Entry{
			"c1":    {Meta: meta("c1", record.StatusActive), Collection: directory.CollectionClients, Name: "Acme"},
			"c2":    {Meta: meta("c2", record.StatusDeleted), Collection: directory.CollectionClients, Name: "Globex"},
			"task1": {Meta: meta("task1", record.StatusDeleted), Collection: directory.CollectionTasks, Name: "Coding"},
		}},
		&fakeProjects{items: map[string]*assignment.Project{
			"p1": {Meta: meta("p1", record.StatusActive), Name: "Apollo", ClientID: "c1"},
			"p2": {Meta: meta("p2", record.StatusActive), Name: "Internal"},
		}},
		f.clock,
		tokyo,
	)
	return f
}

func (f *fixture) addLog(id, staffID, projectID, clientID string, start time.Time, seconds int64) {
	end := start.Add(time.Duration(seconds) * time.Second)
	f.logs.logs = append(f.logs.logs, &timer.TimeLog{
		ID:              id,
		StaffID:         staffID,
		ClientID:        clientID,
		ProjectID:       projectID,
		TaskID:          "task1",
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: seconds,
		CreatedAt:       end,
	})
}

func TestDashboardSnapshot(t *testing.T) {
	t.Parallel()
	f := newFixture()

	today := time.Date(2025, 4, 1, 9, 0, 0, 0, tokyo)
	f.addLog("l1", "s1", "p1", "c1", today, 600)
	f.addLog("l2", "s1", "p1", "c1", today.Add(time.Hour), 600)
	f.addLog("l3", "s2", "p2", "", today.Add(2*time.Hour), 300)
	// 現地時間の前日 23 時台は「今日」に含まれません。
	f.addLog("l4", "s3", "p1", "c1", time.Date(2025, 3, 31, 23, 0, 0, 0, tokyo), 120)

	got, err := f.svc.DashboardSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Dashboard{TotalStaff: 5, Clients: 1, Projects: 2, LogsToday: 3, ActiveToday: 2}
	if got == nil || *got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestMyLogs_NewestFirstWithNames(t *testing.T) {
	t.Parallel()
	f := newFixture()

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, tokyo)
	f.addLog("old", "s1", "p1", "c1", base, 60)
	f.addLog("new", "s1", "p2", "", base.Add(time.Hour), 90)
	f.addLog("other", "s2", "p1", "c1", base, 30)
	f.addLog("lost", "s1", "p-missing", "c-missing", base.Add(-time.Hour), 10)

	got, err := f.svc.MyLogs(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	if got[0].ID != "new" {
		t.Errorf("expected new, got %q", got[0].ID)
	}
	if got[0].ProjectName != "Internal" {
		t.Errorf("expected Internal, got %q", got[0].ProjectName)
	}
	if got[0].ClientName != NotAvailable {
		t.Errorf("expected %v, got %v", NotAvailable, got[0].ClientName)
	}

	if got[1].ID != "old" {
		t.Errorf("expected old, got %q", got[1].ID)
	}
	if got[1].ClientName != "Acme" {
		t.Errorf("expected Acme, got %q", got[1].ClientName)
	}
	if got[1].ProjectName != "Apollo" {
		t.Errorf("expected Apollo, got %q", got[1].ProjectName)
	}
	if got[1].TaskName != "Coding" {
		t.Errorf("deleted task keeps its name: expected Coding, got %q", got[1].TaskName)
	}

	if got[2].ID != "lost" {
		t.Errorf("expected lost, got %q", got[2].ID)
	}
	if got[2].ProjectName != NotAvailable {
		t.Errorf("expected %v, got %v", NotAvailable, got[2].ProjectName)
	}
	if got[2].ClientName != NotAvailable {
		t.Errorf("expected %v, got %v", NotAvailable, got[2].ClientName)
	}
}

func TestAllLogs_RequiresAdmin(t *testing.T) {
	t.Parallel()
	f := newFixture()

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, tokyo)
	f.addLog("l1", "s1", "p1", "c1", base, 60)
	f.addLog("l2", "gone", "p1", "c1", base.Add(time.Minute), 60)

	_, err := f.svc.AllLogs(context.Background())
	if !errors.Is(err, identity.ErrNoActor) {
		t.Fatalf("expected %v, got %v", identity.ErrNoActor, err)
	}

	staffCtx := identity.WithActor(context.Background(), identity.Actor{StaffID: "s1", Role: identity.RoleStaff})
	_, err = f.svc.AllLogs(staffCtx)
	if !errors.Is(err, identity.ErrForbidden) {
		t.Fatalf("expected %v, got %v", identity.ErrForbidden, err)
	}
	if !errors.Is(err, record.ErrUnauthorized) {
		t.Errorf("expected %v, got %v", record.ErrUnauthorized, err)
	}

	adminCtx := identity.WithActor(context.Background(), identity.Actor{StaffID: "admin", Role: identity.RoleAdmin})
	got, err := f.svc.AllLogs(adminCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].StaffName != "Former" {
		t.Errorf("expected Former, got %q", got[0].StaffName)
	}
	if got[1].StaffName != "Staff s1" {
		t.Errorf("expected Staff s1, got %q", got[1].StaffName)
	}
}

func TestDailyTotals(t *testing.T) {
	t.Parallel()
	f := newFixture()

	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, tokyo)
	day2 := day1.AddDate(0, 0, 1)
	f.addLog("a", "s1", "p1", "c1", day1, 3600)
	f.addLog("b", "s1", "p1", "c1", day1.Add(2*time.Hour), 1800)
	f.addLog("c", "s2", "p1", "c1", day1, 60)
	f.addLog("d", "s1", "p1", "c1", day2, 120)
	// UTC では 4/1 でも現地時間では 4/2 として集計されます。
	f.addLog("e", "s1", "p1", "c1", time.Date(2025, 4, 1, 16, 30, 0, 0, time.UTC), 30)

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, tokyo)
	to := from.AddDate(0, 0, 2)

	got, err := f.svc.DailyTotals(context.Background(), DailyTotalsInput{From: from, To: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []DailyTotal{
		{StaffID: "s1", Date: "2025-04-01", TotalSeconds: 5400, Entries: 2},
		{StaffID: "s2", Date: "2025-04-01", TotalSeconds: 60, Entries: 1},
		{StaffID: "s1", Date: "2025-04-02", TotalSeconds: 150, Entries: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d totals, got %d", len(want), len(got))
	}
	for i := range want {
		if *got[i] != want[i] {
			t.Errorf("total %d: expected %+v, got %+v", i, want[i], *got[i])
		}
	}

	mine, err := f.svc.DailyTotals(context.Background(), DailyTotalsInput{StaffID: "s2", From: from, To: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected one total for s2, got %d", len(mine))
	}

	_, err = f.svc.DailyTotals(context.Background(), DailyTotalsInput{From: to, To: from})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected %v, got %v", ErrInvalidRange, err)
	}
}
