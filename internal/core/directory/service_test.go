package directory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEntryRepo struct {
	entries map[string]*Entry
	order   []string
	seq     int
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*Entry)}
}

func (r *fakeEntryRepo) Create(_ context.Context, e *Entry) (*Entry, error) {
	for _, existing := range r.entries {
		if existing.Collection == e.Collection && existing.IsActive() && strings.EqualFold(existing.Name, e.Name) {
			return nil, ErrDuplicateName
		}
	}
	r.seq++
	clone := *e
	clone.ID = fmt.Sprintf("%s-%d", e.Collection, r.seq)
	r.entries[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *Entry) (*Entry, error) {
	if _, ok := r.entries[e.ID]; !ok {
		return nil, ErrEntryNotFound
	}
	clone := *e
	r.entries[e.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeEntryRepo) SoftDelete(_ context.Context, collection Collection, id string, at time.Time) error {
	e, ok := r.entries[id]
	if !ok || e.Collection != collection {
		return ErrEntryNotFound
	}
	if e.Status == record.StatusDeleted {
		return nil
	}
	e.Status = record.StatusDeleted
	e.UpdatedAt = at
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, collection Collection, id string) (*Entry, error) {
	e, ok := r.entries[id]
	if !ok || e.Collection != collection {
		return nil, ErrEntryNotFound
	}
	out := *e
	return &out, nil
}

func (r *fakeEntryRepo) FindActiveByName(_ context.Context, collection Collection, name string) (*Entry, error) {
	for _, id := range r.order {
		e := r.entries[id]
		if e.Collection == collection && e.IsActive() && strings.EqualFold(e.Name, name) {
			out := *e
			return &out, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (r *fakeEntryRepo) List(_ context.Context, filter ListEntriesFilter) ([]*Entry, string, error) {
	var filtered []*Entry
	for _, id := range r.order {
		e := r.entries[id]
		if e.Collection != filter.Collection || e.Status != filter.Status {
			continue
		}
		out := *e
		filtered = append(filtered, &out)
	}
	if filter.Offset > len(filtered) {
		return []*Entry{}, "", nil
	}
	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	next := ""
	if end < len(filtered) {
		next = strconv.Itoa(end)
	}
	return filtered[filter.Offset:end], next, nil
}

func (r *fakeEntryRepo) CountActive(_ context.Context, collection Collection) (int, error) {
	n := 0
	for _, e := range r.entries {
		if e.Collection == collection && e.IsActive() {
			n++
		}
	}
	return n, nil
}

type fakeShiftRepo struct {
	shifts map[string]*ShiftTime
	order  []string
	seq    int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*ShiftTime)}
}

func (r *fakeShiftRepo) Create(_ context.Context, s *ShiftTime) (*ShiftTime, error) {
	r.seq++
	clone := *s
	clone.ID = "shift-" + strconv.Itoa(r.seq)
	r.shifts[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *fakeShiftRepo) Update(_ context.Context, s *ShiftTime) (*ShiftTime, error) {
	if _, ok := r.shifts[s.ID]; !ok {
		return nil, ErrShiftNotFound
	}
	clone := *s
	r.shifts[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeShiftRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	s, ok := r.shifts[id]
	if !ok {
		return ErrShiftNotFound
	}
	s.Status = record.StatusDeleted
	s.UpdatedAt = at
	return nil
}

func (r *fakeShiftRepo) FindByID(_ context.Context, id string) (*ShiftTime, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, ErrShiftNotFound
	}
	out := *s
	return &out, nil
}

func (r *fakeShiftRepo) FindActiveByName(_ context.Context, name string) (*ShiftTime, error) {
	for _, id := range r.order {
		s := r.shifts[id]
		if s.IsActive() && strings.EqualFold(s.Name, name) {
			out := *s
			return &out, nil
		}
	}
	return nil, ErrShiftNotFound
}

func (r *fakeShiftRepo) List(_ context.Context, filter ListShiftsFilter) ([]*ShiftTime, string, error) {
	var out []*ShiftTime
	for _, id := range r.order {
		s := r.shifts[id]
		if s.Status == filter.Status {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, "", nil
}

func newTestService() (*Service, *fakeEntryRepo, *fakeShiftRepo, *stubClock) {
	entries := newFakeEntryRepo()
	shifts := newFakeShiftRepo()
	clk := &stubClock{now: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
	return NewService(entries, shifts, clk, nil), entries, shifts, clk
}

func TestService_CreateEntry_Success(t *testing.T) {
	t.Parallel()

	svc, _, _, clk := newTestService()

	created, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: CollectionClients, Name: "  Acme  "})
	if err != nil {
		t.Fatalf("CreateEntry returned error: %v", err)
	}
	if created.Name != "Acme" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Status != record.StatusActive {
		t.Fatalf("expected active status, got %s", created.Status)
	}
	if !created.CreatedAt.Equal(clk.now) || !created.UpdatedAt.Equal(clk.now) {
		t.Fatal("expected timestamps to use clock now")
	}
	if created.TaskKind != "" {
		t.Fatalf("expected no task kind on client, got %s", created.TaskKind)
	}
}

func TestService_CreateEntry_EmptyName(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: CollectionTeams, Name: "   "})
	if !errors.Is(err, ErrEmptyName) || !errors.Is(err, record.ErrValidation) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestService_CreateEntry_DuplicateNameIgnoresCase(t *testing.T) {
	t.Parallel()

	for _, collection := range []Collection{CollectionClients, CollectionTeams, CollectionStaffTypes, CollectionTasks} {
		svc, _, _, _ := newTestService()

		if _, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: collection, Name: "Support"}); err != nil {
			t.Fatalf("%s: unexpected error: %v", collection, err)
		}
		_, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: collection, Name: "SUPPORT"})
		if !errors.Is(err, ErrDuplicateName) || !errors.Is(err, record.ErrDuplicate) {
			t.Fatalf("%s: expected ErrDuplicateName, got %v", collection, err)
		}
	}
}

func TestService_CreateEntry_SameNameAcrossCollections(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	if _, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: CollectionClients, Name: "Ops"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: CollectionTeams, Name: "Ops"}); err != nil {
		t.Fatalf("expected names to be scoped per collection, got %v", err)
	}
}

func TestService_CreateEntry_NameReusableAfterRemoval(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionClients, Name: "Globex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RemoveEntry(ctx, EntryRef{Collection: CollectionClients, ID: first.ID}); err != nil {
		t.Fatalf("RemoveEntry returned error: %v", err)
	}
	if _, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionClients, Name: "globex"}); err != nil {
		t.Fatalf("expected name of deleted client to be reusable, got %v", err)
	}
}

func TestService_CreateEntry_TaskKind(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	work, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionTasks, Name: "Coding"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if work.TaskKind != TaskKindWork {
		t.Fatalf("expected default Work kind, got %s", work.TaskKind)
	}

	lunch, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionTasks, Name: "Lunch", TaskKind: "break"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lunch.TaskKind != TaskKindBreak {
		t.Fatalf("expected Break kind, got %s", lunch.TaskKind)
	}

	if _, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionTasks, Name: "Nap", TaskKind: "Sleep"}); !errors.Is(err, ErrInvalidTaskKind) {
		t.Fatalf("expected ErrInvalidTaskKind, got %v", err)
	}
}

func TestService_CreateEntry_InvalidCollection(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	if _, err := svc.CreateEntry(context.Background(), CreateEntryInput{Collection: "widgets", Name: "x"}); !errors.Is(err, ErrInvalidCollection) {
		t.Fatalf("expected ErrInvalidCollection, got %v", err)
	}
}

func TestService_UpdateEntry_DuplicateExcludesSelf(t *testing.T) {
	t.Parallel()

	svc, _, _, clk := newTestService()
	ctx := context.Background()

	alpha, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionTeams, Name: "Alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionTeams, Name: "Beta"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clk.now = clk.now.Add(time.Hour)
	sameName := "ALPHA"
	updated, err := svc.UpdateEntry(ctx, UpdateEntryInput{Collection: CollectionTeams, ID: alpha.ID, Name: &sameName})
	if err != nil {
		t.Fatalf("expected renaming to own name in other case to succeed, got %v", err)
	}
	if updated.Name != "ALPHA" || !updated.UpdatedAt.Equal(clk.now) {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	clash := "beta"
	if _, err := svc.UpdateEntry(ctx, UpdateEntryInput{Collection: CollectionTeams, ID: alpha.ID, Name: &clash}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestService_UpdateEntry_Deleted(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionClients, Name: "Initech"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RemoveEntry(ctx, EntryRef{Collection: CollectionClients, ID: created.ID}); err != nil {
		t.Fatalf("RemoveEntry returned error: %v", err)
	}

	name := "Initrode"
	if _, err := svc.UpdateEntry(ctx, UpdateEntryInput{Collection: CollectionClients, ID: created.ID, Name: &name}); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
}

func TestService_RemoveEntry_SoftDeleteKeepsHistory(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionClients, Name: "Umbrella"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := EntryRef{Collection: CollectionClients, ID: created.ID}
	if err := svc.RemoveEntry(ctx, ref); err != nil {
		t.Fatalf("RemoveEntry returned error: %v", err)
	}
	if err := svc.RemoveEntry(ctx, ref); err != nil {
		t.Fatalf("expected repeated removal to succeed, got %v", err)
	}

	list, err := svc.ListEntries(ctx, ListEntriesInput{Collection: CollectionClients})
	if err != nil {
		t.Fatalf("ListEntries returned error: %v", err)
	}
	if len(list.Entries) != 0 {
		t.Fatalf("expected deleted client to be hidden, got %d entries", len(list.Entries))
	}

	found, err := svc.GetEntry(ctx, ref)
	if err != nil {
		t.Fatalf("expected deleted client to resolve by id, got %v", err)
	}
	if found.Name != "Umbrella" || found.Status != record.StatusDeleted {
		t.Fatalf("unexpected resolved entry: %+v", found)
	}

	active, err := svc.IsActive(ctx, CollectionClients, created.ID)
	if err != nil || active {
		t.Fatalf("expected deleted client to be inactive, got %v %v", active, err)
	}
}

func TestService_RemoveEntry_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	err := svc.RemoveEntry(context.Background(), EntryRef{Collection: CollectionTasks, ID: "missing"})
	if !errors.Is(err, ErrEntryNotFound) || !errors.Is(err, record.ErrNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestService_ListEntries_InsertionOrderAndPaging(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three"} {
		if _, err := svc.CreateEntry(ctx, CreateEntryInput{Collection: CollectionTeams, Name: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page1, err := svc.ListEntries(ctx, ListEntriesInput{Collection: CollectionTeams, PageSize: 2})
	if err != nil {
		t.Fatalf("ListEntries returned error: %v", err)
	}
	if len(page1.Entries) != 2 || page1.Entries[0].Name != "One" || page1.Entries[1].Name != "Two" {
		t.Fatalf("unexpected first page: %+v", page1.Entries)
	}
	if page1.NextPageToken == "" {
		t.Fatal("expected next page token")
	}

	page2, err := svc.ListEntries(ctx, ListEntriesInput{Collection: CollectionTeams, PageSize: 2, PageToken: page1.NextPageToken})
	if err != nil {
		t.Fatalf("ListEntries page2 returned error: %v", err)
	}
	if len(page2.Entries) != 1 || page2.Entries[0].Name != "Three" {
		t.Fatalf("unexpected second page: %+v", page2.Entries)
	}

	bad := record.Status("archived")
	if _, err := svc.ListEntries(ctx, ListEntriesInput{Collection: CollectionTeams, Status: &bad}); !errors.Is(err, record.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestService_CreateShiftTime_Fixed(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	created, err := svc.CreateShiftTime(context.Background(), ShiftTimeInput{
		Name:           "Day",
		Kind:           ShiftKindFixed,
		FromTime:       "09:00",
		ToTime:         "18:00",
		ApplicableDays: []Weekday{"fri", Monday, Monday},
	})
	if err != nil {
		t.Fatalf("CreateShiftTime returned error: %v", err)
	}
	if created.WorkHours != 8 || created.BreakHours != 1 || created.TotalHours != 9 {
		t.Fatalf("unexpected derived hours: %+v", created)
	}
	if len(created.ApplicableDays) != 2 || created.ApplicableDays[0] != Monday || created.ApplicableDays[1] != Friday {
		t.Fatalf("expected normalized days [Mon Fri], got %v", created.ApplicableDays)
	}
}

func TestService_CreateShiftTime_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		in   ShiftTimeInput
		want error
	}{
		{"empty name", ShiftTimeInput{Kind: ShiftKindFlexible, MinHours: "08:00"}, ErrEmptyName},
		{"bad kind", ShiftTimeInput{Name: "x", Kind: "Rotating"}, ErrInvalidShiftKind},
		{"no days", ShiftTimeInput{Name: "x", Kind: ShiftKindFixed, FromTime: "09:00", ToTime: "17:00"}, ErrDaysRequired},
		{"bad day", ShiftTimeInput{Name: "x", Kind: ShiftKindFixed, FromTime: "09:00", ToTime: "17:00", ApplicableDays: []Weekday{"Funday"}}, ErrInvalidWeekday},
		{"bad clock", ShiftTimeInput{Name: "x", Kind: ShiftKindFixed, FromTime: "9am", ToTime: "17:00", ApplicableDays: []Weekday{Monday}}, ErrInvalidClock},
		{"bad min hours", ShiftTimeInput{Name: "x", Kind: ShiftKindFlexible, MinHours: "8"}, ErrInvalidClock},
	}

	for _, tc := range cases {
		if _, err := svc.CreateShiftTime(ctx, tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestService_UpdateShiftTime_RecomputesHours(t *testing.T) {
	t.Parallel()

	svc, _, _, clk := newTestService()
	ctx := context.Background()

	created, err := svc.CreateShiftTime(ctx, ShiftTimeInput{Name: "Flex", Kind: ShiftKindFlexible, MinHours: "07:30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.MinHours != "07:30" || created.TotalHours != 0 {
		t.Fatalf("expected flexible shift to store only min hours, got %+v", created)
	}

	clk.now = clk.now.Add(time.Minute)
	updated, err := svc.UpdateShiftTime(ctx, UpdateShiftTimeInput{
		ID: created.ID,
		ShiftTimeInput: ShiftTimeInput{
			Name:           "Night",
			Kind:           ShiftKindFixed,
			FromTime:       "22:00",
			ToTime:         "06:30",
			ApplicableDays: []Weekday{Saturday},
		},
	})
	if err != nil {
		t.Fatalf("UpdateShiftTime returned error: %v", err)
	}
	if updated.TotalHours != 8.5 || updated.WorkHours != 7.5 || updated.MinHours != "" {
		t.Fatalf("unexpected hours after update: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) || !updated.UpdatedAt.Equal(clk.now) {
		t.Fatal("expected createdAt preserved and updatedAt refreshed")
	}
}

func TestService_ShiftTime_DuplicateAndRemove(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateShiftTime(ctx, ShiftTimeInput{Name: "Early", Kind: ShiftKindFlexible, MinHours: "04:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateShiftTime(ctx, ShiftTimeInput{Name: "EARLY", Kind: ShiftKindFlexible, MinHours: "04:00"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	if err := svc.RemoveShiftTime(ctx, created.ID); err != nil {
		t.Fatalf("RemoveShiftTime returned error: %v", err)
	}
	active, err := svc.IsActiveShift(ctx, created.ID)
	if err != nil || active {
		t.Fatalf("expected removed shift to be inactive, got %v %v", active, err)
	}
	list, err := svc.ListShiftTimes(ctx, ListShiftTimesInput{})
	if err != nil {
		t.Fatalf("ListShiftTimes returned error: %v", err)
	}
	if len(list.ShiftTimes) != 0 {
		t.Fatalf("expected no active shifts, got %d", len(list.ShiftTimes))
	}
}
