package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	directorypb "github.com/ogurasousui/timetrack/internal/adapters/grpc/gen/directory/v1"
	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

type stubDirectoryUseCase struct {
	directory.UseCase

	createInput directory.CreateEntryInput
	createOut   *directory.Entry
	createErr   error

	updateInput directory.UpdateEntryInput

	listInput directory.ListEntriesInput
	listOut   *directory.ListEntriesResult

	shiftInput directory.ShiftTimeInput
	shiftOut   *directory.ShiftTime

	removeErr error
}

func (s *stubDirectoryUseCase) CreateEntry(_ context.Context, in directory.CreateEntryInput) (*directory.Entry, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubDirectoryUseCase) UpdateEntry(_ context.Context, in directory.UpdateEntryInput) (*directory.Entry, error) {
	s.updateInput = in
	return &directory.Entry{Collection: in.Collection}, nil
}

func (s *stubDirectoryUseCase) ListEntries(_ context.Context, in directory.ListEntriesInput) (*directory.ListEntriesResult, error) {
	s.listInput = in
	return s.listOut, nil
}

func (s *stubDirectoryUseCase) RemoveEntry(context.Context, directory.EntryRef) error {
	return s.removeErr
}

func (s *stubDirectoryUseCase) CreateShiftTime(_ context.Context, in directory.ShiftTimeInput) (*directory.ShiftTime, error) {
	s.shiftInput = in
	return s.shiftOut, nil
}

func TestDirectoryGrpcHandler_CreateEntry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubDirectoryUseCase{createOut: &directory.Entry{
		Meta:       record.Meta{ID: "task-1", Status: record.StatusActive, CreatedAt: now, UpdatedAt: now},
		Collection: directory.CollectionTasks,
		Name:       "Coding",
		TaskKind:   directory.TaskKindWork,
	}}
	handler := NewDirectoryGrpcHandler(stub)

	resp, err := handler.CreateEntry(context.Background(), &directorypb.CreateEntryRequest{Collection: "tasks", Name: "Coding", TaskKind: "Work"})
	if err != nil {
		t.Fatalf("CreateEntry returned error: %v", err)
	}
	if stub.createInput.Collection != directory.CollectionTasks || stub.createInput.TaskKind != directory.TaskKindWork {
		t.Fatalf("expected inputs to be passed through, got %+v", stub.createInput)
	}
	if resp.GetId() != "task-1" || resp.Status != "active" || resp.TaskKind != "Work" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestDirectoryGrpcHandler_CreateEntry_ErrorMapping(t *testing.T) {
	t.Parallel()

	handler := NewDirectoryGrpcHandler(&stubDirectoryUseCase{createErr: directory.ErrDuplicateName})

	_, err := handler.CreateEntry(context.Background(), &directorypb.CreateEntryRequest{Collection: "clients", Name: "Acme"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", status.Code(err))
	}
}

func TestDirectoryGrpcHandler_UpdateEntry_OptionalFields(t *testing.T) {
	t.Parallel()

	stub := &stubDirectoryUseCase{}
	handler := NewDirectoryGrpcHandler(stub)

	req := &directorypb.UpdateEntryRequest{Collection: "tasks", Id: "task-1", TaskKind: wrapperspb.String("Break")}
	if _, err := handler.UpdateEntry(context.Background(), req); err != nil {
		t.Fatalf("UpdateEntry returned error: %v", err)
	}
	if stub.updateInput.Name != nil {
		t.Fatalf("expected name to stay unset")
	}
	if stub.updateInput.TaskKind == nil || *stub.updateInput.TaskKind != directory.TaskKindBreak {
		t.Fatalf("expected task kind Break, got %v", stub.updateInput.TaskKind)
	}
}

func TestDirectoryGrpcHandler_ListEntries_StatusFilter(t *testing.T) {
	t.Parallel()

	stub := &stubDirectoryUseCase{listOut: &directory.ListEntriesResult{
		Entries:       []*directory.Entry{{Collection: directory.CollectionTeams, Name: "Ops"}},
		NextPageToken: "2",
	}}
	handler := NewDirectoryGrpcHandler(stub)

	resp, err := handler.ListEntries(context.Background(), &directorypb.ListEntriesRequest{Collection: "teams", Status: "inactive", PageSize: 1})
	if err != nil {
		t.Fatalf("ListEntries returned error: %v", err)
	}
	if stub.listInput.Status == nil || *stub.listInput.Status != record.StatusInactive {
		t.Fatalf("expected inactive status filter")
	}
	if stub.listInput.PageSize != 1 {
		t.Fatalf("expected page size 1, got %d", stub.listInput.PageSize)
	}
	if len(resp.Entries) != 1 || resp.NextPageToken != "2" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if _, err := handler.ListEntries(context.Background(), &directorypb.ListEntriesRequest{Collection: "teams"}); err != nil {
		t.Fatalf("ListEntries returned error: %v", err)
	}
	if stub.listInput.Status != nil {
		t.Fatalf("expected empty status to mean no filter")
	}
}

func TestDirectoryGrpcHandler_RemoveEntry_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewDirectoryGrpcHandler(&stubDirectoryUseCase{removeErr: directory.ErrEntryNotFound})

	_, err := handler.RemoveEntry(context.Background(), &directorypb.EntryRef{Collection: "clients", Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestDirectoryGrpcHandler_CreateShiftTime(t *testing.T) {
	t.Parallel()

	stub := &stubDirectoryUseCase{shiftOut: &directory.ShiftTime{
		Name:           "Day",
		Kind:           directory.ShiftKindFixed,
		ApplicableDays: []directory.Weekday{directory.Monday, directory.Friday},
		TotalHours:     9,
	}}
	handler := NewDirectoryGrpcHandler(stub)

	resp, err := handler.CreateShiftTime(context.Background(), &directorypb.ShiftTimeRequest{
		Name:           "Day",
		Kind:           "Fixed",
		FromTime:       "09:00",
		ToTime:         "18:00",
		ApplicableDays: []string{"Mon", "Fri"},
	})
	if err != nil {
		t.Fatalf("CreateShiftTime returned error: %v", err)
	}
	if len(stub.shiftInput.ApplicableDays) != 2 || stub.shiftInput.ApplicableDays[1] != directory.Friday {
		t.Fatalf("expected days to be converted, got %v", stub.shiftInput.ApplicableDays)
	}
	if resp.TotalHours != 9 || len(resp.ApplicableDays) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestDirectoryGrpcHandler_NilRequest(t *testing.T) {
	t.Parallel()

	handler := NewDirectoryGrpcHandler(&stubDirectoryUseCase{})

	_, err := handler.CreateEntry(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}
