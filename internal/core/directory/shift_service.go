package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

// ShiftTimeInput はシフト作成・更新時の入力です。時間項目は受け付けず常に再計算します。
type ShiftTimeInput struct {
	Name           string
	Kind           ShiftKind
	FromTime       string
	ToTime         string
	ApplicableDays []Weekday
	MinHours       string
}

// UpdateShiftTimeInput はシフト更新時の入力です。
type UpdateShiftTimeInput struct {
	ID string
	ShiftTimeInput
}

// ListShiftTimesInput はシフト一覧取得時の入力です。
type ListShiftTimesInput struct {
	Status    *record.Status
	PageSize  int
	PageToken string
}

// ListShiftTimesResult はシフト一覧の取得結果です。
type ListShiftTimesResult struct {
	ShiftTimes    []*ShiftTime
	NextPageToken string
}

// CreateShiftTime はシフトを作成します。
func (s *Service) CreateShiftTime(ctx context.Context, in ShiftTimeInput) (*ShiftTime, error) {
	shift, err := buildShift(in)
	if err != nil {
		return nil, err
	}

	var created *ShiftTime
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureShiftNameAvailable(txCtx, shift.Name, ""); err != nil {
			return err
		}
		shift.Meta = record.NewMeta(s.clock.Now())

		result, err := s.shifts.Create(txCtx, shift)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateShiftTime はシフトを置き換えます。
func (s *Service) UpdateShiftTime(ctx context.Context, in UpdateShiftTimeInput) (*ShiftTime, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, record.ErrInvalidID
	}
	shift, err := buildShift(in.ShiftTimeInput)
	if err != nil {
		return nil, err
	}

	var updated *ShiftTime
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.shifts.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if !existing.IsActive() {
			return ErrNotActive
		}
		if err := s.ensureShiftNameAvailable(txCtx, shift.Name, existing.ID); err != nil {
			return err
		}

		shift.Meta = existing.Meta
		shift.Touch(s.clock.Now())

		result, err := s.shifts.Update(txCtx, shift)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveShiftTime はシフトを論理削除します。
func (s *Service) RemoveShiftTime(ctx context.Context, id string) error {
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return record.Remove(txCtx, s.shifts, id, s.clock.Now())
	})
}

// GetShiftTime は削除済みを含めて ID でシフトを取得します。
func (s *Service) GetShiftTime(ctx context.Context, id string) (*ShiftTime, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, record.ErrInvalidID
	}
	return s.shifts.FindByID(ctx, trimmed)
}

// ListShiftTimes はシフトを一覧します。
func (s *Service) ListShiftTimes(ctx context.Context, in ListShiftTimesInput) (*ListShiftTimesResult, error) {
	page, err := record.NewPage(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}
	status, err := statusOrActive(in.Status)
	if err != nil {
		return nil, err
	}

	shifts, next, err := s.shifts.List(ctx, ListShiftsFilter{Status: status, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	return &ListShiftTimesResult{ShiftTimes: shifts, NextPageToken: next}, nil
}

func (s *Service) ensureShiftNameAvailable(ctx context.Context, name, selfID string) error {
	found, err := s.shifts.FindActiveByName(ctx, name)
	if err != nil && !errors.Is(err, ErrShiftNotFound) {
		return err
	}
	if found != nil && found.ID != selfID {
		return ErrDuplicateName
	}
	return nil
}

func buildShift(in ShiftTimeInput) (*ShiftTime, error) {
	name, ok := record.NormalizeName(in.Name)
	if !ok {
		return nil, ErrEmptyName
	}

	switch {
	case strings.EqualFold(string(in.Kind), string(ShiftKindFixed)):
		from, err := normalizeClock(in.FromTime)
		if err != nil {
			return nil, err
		}
		to, err := normalizeClock(in.ToTime)
		if err != nil {
			return nil, err
		}
		days, err := normalizeDays(in.ApplicableDays)
		if err != nil {
			return nil, err
		}
		if len(days) == 0 {
			return nil, ErrDaysRequired
		}
		hours, err := ComputeFixedHours(from, to)
		if err != nil {
			return nil, err
		}
		return &ShiftTime{
			Name:           name,
			Kind:           ShiftKindFixed,
			FromTime:       from,
			ToTime:         to,
			ApplicableDays: days,
			WorkHours:      hours.Work,
			BreakHours:     hours.Break,
			TotalHours:     hours.Total,
		}, nil

	case strings.EqualFold(string(in.Kind), string(ShiftKindFlexible)):
		minHours, err := normalizeClock(in.MinHours)
		if err != nil {
			return nil, err
		}
		return &ShiftTime{Name: name, Kind: ShiftKindFlexible, MinHours: minHours}, nil

	default:
		return nil, ErrInvalidShiftKind
	}
}
