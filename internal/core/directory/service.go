package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

// Service はクライアント・チーム・スタッフ種別・タスク・シフトのユースケースをまとめます。
type Service struct {
	entries Repository
	shifts  ShiftRepository
	clock   record.Clock
	tx      record.TransactionManager
}

// UseCase はディレクトリユースケースの公開インターフェースです。
type UseCase interface {
	CreateEntry(ctx context.Context, in CreateEntryInput) (*Entry, error)
	UpdateEntry(ctx context.Context, in UpdateEntryInput) (*Entry, error)
	RemoveEntry(ctx context.Context, in EntryRef) error
	GetEntry(ctx context.Context, in EntryRef) (*Entry, error)
	ListEntries(ctx context.Context, in ListEntriesInput) (*ListEntriesResult, error)

	CreateShiftTime(ctx context.Context, in ShiftTimeInput) (*ShiftTime, error)
	UpdateShiftTime(ctx context.Context, in UpdateShiftTimeInput) (*ShiftTime, error)
	RemoveShiftTime(ctx context.Context, id string) error
	GetShiftTime(ctx context.Context, id string) (*ShiftTime, error)
	ListShiftTimes(ctx context.Context, in ListShiftTimesInput) (*ListShiftTimesResult, error)
}

// NewService は Service を生成します。
func NewService(entries Repository, shifts ShiftRepository, clock record.Clock, tx record.TransactionManager) *Service {
	if clock == nil {
		clock = record.SystemClock{}
	}
	if tx == nil {
		tx = record.NoopTransactionManager{}
	}
	return &Service{entries: entries, shifts: shifts, clock: clock, tx: tx}
}

// CreateEntryInput は名前付きレコード作成時の入力です。
type CreateEntryInput struct {
	Collection Collection
	Name       string
	TaskKind   TaskKind
}

// UpdateEntryInput は名前付きレコード更新時の入力です。
type UpdateEntryInput struct {
	Collection Collection
	ID         string
	Name       *string
	TaskKind   *TaskKind
}

// EntryRef はコレクションと ID の組です。
type EntryRef struct {
	Collection Collection
	ID         string
}

// ListEntriesInput は一覧取得時の入力です。Status を省略すると有効なレコードのみを返します。
type ListEntriesInput struct {
	Collection Collection
	Status     *record.Status
	PageSize   int
	PageToken  string
}

// ListEntriesResult は一覧取得結果です。
type ListEntriesResult struct {
	Entries       []*Entry
	NextPageToken string
}

// CreateEntry は名前付きレコードを作成します。
func (s *Service) CreateEntry(ctx context.Context, in CreateEntryInput) (*Entry, error) {
	if !in.Collection.Valid() {
		return nil, ErrInvalidCollection
	}
	name, ok := record.NormalizeName(in.Name)
	if !ok {
		return nil, ErrEmptyName
	}
	kind, err := normalizeTaskKind(in.Collection, in.TaskKind)
	if err != nil {
		return nil, err
	}

	var created *Entry
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureNameAvailable(txCtx, in.Collection, name, ""); err != nil {
			return err
		}

		result, err := s.entries.Create(txCtx, &Entry{
			Meta:       record.NewMeta(s.clock.Now()),
			Collection: in.Collection,
			Name:       name,
			TaskKind:   kind,
		})
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

// UpdateEntry は名前付きレコードを更新します。重複チェックは自身を除いた有効なレコードに対して行います。
func (s *Service) UpdateEntry(ctx context.Context, in UpdateEntryInput) (*Entry, error) {
	if !in.Collection.Valid() {
		return nil, ErrInvalidCollection
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, record.ErrInvalidID
	}

	var updated *Entry
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.entries.FindByID(txCtx, in.Collection, id)
		if err != nil {
			return err
		}
		if !existing.IsActive() {
			return ErrNotActive
		}

		if in.Name != nil {
			name, ok := record.NormalizeName(*in.Name)
			if !ok {
				return ErrEmptyName
			}
			if err := s.ensureNameAvailable(txCtx, in.Collection, name, existing.ID); err != nil {
				return err
			}
			existing.Name = name
		}

		if in.TaskKind != nil {
			kind, err := normalizeTaskKind(in.Collection, *in.TaskKind)
			if err != nil {
				return err
			}
			existing.TaskKind = kind
		}

		existing.Touch(s.clock.Now())

		result, err := s.entries.Update(txCtx, existing)
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

// RemoveEntry は名前付きレコードを論理削除します。
func (s *Service) RemoveEntry(ctx context.Context, in EntryRef) error {
	if !in.Collection.Valid() {
		return ErrInvalidCollection
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return record.Remove(txCtx, collectionDeleter{repo: s.entries, collection: in.Collection}, in.ID, s.clock.Now())
	})
}

// GetEntry は削除済みを含めて ID でレコードを取得します。
func (s *Service) GetEntry(ctx context.Context, in EntryRef) (*Entry, error) {
	if !in.Collection.Valid() {
		return nil, ErrInvalidCollection
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, record.ErrInvalidID
	}
	return s.entries.FindByID(ctx, in.Collection, id)
}

// ListEntries は名前付きレコードを挿入順に一覧します。
func (s *Service) ListEntries(ctx context.Context, in ListEntriesInput) (*ListEntriesResult, error) {
	if !in.Collection.Valid() {
		return nil, ErrInvalidCollection
	}
	page, err := record.NewPage(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}
	status, err := statusOrActive(in.Status)
	if err != nil {
		return nil, err
	}

	entries, next, err := s.entries.List(ctx, ListEntriesFilter{
		Collection: in.Collection,
		Status:     status,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListEntriesResult{Entries: entries, NextPageToken: next}, nil
}

// IsActive は参照先が有効なレコードかどうかを返します。存在しない ID は false です。
func (s *Service) IsActive(ctx context.Context, collection Collection, id string) (bool, error) {
	entry, err := s.entries.FindByID(ctx, collection, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	return entry.IsActive(), nil
}

// IsActiveShift は参照先が有効なシフトかどうかを返します。
func (s *Service) IsActiveShift(ctx context.Context, id string) (bool, error) {
	shift, err := s.shifts.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrShiftNotFound) {
			return false, nil
		}
		return false, err
	}
	return shift.IsActive(), nil
}

func (s *Service) ensureNameAvailable(ctx context.Context, collection Collection, name, selfID string) error {
	found, err := s.entries.FindActiveByName(ctx, collection, name)
	if err != nil && !errors.Is(err, ErrEntryNotFound) {
		return err
	}
	if found != nil && found.ID != selfID {
		return ErrDuplicateName
	}
	return nil
}

type collectionDeleter struct {
	repo       Repository
	collection Collection
}

func (d collectionDeleter) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return d.repo.SoftDelete(ctx, d.collection, id, at)
}

func normalizeTaskKind(collection Collection, kind TaskKind) (TaskKind, error) {
	if collection != CollectionTasks {
		return "", nil
	}
	switch {
	case kind == "":
		return TaskKindWork, nil
	case strings.EqualFold(string(kind), string(TaskKindWork)):
		return TaskKindWork, nil
	case strings.EqualFold(string(kind), string(TaskKindBreak)):
		return TaskKindBreak, nil
	default:
		return "", ErrInvalidTaskKind
	}
}

func statusOrActive(status *record.Status) (record.Status, error) {
	if status == nil {
		return record.StatusActive, nil
	}
	if !status.Valid() {
		return "", record.ErrInvalidStatus
	}
	return *status, nil
}

// CountActive はコレクション内の有効なレコード数を返します。
func (s *Service) CountActive(ctx context.Context, collection Collection) (int, error) {
	if !collection.Valid() {
		return 0, ErrInvalidCollection
	}
	return s.entries.CountActive(ctx, collection)
}
