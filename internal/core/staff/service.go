package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/identity"
	"github.com/ogurasousui/timetrack/internal/core/record"
)

// Service はスタッフ登録と認証に関するユースケースをまとめます。
type Service struct {
	repo     Repository
	dir      Directory
	hasher   PasswordHasher
	notifier Notifier
	clock    record.Clock
	tx       record.TransactionManager
	newToken func() string
}

// UseCase はスタッフユースケースの公開インターフェースです。
type UseCase interface {
	Register(ctx context.Context, in RegisterInput) (*Staff, error)
	Activate(ctx context.Context, in ActivateInput) (*Staff, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, in ResetPasswordInput) error
	UpdateStaff(ctx context.Context, in UpdateStaffInput) (*Staff, error)
	RemoveStaff(ctx context.Context, id string) error
	GetStaff(ctx context.Context, id string) (*Staff, error)
	ListStaff(ctx context.Context, in ListStaffInput) (*ListStaffResult, error)
	Authenticate(ctx context.Context, email, password string) (*Staff, error)
	ResolveActor(ctx context.Context, staffID string) (identity.Actor, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, dir Directory, hasher PasswordHasher, notifier Notifier, clock record.Clock, tx record.TransactionManager) *Service {
	if clock == nil {
		clock = record.SystemClock{}
	}
	if tx == nil {
		tx = record.NoopTransactionManager{}
	}
	return &Service{
		repo:     repo,
		dir:      dir,
		hasher:   hasher,
		notifier: notifier,
		clock:    clock,
		tx:       tx,
		newToken: uuid.NewString,
	}
}

// RegisterInput はスタッフ登録時の入力です。
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	TeamID      string
	StaffTypeID string
	ShiftTimeID string
}

// ActivateInput はアカウント有効化時の入力です。
type ActivateInput struct {
	ID   string
	Code string
}

// ResetPasswordInput はパスワード再設定時の入力です。
type ResetPasswordInput struct {
	ID          string
	Token       string
	NewPassword string
}

// UpdateStaffInput はスタッフ更新時の入力です。nil の項目は変更しません。
type UpdateStaffInput struct {
	ID          string
	Name        *string
	Email       *string
	Password    *string
	TeamID      *string
	StaffTypeID *string
	ShiftTimeID *string
}

// ListStaffInput は一覧取得時の入力です。
type ListStaffInput struct {
	Status    *record.Status
	TeamID    string
	PageSize  int
	PageToken string
}

// ListStaffResult は一覧取得結果です。
type ListStaffResult struct {
	Staff         []*Staff
	NextPageToken string
}

// Register はスタッフを inactive で登録し、アクティベーションリンクを通知します。
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Staff, error) {
	name := strings.TrimSpace(in.Name)
	teamID := strings.TrimSpace(in.TeamID)
	staffTypeID := strings.TrimSpace(in.StaffTypeID)
	shiftTimeID := strings.TrimSpace(in.ShiftTimeID)
	if name == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" || teamID == "" || staffTypeID == "" || shiftTimeID == "" {
		return nil, ErrMissingFields
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(ctx, teamID, staffTypeID, shiftTimeID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *Staff
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureEmailAvailable(txCtx, email, ""); err != nil {
			return err
		}

		meta := record.NewMeta(s.clock.Now())
		meta.Status = record.StatusInactive

		result, err := s.repo.Create(txCtx, &Staff{
			Meta:           meta,
			Name:           name,
			Email:          email,
			PasswordHash:   hash,
			TeamID:         teamID,
			StaffTypeID:    staffTypeID,
			ShiftTimeID:    shiftTimeID,
			ActivationCode: s.newToken(),
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.notifier.SendActivationLink(ctx, created.ID, created.ActivationCode); err != nil {
		return nil, fmt.Errorf("send activation link: %w", err)
	}

	return created, nil
}

// Activate はアクティベーションコードを検証してアカウントを有効化します。
func (s *Service) Activate(ctx context.Context, in ActivateInput) (*Staff, error) {
	id := strings.TrimSpace(in.ID)
	code := strings.TrimSpace(in.Code)
	if id == "" || code == "" {
		return nil, ErrInvalidActivationLink
	}

	var activated *Staff
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			if errors.Is(err, ErrStaffNotFound) {
				return ErrInvalidActivationLink
			}
			return err
		}
		if existing.Status != record.StatusInactive || existing.ActivationCode == "" || existing.ActivationCode != code {
			return ErrInvalidActivationLink
		}

		existing.Status = record.StatusActive
		existing.ActivationCode = ""
		existing.Touch(s.clock.Now())

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		activated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return activated, nil
}

// RequestPasswordReset は単回使用の再設定トークンを発行して通知します。
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	var target *Staff
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByEmail(txCtx, normalized)
		if err != nil {
			return err
		}

		existing.ResetToken = s.newToken()
		existing.Touch(s.clock.Now())

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		target = result
		return nil
	}); err != nil {
		return err
	}

	if err := s.notifier.SendPasswordResetLink(ctx, target.ID, target.ResetToken); err != nil {
		return fmt.Errorf("send password reset link: %w", err)
	}
	return nil
}

// ResetPassword はトークンを検証してパスワードを置き換え、トークンを破棄します。
func (s *Service) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	id := strings.TrimSpace(in.ID)
	token := strings.TrimSpace(in.Token)
	if id == "" || token == "" {
		return ErrInvalidResetToken
	}
	if err := ValidatePassword(in.NewPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			if errors.Is(err, ErrStaffNotFound) {
				return ErrInvalidResetToken
			}
			return err
		}
		if existing.Status == record.StatusDeleted || existing.ResetToken == "" || existing.ResetToken != token {
			return ErrInvalidResetToken
		}

		existing.PasswordHash = hash
		existing.ResetToken = ""
		existing.Touch(s.clock.Now())

		_, err = s.repo.Update(txCtx, existing)
		return err
	})
}

// UpdateStaff はスタッフ情報を更新します。削除済みのスタッフは更新できません。
func (s *Service) UpdateStaff(ctx context.Context, in UpdateStaffInput) (*Staff, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, record.ErrInvalidID
	}

	var hash string
	if in.Password != nil {
		if err := ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		h, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	var updated *Staff
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing.Status == record.StatusDeleted {
			return ErrStaffDeleted
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrMissingFields
			}
			existing.Name = name
		}
		if in.Email != nil {
			email, err := normalizeEmail(*in.Email)
			if err != nil {
				return err
			}
			if err := s.ensureEmailAvailable(txCtx, email, existing.ID); err != nil {
				return err
			}
			existing.Email = email
		}

		teamID := pick(in.TeamID, existing.TeamID)
		staffTypeID := pick(in.StaffTypeID, existing.StaffTypeID)
		shiftTimeID := pick(in.ShiftTimeID, existing.ShiftTimeID)
		if teamID == "" || staffTypeID == "" || shiftTimeID == "" {
			return ErrMissingFields
		}
		if in.TeamID != nil || in.StaffTypeID != nil || in.ShiftTimeID != nil {
			if err := s.ensureReferences(txCtx, teamID, staffTypeID, shiftTimeID); err != nil {
				return err
			}
		}
		existing.TeamID = teamID
		existing.StaffTypeID = staffTypeID
		existing.ShiftTimeID = shiftTimeID

		if hash != "" {
			existing.PasswordHash = hash
		}
		existing.Touch(s.clock.Now())

		result, err := s.repo.Update(txCtx, existing)
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

// RemoveStaff はスタッフを論理削除します。
func (s *Service) RemoveStaff(ctx context.Context, id string) error {
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return record.Remove(txCtx, s.repo, id, s.clock.Now())
	})
}

// GetStaff は削除済みを含めて ID でスタッフを取得します。
func (s *Service) GetStaff(ctx context.Context, id string) (*Staff, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, record.ErrInvalidID
	}
	return s.repo.FindByID(ctx, trimmed)
}

// ListStaff はスタッフを一覧します。Status を省略すると有効なスタッフのみを返します。
func (s *Service) ListStaff(ctx context.Context, in ListStaffInput) (*ListStaffResult, error) {
	page, err := record.NewPage(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}

	status := record.StatusActive
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, record.ErrInvalidStatus
		}
		status = *in.Status
	}

	items, next, err := s.repo.List(ctx, ListStaffFilter{
		Status: status,
		TeamID: strings.TrimSpace(in.TeamID),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListStaffResult{Staff: items, NextPageToken: next}, nil
}

// ActiveStaffIDs は有効なスタッフの ID を返します。teamID が空なら全スタッフが対象です。
func (s *Service) ActiveStaffIDs(ctx context.Context, teamID string) ([]string, error) {
	items, err := s.repo.ListActive(ctx, ActiveStaffFilter{TeamID: strings.TrimSpace(teamID)})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

// CountActiveNonAdmin は管理者以外の有効なスタッフ数を返します。
func (s *Service) CountActiveNonAdmin(ctx context.Context) (int, error) {
	return s.repo.CountActiveNonAdmin(ctx)
}

// Authenticate はメールアドレスとパスワードを検証します。
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Staff, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	found, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(found.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !found.IsActive() {
		return nil, ErrAccountNotActive
	}

	return found, nil
}

// ResolveActor はスタッフ ID から呼び出し元を組み立てます。役割はスタッフ種別から導出します。
func (s *Service) ResolveActor(ctx context.Context, staffID string) (identity.Actor, error) {
	id := strings.TrimSpace(staffID)
	if id == "" {
		return identity.Actor{}, identity.ErrNoActor
	}

	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			return identity.Actor{}, identity.ErrNoActor
		}
		return identity.Actor{}, err
	}
	if !found.IsActive() {
		return identity.Actor{}, ErrAccountNotActive
	}

	role := identity.RoleStaff
	staffType, err := s.dir.GetEntry(ctx, directory.EntryRef{Collection: directory.CollectionStaffTypes, ID: found.StaffTypeID})
	switch {
	case err == nil:
		if staffType.IsActive() {
			role = identity.RoleForStaffType(staffType.Name)
		}
	case errors.Is(err, directory.ErrEntryNotFound):
	default:
		return identity.Actor{}, err
	}

	return identity.Actor{StaffID: found.ID, Role: role}, nil
}

func (s *Service) ensureEmailAvailable(ctx context.Context, email, selfID string) error {
	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrStaffNotFound) {
		return err
	}
	if found != nil && found.ID != selfID {
		return ErrDuplicateEmail
	}
	return nil
}

func (s *Service) ensureReferences(ctx context.Context, teamID, staffTypeID, shiftTimeID string) error {
	checks := []struct {
		collection directory.Collection
		id         string
		notFound   error
	}{
		{directory.CollectionTeams, teamID, ErrTeamNotFound},
		{directory.CollectionStaffTypes, staffTypeID, ErrStaffTypeNotFound},
	}
	for _, c := range checks {
		ok, err := s.dir.IsActive(ctx, c.collection, c.id)
		if err != nil {
			return err
		}
		if !ok {
			return c.notFound
		}
	}

	ok, err := s.dir.IsActiveShift(ctx, shiftTimeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrShiftTimeNotFound
	}
	return nil
}

func pick(update *string, current string) string {
	if update == nil {
		return current
	}
	return strings.TrimSpace(*update)
}
