package timer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

// Service はスタッフごとのタイマー状態 (Idle / Running) を管理します。
type Service struct {
	sessions    SessionRepository
	logs        LogRepository
	assignments Assignments
	clock       record.Clock
	tx          record.TransactionManager
	newID       func() string
}

// UseCase はタイマーユースケースの公開インターフェースです。
type UseCase interface {
	Start(ctx context.Context, staffID string) (*Session, error)
	Stop(ctx context.Context, in StopInput) (*TimeLog, error)
	Current(ctx context.Context, staffID string) (*Running, error)
	Discard(ctx context.Context, staffID string) error
}

// NewService は Service を生成します。
func NewService(sessions SessionRepository, logs LogRepository, assignments Assignments, clock record.Clock, tx record.TransactionManager) *Service {
	if clock == nil {
		clock = record.SystemClock{}
	}
	if tx == nil {
		tx = record.NoopTransactionManager{}
	}
	return &Service{
		sessions:    sessions,
		logs:        logs,
		assignments: assignments,
		clock:       clock,
		tx:          tx,
		newID:       uuid.NewString,
	}
}

// StopInput はタイマー停止時の入力です。クライアントはプロジェクトから導出します。
type StopInput struct {
	StaffID   string
	ProjectID string
	TaskID    string
}

// Start は計測を開始します。計測中であれば ErrAlreadyRunning です。
func (s *Service) Start(ctx context.Context, staffID string) (*Session, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return nil, record.ErrInvalidID
	}

	session := &Session{
		ID:        s.newID(),
		StaffID:   staffID,
		StartedAt: s.clock.Now(),
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		_, err := s.sessions.Find(txCtx, staffID)
		switch {
		case err == nil:
			return ErrAlreadyRunning
		case !errors.Is(err, ErrNotRunning):
			return err
		}
		// 事前チェックと挿入の間に割り込まれても、ストア側の主キーで二重起動を拒否します。
		return s.sessions.Insert(txCtx, session)
	}); err != nil {
		return nil, err
	}

	return session, nil
}

// Stop は計測を終了して作業ログを 1 件記録します。
// 検証に失敗した場合はセッションを計測中のまま残します。
func (s *Service) Stop(ctx context.Context, in StopInput) (*TimeLog, error) {
	staffID := strings.TrimSpace(in.StaffID)
	projectID := strings.TrimSpace(in.ProjectID)
	taskID := strings.TrimSpace(in.TaskID)
	if staffID == "" || projectID == "" || taskID == "" {
		return nil, ErrMissingFields
	}

	var created *TimeLog
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.Find(txCtx, staffID)
		if err != nil {
			return err
		}

		end := s.clock.Now()
		if end.Before(session.StartedAt) {
			return ErrInvalidDuration
		}
		duration := int64(end.Sub(session.StartedAt) / time.Second)

		clientID, err := s.authorize(txCtx, staffID, projectID, taskID)
		if err != nil {
			return err
		}

		deleted, err := s.sessions.Delete(txCtx, staffID, session.StartedAt)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotRunning
		}

		result, err := s.logs.Insert(txCtx, &TimeLog{
			StaffID:         staffID,
			ClientID:        clientID,
			ProjectID:       projectID,
			TaskID:          taskID,
			StartTime:       session.StartedAt,
			EndTime:         end,
			DurationSeconds: duration,
			CreatedAt:       end,
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

// Current は計測中のセッションを返します。計測していなければ ErrNotRunning です。
func (s *Service) Current(ctx context.Context, staffID string) (*Running, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return nil, record.ErrInvalidID
	}

	session, err := s.sessions.Find(ctx, staffID)
	if err != nil {
		return nil, err
	}

	elapsed := int64(s.clock.Now().Sub(session.StartedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	return &Running{Session: session, ElapsedSeconds: elapsed}, nil
}

// Discard は作業ログを残さずにセッションを破棄します。計測していなければ何もしません。
func (s *Service) Discard(ctx context.Context, staffID string) error {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return record.ErrInvalidID
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.Find(txCtx, staffID)
		if err != nil {
			if errors.Is(err, ErrNotRunning) {
				return nil
			}
			return err
		}
		_, err = s.sessions.Delete(txCtx, staffID, session.StartedAt)
		return err
	})
}

// authorize はプロジェクトが有効で、タスクとスタッフが割り当てられていることを検証し、クライアント ID を返します。
func (s *Service) authorize(ctx context.Context, staffID, projectID, taskID string) (string, error) {
	project, err := s.assignments.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	if !project.IsActive() {
		return "", ErrUnauthorized
	}

	taskOK, err := s.assignments.IsTaskAssigned(ctx, projectID, taskID)
	if err != nil {
		return "", err
	}
	staffOK, err := s.assignments.IsStaffAssigned(ctx, projectID, staffID)
	if err != nil {
		return "", err
	}
	if !taskOK || !staffOK {
		return "", ErrUnauthorized
	}

	return project.ClientID, nil
}
