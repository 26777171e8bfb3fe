package assignment

import (
	"context"
	"errors"
	"strings"

	"github.com/ogurasousui/timetrack/internal/core/directory"
	"github.com/ogurasousui/timetrack/internal/core/record"
	"github.com/ogurasousui/timetrack/internal/core/staff"
)

// noClient はクライアントなしを表す入力値です。
const noClient = "none"

// Service はプロジェクトと割り当てに関するユースケースをまとめます。
type Service struct {
	projects    ProjectRepository
	assignments Repository
	roster      Roster
	dir         Directory
	clock       record.Clock
	tx          record.TransactionManager
	locker      record.Locker
}

// UseCase は割り当てユースケースの公開インターフェースです。
type UseCase interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*CreateProjectResult, error)
	UpdateProject(ctx context.Context, in UpdateProjectInput) (*Project, error)
	RemoveProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context, in ListProjectsInput) (*ListProjectsResult, error)

	AssignStaff(ctx context.Context, in StaffSelectionInput) (*AssignStaffResult, error)
	ReplaceStaff(ctx context.Context, in StaffSelectionInput) (*ReplaceStaffResult, error)
	UnassignStaff(ctx context.Context, projectID, staffID string) error
	AssignTask(ctx context.Context, projectID, taskID string) (*TaskAssignment, error)
	UnassignTask(ctx context.Context, projectID, taskID string) error

	ListStaffAssignments(ctx context.Context, projectID string) ([]*StaffAssignmentView, error)
	ListTaskAssignments(ctx context.Context, projectID string) ([]*TaskAssignmentView, error)
	ListTaskAssignmentsForStaff(ctx context.Context, staffID string) ([]*TaskAssignmentView, error)
}

// NewService は Service を生成します。
func NewService(projects ProjectRepository, assignments Repository, roster Roster, dir Directory, clock record.Clock, tx record.TransactionManager, locker record.Locker) *Service {
	if clock == nil {
		clock = record.SystemClock{}
	}
	if tx == nil {
		tx = record.NoopTransactionManager{}
	}
	if locker == nil {
		locker = record.NoopLocker{}
	}
	return &Service{
		projects:    projects,
		assignments: assignments,
		roster:      roster,
		dir:         dir,
		clock:       clock,
		tx:          tx,
		locker:      locker,
	}
}

// CreateProjectInput はプロジェクト作成時の入力です。ClientID が空または "none" ならクライアントなしです。
type CreateProjectInput struct {
	Name     string
	ClientID string
	Strategy Strategy
}

// CreateProjectResult は作成したプロジェクトと初期割り当てです。
type CreateProjectResult struct {
	Project     *Project
	Assignments []*StaffAssignment
}

// UpdateProjectInput はプロジェクト更新時の入力です。
type UpdateProjectInput struct {
	ID       string
	Name     *string
	ClientID *string
}

// ListProjectsInput はプロジェクト一覧取得時の入力です。
type ListProjectsInput struct {
	Status    *record.Status
	ClientID  string
	PageSize  int
	PageToken string
}

// ListProjectsResult はプロジェクト一覧の取得結果です。
type ListProjectsResult struct {
	Projects      []*Project
	NextPageToken string
}

// StaffSelectionInput はスタッフ割り当て時の入力です。
type StaffSelectionInput struct {
	ProjectID string
	StaffIDs  []string
}

// AssignStaffResult はスタッフ割り当ての結果です。Skipped は既に割り当て済みだったスタッフです。
type AssignStaffResult struct {
	Added   []*StaffAssignment
	Skipped []string
}

// ReplaceStaffResult は割り当て置き換えの結果です。
type ReplaceStaffResult struct {
	Added   []*StaffAssignment
	Removed []string
}

// CreateProject はプロジェクトを作成し、Strategy を解決したスタッフを同じトランザクションで割り当てます。
func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (*CreateProjectResult, error) {
	name, ok := record.NormalizeName(in.Name)
	if !ok {
		return nil, ErrEmptyName
	}
	if in.Strategy == nil {
		return nil, ErrInvalidStrategy
	}
	clientID, err := s.normalizeClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	var result *CreateProjectResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		staffIDs, err := s.resolveStrategy(txCtx, in.Strategy)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		project, err := s.projects.Create(txCtx, &Project{
			Meta:     record.NewMeta(now),
			Name:     name,
			ClientID: clientID,
		})
		if err != nil {
			return err
		}

		added, _, err := s.insertStaff(txCtx, project.ID, staffIDs)
		if err != nil {
			return err
		}
		result = &CreateProjectResult{Project: project, Assignments: added}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateProject はプロジェクト名とクライアントを更新します。
func (s *Service) UpdateProject(ctx context.Context, in UpdateProjectInput) (*Project, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, record.ErrInvalidID
	}

	var updated *Project
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.activeProject(txCtx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, ok := record.NormalizeName(*in.Name)
			if !ok {
				return ErrEmptyName
			}
			existing.Name = name
		}
		if in.ClientID != nil {
			clientID, err := s.normalizeClient(txCtx, *in.ClientID)
			if err != nil {
				return err
			}
			existing.ClientID = clientID
		}
		existing.Touch(s.clock.Now())

		result, err := s.projects.Update(txCtx, existing)
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

// RemoveProject はプロジェクトを論理削除します。割り当てと作業ログは残ります。
func (s *Service) RemoveProject(ctx context.Context, id string) error {
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return record.Remove(txCtx, s.projects, id, s.clock.Now())
	})
}

// GetProject は削除済みを含めて ID でプロジェクトを取得します。
func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, record.ErrInvalidID
	}
	return s.projects.FindByID(ctx, trimmed)
}

// ListProjects はプロジェクトを一覧します。
func (s *Service) ListProjects(ctx context.Context, in ListProjectsInput) (*ListProjectsResult, error) {
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

	projects, next, err := s.projects.List(ctx, ListProjectsFilter{
		Status:   status,
		ClientID: strings.TrimSpace(in.ClientID),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &ListProjectsResult{Projects: projects, NextPageToken: next}, nil
}

// CountActiveProjects は有効なプロジェクト数を返します。
func (s *Service) CountActiveProjects(ctx context.Context) (int, error) {
	return s.projects.CountActive(ctx)
}

// AssignStaff はスタッフをプロジェクトへ追加します。既に割り当て済みのスタッフはスキップします。
// すべての ID を検証してから書き込むため、未知の ID があれば何も書き込みません。
func (s *Service) AssignStaff(ctx context.Context, in StaffSelectionInput) (*AssignStaffResult, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	staffIDs := uniqueIDs(in.StaffIDs)
	if projectID == "" || len(staffIDs) == 0 {
		return nil, ErrSelectionRequired
	}

	var result *AssignStaffResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockKey(txCtx, projectLockKey(projectID)); err != nil {
			return err
		}
		if _, err := s.activeProject(txCtx, projectID); err != nil {
			return err
		}
		if err := s.ensureStaffExist(txCtx, staffIDs); err != nil {
			return err
		}

		added, skipped, err := s.insertStaff(txCtx, projectID, staffIDs)
		if err != nil {
			return err
		}
		result = &AssignStaffResult{Added: added, Skipped: skipped}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ReplaceStaff はプロジェクトの割り当てを指定されたスタッフの集合に置き換えます。
// 指定外の有効な割り当ては inactive になり、不足分は追加されます。空の集合はすべての割り当てを外します。
func (s *Service) ReplaceStaff(ctx context.Context, in StaffSelectionInput) (*ReplaceStaffResult, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return nil, ErrSelectionRequired
	}
	staffIDs := uniqueIDs(in.StaffIDs)

	var result *ReplaceStaffResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockKey(txCtx, projectLockKey(projectID)); err != nil {
			return err
		}
		if _, err := s.activeProject(txCtx, projectID); err != nil {
			return err
		}
		if err := s.ensureStaffExist(txCtx, staffIDs); err != nil {
			return err
		}

		current, err := s.assignments.ListActiveStaff(txCtx, projectID)
		if err != nil {
			return err
		}

		wanted := make(map[string]bool, len(staffIDs))
		for _, id := range staffIDs {
			wanted[id] = true
		}

		now := s.clock.Now()
		var removed []string
		for _, a := range current {
			if wanted[a.StaffID] {
				continue
			}
			if err := s.assignments.DeactivateStaff(txCtx, projectID, a.StaffID, now); err != nil {
				return err
			}
			removed = append(removed, a.StaffID)
		}

		added, _, err := s.insertStaff(txCtx, projectID, staffIDs)
		if err != nil {
			return err
		}
		result = &ReplaceStaffResult{Added: added, Removed: removed}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// UnassignStaff はスタッフの有効な割り当てを inactive にします。割り当てがなければ何もしません。
func (s *Service) UnassignStaff(ctx context.Context, projectID, staffID string) error {
	projectID = strings.TrimSpace(projectID)
	staffID = strings.TrimSpace(staffID)
	if projectID == "" || staffID == "" {
		return ErrSelectionRequired
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.assignments.DeactivateStaff(txCtx, projectID, staffID, s.clock.Now())
	})
}

// AssignTask はタスクをプロジェクトへ割り当てます。有効な割り当てが既にあれば ErrDuplicateAssignment です。
func (s *Service) AssignTask(ctx context.Context, projectID, taskID string) (*TaskAssignment, error) {
	projectID = strings.TrimSpace(projectID)
	taskID = strings.TrimSpace(taskID)
	if projectID == "" || taskID == "" {
		return nil, ErrSelectionRequired
	}

	var created *TaskAssignment
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockKey(txCtx, projectLockKey(projectID)); err != nil {
			return err
		}
		if _, err := s.activeProject(txCtx, projectID); err != nil {
			return err
		}
		ok, err := s.dir.IsActive(txCtx, directory.CollectionTasks, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTaskNotFound
		}

		exists, err := s.assignments.HasActiveTask(txCtx, projectID, taskID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateAssignment
		}

		result, err := s.assignments.InsertTask(txCtx, &TaskAssignment{
			Meta:      record.NewMeta(s.clock.Now()),
			ProjectID: projectID,
			TaskID:    taskID,
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

// UnassignTask はタスクの有効な割り当てを inactive にします。割り当てがなければ何もしません。
func (s *Service) UnassignTask(ctx context.Context, projectID, taskID string) error {
	projectID = strings.TrimSpace(projectID)
	taskID = strings.TrimSpace(taskID)
	if projectID == "" || taskID == "" {
		return ErrSelectionRequired
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.assignments.DeactivateTask(txCtx, projectID, taskID, s.clock.Now())
	})
}

// IsStaffAssigned はスタッフがプロジェクトに有効に割り当てられているかを返します。
func (s *Service) IsStaffAssigned(ctx context.Context, projectID, staffID string) (bool, error) {
	return s.assignments.HasActiveStaff(ctx, strings.TrimSpace(projectID), strings.TrimSpace(staffID))
}

// IsTaskAssigned はタスクがプロジェクトに有効に割り当てられているかを返します。
func (s *Service) IsTaskAssigned(ctx context.Context, projectID, taskID string) (bool, error) {
	return s.assignments.HasActiveTask(ctx, strings.TrimSpace(projectID), strings.TrimSpace(taskID))
}

// ListStaffAssignments はプロジェクトの有効なスタッフ割り当てを表示名付きで返します。
func (s *Service) ListStaffAssignments(ctx context.Context, projectID string) ([]*StaffAssignmentView, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, record.ErrInvalidID
	}

	items, err := s.assignments.ListActiveStaff(ctx, projectID)
	if err != nil {
		return nil, err
	}

	names := newNameCache(s)
	views := make([]*StaffAssignmentView, 0, len(items))
	for _, a := range items {
		projectName, err := names.project(ctx, a.ProjectID)
		if err != nil {
			return nil, err
		}
		staffName, err := names.staff(ctx, a.StaffID)
		if err != nil {
			return nil, err
		}
		views = append(views, &StaffAssignmentView{StaffAssignment: *a, ProjectName: projectName, StaffName: staffName})
	}
	return views, nil
}

// ListTaskAssignments はプロジェクトの有効なタスク割り当てを表示名付きで返します。
func (s *Service) ListTaskAssignments(ctx context.Context, projectID string) ([]*TaskAssignmentView, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, record.ErrInvalidID
	}

	items, err := s.assignments.ListActiveTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.taskViews(ctx, items)
}

// ListTaskAssignmentsForStaff はスタッフが作業できるプロジェクトとタスクの組を返します。
func (s *Service) ListTaskAssignmentsForStaff(ctx context.Context, staffID string) ([]*TaskAssignmentView, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return nil, record.ErrInvalidID
	}

	items, err := s.assignments.ListActiveTasksForStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return s.taskViews(ctx, items)
}

func (s *Service) taskViews(ctx context.Context, items []*TaskAssignment) ([]*TaskAssignmentView, error) {
	names := newNameCache(s)
	views := make([]*TaskAssignmentView, 0, len(items))
	for _, a := range items {
		projectName, err := names.project(ctx, a.ProjectID)
		if err != nil {
			return nil, err
		}
		taskName, err := names.task(ctx, a.TaskID)
		if err != nil {
			return nil, err
		}
		views = append(views, &TaskAssignmentView{TaskAssignment: *a, ProjectName: projectName, TaskName: taskName})
	}
	return views, nil
}

func (s *Service) insertStaff(ctx context.Context, projectID string, staffIDs []string) ([]*StaffAssignment, []string, error) {
	now := s.clock.Now()
	added := make([]*StaffAssignment, 0, len(staffIDs))
	var skipped []string
	for _, staffID := range staffIDs {
		a := &StaffAssignment{
			Meta:       record.NewMeta(now),
			ProjectID:  projectID,
			StaffID:    staffID,
			AssignedAt: now,
		}
		inserted, err := s.assignments.InsertStaff(ctx, a)
		if err != nil {
			return nil, nil, err
		}
		if !inserted {
			skipped = append(skipped, staffID)
			continue
		}
		added = append(added, a)
	}
	return added, skipped, nil
}

func (s *Service) activeProject(ctx context.Context, id string) (*Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.IsActive() {
		return nil, ErrNotActive
	}
	return project, nil
}

// ensureStaffExist は削除されていないスタッフのみを受け付けます。
func (s *Service) ensureStaffExist(ctx context.Context, ids []string) error {
	for _, id := range ids {
		found, err := s.roster.GetStaff(ctx, id)
		if err != nil {
			if errors.Is(err, record.ErrNotFound) {
				return ErrStaffNotFound
			}
			return err
		}
		if found.Status == record.StatusDeleted {
			return ErrStaffNotFound
		}
	}
	return nil
}

func (s *Service) normalizeClient(ctx context.Context, raw string) (string, error) {
	clientID := strings.TrimSpace(raw)
	if clientID == "" || strings.EqualFold(clientID, noClient) {
		return "", nil
	}
	ok, err := s.dir.IsActive(ctx, directory.CollectionClients, clientID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrClientNotFound
	}
	return clientID, nil
}

func projectLockKey(projectID string) string {
	return "project:" + projectID
}

// nameCache は一覧表示中の名前解決結果を保持します。解決できない ID は UnknownName になります。
type nameCache struct {
	svc          *Service
	projectNames map[string]string
	staffNames   map[string]string
	taskNames    map[string]string
}

func newNameCache(svc *Service) *nameCache {
	return &nameCache{
		svc:          svc,
		projectNames: make(map[string]string),
		staffNames:   make(map[string]string),
		taskNames:    make(map[string]string),
	}
}

func (c *nameCache) project(ctx context.Context, id string) (string, error) {
	return c.lookup(c.projectNames, id, func() (string, error) {
		p, err := c.svc.projects.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		return p.Name, nil
	})
}

func (c *nameCache) staff(ctx context.Context, id string) (string, error) {
	return c.lookup(c.staffNames, id, func() (string, error) {
		st, err := c.svc.roster.GetStaff(ctx, id)
		if err != nil {
			return "", err
		}
		return st.Name, nil
	})
}

func (c *nameCache) task(ctx context.Context, id string) (string, error) {
	return c.lookup(c.taskNames, id, func() (string, error) {
		e, err := c.svc.dir.GetEntry(ctx, directory.EntryRef{Collection: directory.CollectionTasks, ID: id})
		if err != nil {
			return "", err
		}
		return e.Name, nil
	})
}

func (c *nameCache) lookup(cache map[string]string, id string, resolve func() (string, error)) (string, error) {
	if name, ok := cache[id]; ok {
		return name, nil
	}
	name, err := resolve()
	if err != nil {
		if !errors.Is(err, record.ErrNotFound) && !errors.Is(err, record.ErrInvalidID) {
			return "", err
		}
		name = UnknownName
	}
	cache[id] = name
	return name, nil
}

var _ Roster = (*staff.Service)(nil)
