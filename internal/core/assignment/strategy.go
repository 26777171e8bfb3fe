package assignment

import (
	"context"
	"strings"

	"github.com/ogurasousui/timetrack/internal/core/directory"
)

// Strategy はプロジェクト作成時にスタッフを割り当てる方法です。
// AllStaff・TeamStaff・SelectedStaff のいずれかで、作成時に一度だけ解決されます。
type Strategy interface {
	strategy()
}

// AllStaff は作成時点の有効な全スタッフを割り当てます。
type AllStaff struct{}

// TeamStaff は作成時点でチームに所属する有効なスタッフを割り当てます。
type TeamStaff struct {
	TeamID string
}

// SelectedStaff は指定されたスタッフを割り当てます。
type SelectedStaff struct {
	StaffIDs []string
}

func (AllStaff) strategy()      {}
func (TeamStaff) strategy()     {}
func (SelectedStaff) strategy() {}

// resolveStrategy は Strategy を具体的なスタッフ ID の集合に解決します。
func (s *Service) resolveStrategy(ctx context.Context, st Strategy) ([]string, error) {
	switch v := st.(type) {
	case AllStaff:
		return s.roster.ActiveStaffIDs(ctx, "")

	case TeamStaff:
		teamID := strings.TrimSpace(v.TeamID)
		if teamID == "" {
			return nil, ErrInvalidStrategy
		}
		ok, err := s.dir.IsActive(ctx, directory.CollectionTeams, teamID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrTeamNotFound
		}
		return s.roster.ActiveStaffIDs(ctx, teamID)

	case SelectedStaff:
		ids := uniqueIDs(v.StaffIDs)
		if len(ids) == 0 {
			return nil, ErrSelectionRequired
		}
		if err := s.ensureStaffExist(ctx, ids); err != nil {
			return nil, err
		}
		return ids, nil

	default:
		return nil, ErrInvalidStrategy
	}
}

func uniqueIDs(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, id := range raw {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}
