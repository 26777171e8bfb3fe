package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/ogurasousui/timetrack/internal/core/record"
)

func TestRoleForStaffType(t *testing.T) {
	t.Parallel()

	if RoleForStaffType(" admin ") != RoleAdmin {
		t.Fatal("expected admin role for case-insensitive Admin type")
	}
	if RoleForStaffType("Developer") != RoleStaff {
		t.Fatal("expected staff role")
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	if _, err := RequireAdmin(context.Background()); !errors.Is(err, ErrNoActor) {
		t.Fatalf("expected ErrNoActor, got %v", err)
	}

	staffCtx := WithActor(context.Background(), Actor{StaffID: "s-1", Role: RoleStaff})
	_, err := RequireAdmin(staffCtx)
	if !errors.Is(err, ErrForbidden) || !errors.Is(err, record.ErrUnauthorized) {
		t.Fatalf("expected ErrForbidden of unauthorized kind, got %v", err)
	}

	adminCtx := WithActor(context.Background(), Actor{StaffID: "a-1", Role: RoleAdmin})
	a, err := RequireAdmin(adminCtx)
	if err != nil {
		t.Fatalf("RequireAdmin returned error: %v", err)
	}
	if a.StaffID != "a-1" {
		t.Fatalf("unexpected actor: %+v", a)
	}
}
