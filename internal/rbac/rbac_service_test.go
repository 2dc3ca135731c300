package rbac

import (
	"testing"

	"go-sitepass/internal/domain"
	"go-sitepass/internal/rbac/infra"
	"go-sitepass/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	enforcer, err := infra.NewEnforcer("")
	require.NoError(t, err)

	svc, err := NewService(enforcer)
	require.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"worker checks in", tenant.RoleWorker, "attendance", "write", true},
		{"worker cannot invite", tenant.RoleWorker, "worker", "invite", false},
		{"team admin invites", tenant.RoleTeamAdmin, "worker", "invite", true},
		{"team admin inherits attendance", tenant.RoleTeamAdmin, "attendance", "write", true},
		{"site admin manages", tenant.RoleSiteAdmin, "worker", "manage", true},
		{"super admin reads", tenant.RoleSuperAdmin, "worker", "read", true},
		{"empty role denied", "", "attendance", "read", false},
		{"unknown role denied", "GUEST", "attendance", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				WorkerID: "w-1",
				Role:     tt.role,
				Resource: tt.resource,
				Action:   tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_Permissions(t *testing.T) {
	svc := newTestService(t)

	workerPerms, err := svc.Permissions(tenant.RoleWorker)
	assert.NoError(t, err)
	assert.Contains(t, workerPerms, domain.PermissionResponse{Resource: "attendance", Action: "write"})
	assert.NotContains(t, workerPerms, domain.PermissionResponse{Resource: "worker", Action: "manage"})

	adminPerms, err := svc.Permissions(tenant.RoleSiteAdmin)
	assert.NoError(t, err)
	assert.Contains(t, adminPerms, domain.PermissionResponse{Resource: "worker", Action: "manage"})
	assert.Contains(t, adminPerms, domain.PermissionResponse{Resource: "attendance", Action: "read"})
}
