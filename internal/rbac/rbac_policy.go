package rbac

import (
	"go-sitepass/internal/domain"
	"go-sitepass/internal/tenant"
)

// Inheritance lists (child, parent): the child role has every permission of
// the parent.
var Inheritance = [][2]string{
	{tenant.RoleTeamAdmin, tenant.RoleWorker},
	{tenant.RoleSiteAdmin, tenant.RoleTeamAdmin},
	{tenant.RoleSuperAdmin, tenant.RoleSiteAdmin},
}

// Policies lists (role, resource, action).
var Policies = [][3]string{
	{tenant.RoleWorker, domain.ResourceAttendance, domain.ActionWrite},
	{tenant.RoleWorker, domain.ResourceAttendance, domain.ActionRead},
	{tenant.RoleWorker, domain.ResourceRBAC, domain.ActionRead},

	{tenant.RoleTeamAdmin, domain.ResourceWorker, domain.ActionRead},
	{tenant.RoleTeamAdmin, domain.ResourceWorker, domain.ActionInvite},
	{tenant.RoleTeamAdmin, domain.ResourceWorker, domain.ActionManage},
	{tenant.RoleTeamAdmin, domain.ResourceAttendance, domain.ActionManage},
}
