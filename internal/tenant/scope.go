package tenant

import (
	"go-sitepass/internal/shared/contextutil"

	"gorm.io/gorm"
)

const (
	RoleWorker     = "WORKER"
	RoleTeamAdmin  = "TEAM_ADMIN"
	RoleSiteAdmin  = "SITE_ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Filter narrows a query to the placement an administrator manages. Empty
// fields do not filter.
type Filter struct {
	CompanyID string
	SiteID    string
	TeamID    string
}

// ForActor returns the widest filter the actor may see. Non-admin actors get
// a filter that matches only their own team.
func ForActor(actor contextutil.Actor) Filter {
	switch actor.Role {
	case RoleSuperAdmin:
		return Filter{}
	case RoleSiteAdmin:
		return Filter{CompanyID: actor.CompanyID, SiteID: actor.SiteID}
	default:
		return Filter{CompanyID: actor.CompanyID, SiteID: actor.SiteID, TeamID: actor.TeamID}
	}
}

func (f Filter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.CompanyID != "" {
			db = db.Where("company_id = ?", f.CompanyID)
		}
		if f.SiteID != "" {
			db = db.Where("site_id = ?", f.SiteID)
		}
		if f.TeamID != "" {
			db = db.Where("team_id = ?", f.TeamID)
		}
		return db
	}
}

// Covers reports whether an actor administers the given placement.
// SUPER_ADMIN covers everything; SITE_ADMIN covers its company and site;
// TEAM_ADMIN covers only its own team. WORKER covers nothing.
func Covers(actor contextutil.Actor, companyID, siteID, teamID string) bool {
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleSiteAdmin:
		return actor.CompanyID == companyID && actor.SiteID == siteID
	case RoleTeamAdmin:
		return actor.CompanyID == companyID && actor.SiteID == siteID && actor.TeamID == teamID
	default:
		return false
	}
}

func IsAdmin(role string) bool {
	switch role {
	case RoleTeamAdmin, RoleSiteAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
