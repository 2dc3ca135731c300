package worker

import "time"

type Consents struct {
	Terms      bool `json:"terms"`
	Privacy    bool `json:"privacy"`
	ThirdParty bool `json:"thirdParty"`
	Location   bool `json:"location"`
}

func (c Consents) All() bool {
	return c.Terms && c.Privacy && c.ThirdParty && c.Location
}

type SelfEnrollRequest struct {
	VerificationToken string   `json:"verificationToken" binding:"required"`
	InviteReference   string   `json:"inviteReference"`
	Name              string   `json:"name" binding:"required,max=100"`
	BirthDate         string   `json:"birthDate" binding:"required,yyyymmdd"`
	Gender            string   `json:"gender" binding:"required,oneof=M F"`
	Nationality       string   `json:"nationality" binding:"required"`
	JobTitle          string   `json:"jobTitle" binding:"required"`
	CompanyID         string   `json:"companyId" binding:"required,uuid"`
	SiteID            string   `json:"siteId" binding:"required,uuid"`
	TeamID            string   `json:"teamId" binding:"required,uuid"`
	Consents          Consents `json:"consents"`
}

type EnrollResponse struct {
	WorkerID          string `json:"workerId"`
	Status            string `json:"status"`
	Transferred       bool   `json:"transferred,omitempty"`
	PreviousCompanyID string `json:"previousCompanyId,omitempty"`
}

type InviteRequest struct {
	TeamID      string `json:"teamId" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"required,krmobile"`
	BirthDate   string `json:"birthDate" binding:"required,yyyymmdd"`
	JobTitle    string `json:"jobTitle" binding:"required"`
	Role        string `json:"role" binding:"omitempty,oneof=WORKER TEAM_ADMIN"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender" binding:"omitempty,oneof=M F"`
}

type InviteResponse struct {
	WorkerID        string `json:"workerId"`
	Status          string `json:"status"`
	InviteReference string `json:"inviteReference"`
	// Warnings carries non-fatal problems such as a failed invite SMS.
	Warnings []string `json:"-"`
}

type InviteDetailResponse struct {
	WorkerID    string    `json:"workerId"`
	Name        string    `json:"name"`
	MaskedPhone string    `json:"maskedPhone"`
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName"`
	SiteID      string    `json:"siteId"`
	SiteName    string    `json:"siteName"`
	TeamID      string    `json:"teamId"`
	TeamName    string    `json:"teamName"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type ApproveRequest struct {
	TeamID string `json:"teamId" binding:"omitempty,uuid"`
	Role   string `json:"role" binding:"omitempty,oneof=WORKER TEAM_ADMIN"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type WorkerResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	BirthDate   string     `json:"birthDate"`
	Gender      string     `json:"gender,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
	JobTitle    string     `json:"jobTitle,omitempty"`
	CompanyID   string     `json:"companyId"`
	SiteID      string     `json:"siteId"`
	TeamID      string     `json:"teamId"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	RequestedAt *time.Time `json:"requestedAt,omitempty"`
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StatusView is the slice of a worker other packages need for gating.
type StatusView struct {
	WorkerID  string
	Phone     string
	Name      string
	BirthDate time.Time
	CompanyID string
	SiteID    string
	TeamID    string
	Role      string
	Status    string
}
