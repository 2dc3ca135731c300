package auth

import "time"

type LoginRequest struct {
	Phone             string `json:"phone" binding:"required,krmobile"`
	VerificationToken string `json:"verificationToken" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthWorker struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CompanyID string `json:"companyId"`
	SiteID    string `json:"siteId"`
	TeamID    string `json:"teamId"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type TokenResponse struct {
	AccessToken      string     `json:"accessToken"`
	AccessExpiresAt  time.Time  `json:"accessExpiresAt"`
	RefreshToken     string     `json:"refreshToken"`
	RefreshExpiresAt time.Time  `json:"refreshExpiresAt"`
	Worker           AuthWorker `json:"worker"`
}
