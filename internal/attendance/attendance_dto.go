package attendance

import "time"

type CheckInResponse struct {
	AttendanceID string    `json:"attendanceId"`
	WorkDate     string    `json:"workDate"`
	CheckInTime  time.Time `json:"checkInTime"`
	Status       string    `json:"status"`
	WorkerName   string    `json:"workerName,omitempty"`
	IsSenior     bool      `json:"isSenior"`
}

type QRResponse struct {
	Payload          string    `json:"payload"`
	ExpiresAt        time.Time `json:"expiresAt"`
	ExpiresInSeconds int       `json:"expiresInSeconds"`
}

type QRCheckInRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type CheckOutResponse struct {
	AttendanceID        string    `json:"attendanceId"`
	CheckOutTime        time.Time `json:"checkOutTime"`
	WorkDurationMinutes int       `json:"workDurationMinutes"`
	Status              string    `json:"status"`
}

type RecordResponse struct {
	ID              string     `json:"id"`
	WorkDate        string     `json:"workDate"`
	SiteID          string     `json:"siteId"`
	CheckInAt       time.Time  `json:"checkInAt"`
	CheckOutAt      *time.Time `json:"checkOutAt,omitempty"`
	AutoClosed      bool       `json:"autoClosed"`
	IsSenior        bool       `json:"isSenior"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
}

type MonthlySummary struct {
	DaysWorked      int `json:"daysWorked"`
	TotalMinutes    int `json:"totalMinutes"`
	AutoClosedCount int `json:"autoClosedCount"`
	BusinessDays    int `json:"businessDays"`
}

type MonthlyResponse struct {
	Month   string           `json:"month"`
	Records []RecordResponse `json:"records"`
	Summary MonthlySummary   `json:"summary"`
}
