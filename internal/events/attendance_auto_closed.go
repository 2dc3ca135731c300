package events

import "time"

const AttendanceAutoClosedTopic = "sitepass.attendance.auto_closed.v1"

const AttendanceAutoClosedType = "attendance.auto_closed"

type AttendanceAutoClosedEvent struct {
	EventType       string    `json:"event_type"`
	AttendanceID    string    `json:"attendance_id"`
	WorkerID        string    `json:"worker_id"`
	SiteID          string    `json:"site_id"`
	WorkDate        string    `json:"work_date"`
	CheckInAt       time.Time `json:"check_in_at"`
	CheckOutAt      time.Time `json:"check_out_at"`
	DurationMinutes int       `json:"duration_minutes"`
	OccurredAt      time.Time `json:"occurred_at"`
}
