package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusWorking  = "WORKING"
	StatusWorkDone = "WORK_DONE"

	workDateLayout = "2006-01-02"
)

// Record is one worker's attendance for one work date. A record is open while
// CheckOutAt is nil; uq_attendance_worker_workdate keeps one per work date.
type Record struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID   uuid.UUID  `gorm:"column:worker_id;type:uuid;not null;uniqueIndex:uq_attendance_worker_workdate,priority:1"`
	CompanyID  uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	SiteID     uuid.UUID  `gorm:"column:site_id;type:uuid;not null;index"`
	TeamID     uuid.UUID  `gorm:"column:team_id;type:uuid;not null"`
	WorkDate   time.Time  `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_worker_workdate,priority:2"`
	CheckInAt  time.Time  `gorm:"column:check_in_at;type:timestamptz;not null"`
	CheckOutAt *time.Time `gorm:"column:check_out_at;type:timestamptz"`
	AutoClosed bool       `gorm:"column:auto_closed;not null;default:false"`
	Age        *int       `gorm:"column:age"`
	IsSenior   bool       `gorm:"column:is_senior;not null;default:false"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "attendance_records"
}

func (r *Record) Open() bool {
	return r.CheckOutAt == nil
}

// DurationMinutes is whole minutes between check-in and check-out, zero while
// the record is open.
func (r *Record) DurationMinutes() int {
	if r.CheckOutAt == nil {
		return 0
	}
	return minutesBetween(r.CheckInAt, *r.CheckOutAt)
}

func minutesBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
