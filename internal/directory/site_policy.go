package directory

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/bradfitz/latlong"
)

const (
	DefaultDayStartHour = 4
	DefaultSeniorAge    = 65
	policyManual        = "MANUAL"
)

var autoPolicyPattern = regexp.MustCompile(`^AUTO_([0-9]{1,2})H$`)

// CheckoutPolicy is either MANUAL or AUTO_{N}H with 1 <= N <= 24.
type CheckoutPolicy struct {
	Auto  bool
	Hours int
}

// ParseCheckoutPolicy never fails: anything that is not a well formed
// AUTO_{N}H value is treated as MANUAL so a bad row can never auto-close.
func ParseCheckoutPolicy(raw string) CheckoutPolicy {
	m := autoPolicyPattern.FindStringSubmatch(raw)
	if m == nil {
		return CheckoutPolicy{}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 24 {
		return CheckoutPolicy{}
	}
	return CheckoutPolicy{Auto: true, Hours: n}
}

func (p CheckoutPolicy) String() string {
	if !p.Auto {
		return policyManual
	}
	return fmt.Sprintf("AUTO_%dH", p.Hours)
}

// Duration is the auto-close window, zero for MANUAL.
func (p CheckoutPolicy) Duration() time.Duration {
	if !p.Auto {
		return 0
	}
	return time.Duration(p.Hours) * time.Hour
}

type SitePolicy struct {
	SiteID       string
	CompanyID    string
	DayStartHour int
	Checkout     CheckoutPolicy
	Location     *time.Location
	// SeniorAge is the age from which a worker is flagged as senior on
	// check-in.
	SeniorAge    int
}

// WorkDate attributes t to a calendar day in the site's zone; anything before
// DayStartHour belongs to the previous day. The result is midnight UTC of
// that calendar date so it compares cleanly with DATE columns.
func (p SitePolicy) WorkDate(t time.Time) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	if local.Hour() < p.DayStartHour {
		local = local.AddDate(0, 0, -1)
	}
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// resolveTimezone picks the explicit zone name, then the zone at the site's
// coordinates, then fallback.
func resolveTimezone(explicit *string, lat, lng *float64, fallback string) string {
	if explicit != nil && *explicit != "" {
		if _, err := time.LoadLocation(*explicit); err == nil {
			return *explicit
		}
	}
	if lat != nil && lng != nil {
		if name := latlong.LookupZoneName(*lat, *lng); name != "" {
			return name
		}
	}
	return fallback
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func normalizeDayStartHour(h, fallback int) int {
	if h < 0 || h > 23 {
		return fallback
	}
	return h
}

func normalizeSeniorAge(age int) int {
	if age <= 0 {
		return DefaultSeniorAge
	}
	return age
}
