package attendance

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// Fixed-date Korean public holidays. Lunar holidays (Seollal, Chuseok,
// Buddha's Birthday) move every year and are not listed.
var (
	krNewYear       = fixedHoliday("New Year's Day", time.January, 1)
	krIndependence  = fixedHoliday("Independence Movement Day", time.March, 1)
	krChildrensDay  = fixedHoliday("Children's Day", time.May, 5)
	krMemorialDay   = fixedHoliday("Memorial Day", time.June, 6)
	krLiberationDay = fixedHoliday("Liberation Day", time.August, 15)
	krFoundationDay = fixedHoliday("National Foundation Day", time.October, 3)
	krHangulDay     = fixedHoliday("Hangul Day", time.October, 9)
	krChristmasDay  = fixedHoliday("Christmas Day", time.December, 25)
	krCalendar      = newBusinessCalendar()
)

func fixedHoliday(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Type:  cal.ObservancePublic,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

func newBusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		krNewYear,
		krIndependence,
		krChildrensDay,
		krMemorialDay,
		krLiberationDay,
		krFoundationDay,
		krHangulDay,
		krChristmasDay,
	)
	return c
}

// businessDaysInMonth counts weekdays in the month starting at first that are
// not public holidays.
func businessDaysInMonth(first time.Time) int {
	n := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if krCalendar.IsWorkday(d) {
			n++
		}
	}
	return n
}
