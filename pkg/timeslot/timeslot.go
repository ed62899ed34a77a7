// Package timeslot parses and formats the date and time strings used by
// availability windows and interview schedules.
//
// Windows keep the raw strings the client submitted. Parsing only happens when
// a value must be compared against the clock or against another slot.
package timeslot

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// SlotDateLayout is MM/DD/YYYY. Single-digit month and day are accepted when parsing.
	SlotDateLayout = "01/02/2006"
	// RescheduleDateLayout is DD/MM/YYYY.
	RescheduleDateLayout = "02/01/2006"
	// ISODateLayout is YYYY-MM-DD.
	ISODateLayout = "2006-01-02"
	// ClockLayout is h:mm a.
	ClockLayout = "3:04 PM"

	displayDateLayout = "Monday, January 2, 2006"
)

var (
	clockRegex = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] ?([AaPp][Mm])$`)
	slotDateRx = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	isoDateRx  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Slot is a date/from/to triple in display form.
type Slot struct {
	Date string
	From string
	To   string
}

// IsTwelveHourClock reports whether s looks like H:MM AM/PM.
func IsTwelveHourClock(s string) bool {
	return clockRegex.MatchString(strings.TrimSpace(s))
}

// ParseClock parses a 12-hour clock value and returns the hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("timeslot: invalid 12-hour time %q", s)
	}
	// Normalise to "3:04 PM" so time.Parse accepts lower case and missing spaces.
	meridiem := strings.ToUpper(m[2])
	clock := strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, m[2]), " "))
	t, err := time.Parse(ClockLayout, clock+" "+meridiem)
	if err != nil {
		return 0, 0, fmt.Errorf("timeslot: invalid 12-hour time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// ParseSlotDate parses an MM/DD/YYYY availability date in loc.
func ParseSlotDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !slotDateRx.MatchString(s) {
		return time.Time{}, fmt.Errorf("timeslot: invalid MM/DD/YYYY date %q", s)
	}
	return time.ParseInLocation("1/2/2006", s, location(loc))
}

// ParseRescheduleDate parses a DD/MM/YYYY date in loc.
func ParseRescheduleDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !slotDateRx.MatchString(s) {
		return time.Time{}, fmt.Errorf("timeslot: invalid DD/MM/YYYY date %q", s)
	}
	return time.ParseInLocation("2/1/2006", s, location(loc))
}

// ParseScheduleDate accepts the date formats clients send when booking:
// YYYY-MM-DD or MM/DD/YYYY.
func ParseScheduleDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if isoDateRx.MatchString(s) {
		return time.ParseInLocation(ISODateLayout, s, location(loc))
	}
	return ParseSlotDate(s, loc)
}

// At returns the instant on day's calendar date at the given 12-hour clock.
func At(day time.Time, clock string) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// Instant is At converted to UTC, the form interview start times are stored in.
func Instant(day time.Time, clock string) (time.Time, error) {
	t, err := At(day, clock)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// SlotEnd returns the instant an availability window ends.
func SlotEnd(date, to string, loc *time.Location) (time.Time, error) {
	day, err := ParseSlotDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return At(day, to)
}

// IsExpired reports whether the window ending at date+to lies strictly before
// now. Unparsable values count as expired.
func IsExpired(date, to string, now time.Time) bool {
	end, err := SlotEnd(date, to, now.Location())
	if err != nil {
		return true
	}
	return end.Before(now)
}

// DisplayDate renders a weekday-qualified date, e.g. "Monday, June 10, 2024".
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// SlotDate renders t as MM/DD/YYYY.
func SlotDate(t time.Time) string {
	return t.Format(SlotDateLayout)
}

// TimeRange renders "10:00 AM - 11:00 AM".
func TimeRange(from, to string) string {
	return strings.TrimSpace(from) + " - " + strings.TrimSpace(to)
}

// Weekday returns the English day name for t.
func Weekday(t time.Time) string {
	return t.Weekday().String()
}

// SameSlot compares two triples. Dates and clocks are compared by value when
// they parse, and by trimmed text otherwise.
func SameSlot(a, b Slot) bool {
	return sameDate(a.Date, b.Date) && sameClock(a.From, b.From) && sameClock(a.To, b.To)
}

func sameDate(a, b string) bool {
	da, errA := ParseScheduleDate(a, time.UTC)
	db, errB := ParseScheduleDate(b, time.UTC)
	if errA != nil || errB != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return da.Equal(db)
}

func sameClock(a, b string) bool {
	ha, ma, errA := ParseClock(a)
	hb, mb, errB := ParseClock(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return ha == hb && ma == mb
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
