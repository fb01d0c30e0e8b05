// Package scheduling holds the room conflict logic shared by bookings, timetables
// and availability queries. Everything here is pure computation over records the
// caller has already fetched.
package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute resolution, stored as minutes since midnight.
type TimeOfDay int

// EndOfDay is 24:00, the only value past 23:59 an interval may end on.
const EndOfDay TimeOfDay = 24 * 60

// ParseTimeOfDay parses an "HH:mm" string. "24:00" is accepted as the end of the day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, fmt.Errorf("%w: time %q is not HH:mm", ErrInvalidInterval, s)
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: time %q out of range", ErrInvalidInterval, s)
	}
	return TimeOfDay(h*60 + m), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustTimeOfDay is ParseTimeOfDay for constants; it panics on malformed input.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeInterval is a half-open [Start, End) range on a weekday.
type TimeInterval struct {
	Day   time.Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval parses "HH:mm" bounds and validates the result.
func NewInterval(day time.Weekday, start, end string) (TimeInterval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeInterval{}, err
	}
	iv := TimeInterval{Day: day, Start: s, End: e}
	return iv, iv.Validate()
}

// Validate rejects zero or negative length intervals and bounds outside the day.
func (iv TimeInterval) Validate() error {
	if iv.Day < time.Sunday || iv.Day > time.Saturday {
		return fmt.Errorf("%w: weekday %d", ErrInvalidInterval, iv.Day)
	}
	if iv.Start < 0 || iv.End > EndOfDay {
		return fmt.Errorf("%w: %s-%s outside the day", ErrInvalidInterval, iv.Start, iv.End)
	}
	if iv.Start >= iv.End {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, iv.Start, iv.End)
	}
	return nil
}

// Minutes returns the interval length.
func (iv TimeInterval) Minutes() int { return int(iv.End - iv.Start) }

func (iv TimeInterval) String() string {
	return fmt.Sprintf("%s %s-%s", iv.Day, iv.Start, iv.End)
}

// Overlaps reports whether a and b share any minute. Intervals on different days
// never overlap; touching endpoints do not overlap.
func Overlaps(a, b TimeInterval) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}
	return overlaps(a, b), nil
}

// overlaps assumes both sides were validated.
func overlaps(a, b TimeInterval) bool {
	return a.Day == b.Day && a.Start < b.End && b.Start < a.End
}

// Date is a civil calendar date with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// DateOf takes the civil date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday derives the weekday on the proleptic Gregorian calendar. It is computed
// in UTC so the answer never depends on the server's zone or locale.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

func (d Date) String() string { return d.time().Format(dateLayout) }

func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.time().Compare(o.time())
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// AddDays shifts the date by n days.
func (d Date) AddDays(n int) Date { return DateOf(d.time().AddDate(0, 0, n)) }

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeekday accepts English weekday names or their common abbreviations, any case.
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInterval, s)
	}
	return wd, nil
}
