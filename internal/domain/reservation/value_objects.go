package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime      = errors.New("time must be formatted as HH:MM")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrDateInPast       = errors.New("reservation date cannot be in the past")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// TimeOfDay is a wall clock time in minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	// time.Parse accepts a single digit hour, so the shape is checked first.
	if len(s) != len(timeLayout) || s[2] != ':' {
		return 0, ErrInvalidTime
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func ParseDate(s string) (time.Time, error) {
	if len(s) != len(dateLayout) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

type TimeSlot struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(date time.Time, start, end TimeOfDay) (TimeSlot, error) {
	if start >= end {
		return TimeSlot{}, ErrInvalidTimeRange
	}
	return TimeSlot{
		date:  Day(date),
		start: start,
		end:   end,
	}, nil
}

func ParseTimeSlot(date, start, end string) (TimeSlot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return TimeSlot{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, err
	}
	return NewTimeSlot(d, s, e)
}

func (ts TimeSlot) ValidateNotPast(today time.Time) error {
	if ts.date.Before(Day(today)) {
		return ErrDateInPast
	}
	return nil
}

// Overlaps is the half-open interval test on a single day. Touching bounds do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if !ts.date.Equal(other.date) {
		return false
	}
	return Overlaps(ts.start, ts.end, other.start, other.end)
}

// Minutes is the ledger amount carried by the slot.
func (ts TimeSlot) Minutes() int64 {
	return int64(ts.end - ts.start)
}

func (ts TimeSlot) Hours() float64 {
	return float64(ts.Minutes()) / 60.0
}

func (ts TimeSlot) Date() time.Time    { return ts.date }
func (ts TimeSlot) Start() TimeOfDay   { return ts.start }
func (ts TimeSlot) End() TimeOfDay     { return ts.end }
func (ts TimeSlot) IsZero() bool       { return ts.date.IsZero() }
func (ts TimeSlot) DateString() string { return FormatDate(ts.date) }

func (ts TimeSlot) StartAt() time.Time {
	return ts.date.Add(time.Duration(ts.start) * time.Minute)
}

func (ts TimeSlot) EndAt() time.Time {
	return ts.date.Add(time.Duration(ts.end) * time.Minute)
}
