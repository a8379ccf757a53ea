package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidTimeOfDay = errors.New("time must be in HH:MM format")
	ErrInvalidInterval  = errors.New("start time must be before end time")
	ErrInvalidSession   = errors.New("unknown session")
	ErrEmptyTimeSpec    = errors.New("either a session or a start/end time is required")
)

// Session is a fixed half- or full-day slot. Meeting rooms book by session;
// community-center rooms book by explicit hours.
type Session string

const (
	Session1       Session = "SESSION_1"
	Session2       Session = "SESSION_2"
	SessionFullDay Session = "FULL_DAY"
)

func ParseSession(raw string) (Session, error) {
	s := Session(raw)
	switch s {
	case Session1, Session2, SessionFullDay:
		return s, nil
	default:
		return "", ErrInvalidSession
	}
}

func (s Session) String() string {
	return string(s)
}

func (s Session) Label() string {
	switch s {
	case Session1:
		return "Session 1 (09:00 - 12:00)"
	case Session2:
		return "Session 2 (13:00 - 16:00)"
	case SessionFullDay:
		return "Session 1 & 2 (Full Day)"
	default:
		return string(s)
	}
}

// Window returns the wall-clock range a session occupies. The full day is
// the union of both half-sessions.
func (s Session) Window() (start, end TimeOfDay) {
	switch s {
	case Session1:
		return TimeOfDay{9 * 60}, TimeOfDay{12 * 60}
	case Session2:
		return TimeOfDay{13 * 60}, TimeOfDay{16 * 60}
	default:
		return TimeOfDay{9 * 60}, TimeOfDay{16 * 60}
	}
}

// TimeOfDay is minutes since midnight.
type TimeOfDay struct {
	minutes int
}

var timeOfDayPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{h*60 + min}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// TimeSpec holds exactly one of the two time representations. When both a
// session and an interval are supplied on input, the session wins and the
// interval is discarded (normalization, not an error).
type TimeSpec struct {
	session *Session
	start   *TimeOfDay
	end     *TimeOfDay
}

func NewSessionSpec(s Session) (TimeSpec, error) {
	if _, err := ParseSession(string(s)); err != nil {
		return TimeSpec{}, err
	}
	return TimeSpec{session: &s}, nil
}

func NewIntervalSpec(start, end TimeOfDay) (TimeSpec, error) {
	if !start.Before(end) {
		return TimeSpec{}, ErrInvalidInterval
	}
	return TimeSpec{start: &start, end: &end}, nil
}

// NewTimeSpec normalizes raw input into a single representation.
func NewTimeSpec(session *Session, start, end *TimeOfDay) (TimeSpec, error) {
	if session != nil {
		return NewSessionSpec(*session)
	}
	if start != nil && end != nil {
		return NewIntervalSpec(*start, *end)
	}
	return TimeSpec{}, ErrEmptyTimeSpec
}

func (ts TimeSpec) IsSession() bool {
	return ts.session != nil
}

func (ts TimeSpec) IsZero() bool {
	return ts.session == nil && ts.start == nil
}

// Session is only meaningful when IsSession reports true.
func (ts TimeSpec) Session() Session {
	if ts.session == nil {
		return ""
	}
	return *ts.session
}

func (ts TimeSpec) Interval() (start, end TimeOfDay) {
	if ts.start == nil || ts.end == nil {
		return TimeOfDay{}, TimeOfDay{}
	}
	return *ts.start, *ts.end
}

// Window projects either representation onto a wall-clock range, which is
// what makes cross-mode overlap checks possible.
func (ts TimeSpec) Window() (start, end TimeOfDay) {
	if ts.session != nil {
		return ts.session.Window()
	}
	return ts.Interval()
}

// Overlaps applies the half-open overlap rule to the projected windows.
// Touching endpoints do not overlap.
func (ts TimeSpec) Overlaps(other TimeSpec) bool {
	s1, e1 := ts.Window()
	s2, e2 := other.Window()
	return s1.Before(e2) && s2.Before(e1)
}

// Describe renders the slot for human-readable notifications.
func (ts TimeSpec) Describe() string {
	if ts.session != nil {
		return ts.session.Label()
	}
	return ts.start.String() + " - " + ts.end.String()
}
