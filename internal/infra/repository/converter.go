package repository

import (
	"kelurahan-booking/internal/domain/booking"
)

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNull(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// specColumns splits a TimeSpec into the three nullable columns it is
// stored as: session, start_time, end_time.
func specColumns(ts booking.TimeSpec) (session, start, end *string) {
	if ts.IsSession() {
		s := ts.Session().String()
		return &s, nil, nil
	}
	st, en := ts.Interval()
	stStr, enStr := st.String(), en.String()
	return nil, &stStr, &enStr
}

func specFromColumns(session, start, end *string) (booking.TimeSpec, error) {
	var sess *booking.Session
	if session != nil {
		s, err := booking.ParseSession(*session)
		if err != nil {
			return booking.TimeSpec{}, err
		}
		sess = &s
	}

	var st, en *booking.TimeOfDay
	if start != nil {
		t, err := booking.ParseTimeOfDay(*start)
		if err != nil {
			return booking.TimeSpec{}, err
		}
		st = &t
	}
	if end != nil {
		t, err := booking.ParseTimeOfDay(*end)
		if err != nil {
			return booking.TimeSpec{}, err
		}
		en = &t
	}

	return booking.NewTimeSpec(sess, st, en)
}
