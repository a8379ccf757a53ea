//go:build unit

package booking_test

import (
	"testing"

	"kelurahan-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionSpec(t *testing.T, s booking.Session) booking.TimeSpec {
	t.Helper()
	spec, err := booking.NewSessionSpec(s)
	require.NoError(t, err)
	return spec
}

func intervalSpec(t *testing.T, start, end string) booking.TimeSpec {
	t.Helper()
	s, err := booking.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := booking.ParseTimeOfDay(end)
	require.NoError(t, err)
	spec, err := booking.NewIntervalSpec(s, e)
	require.NoError(t, err)
	return spec
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "trailing seconds accepted", input: "13:00:00", want: "13:00"},
		{name: "surrounding whitespace", input: " 10:15 ", want: "10:15"},
		{name: "hour out of range", input: "24:00", wantErr: booking.ErrInvalidTimeOfDay},
		{name: "minute out of range", input: "10:60", wantErr: booking.ErrInvalidTimeOfDay},
		{name: "garbage", input: "morning", wantErr: booking.ErrInvalidTimeOfDay},
		{name: "empty", input: "", wantErr: booking.ErrInvalidTimeOfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParseTimeOfDay(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeSpec(t *testing.T) {
	s1 := booking.Session1
	start, _ := booking.ParseTimeOfDay("10:00")
	end, _ := booking.ParseTimeOfDay("12:00")

	t.Run("session wins over interval when both supplied", func(t *testing.T) {
		spec, err := booking.NewTimeSpec(&s1, &start, &end)
		require.NoError(t, err)
		assert.True(t, spec.IsSession())
		assert.Equal(t, booking.Session1, spec.Session())
	})

	t.Run("interval only", func(t *testing.T) {
		spec, err := booking.NewTimeSpec(nil, &start, &end)
		require.NoError(t, err)
		assert.False(t, spec.IsSession())
		gotStart, gotEnd := spec.Interval()
		assert.Equal(t, "10:00", gotStart.String())
		assert.Equal(t, "12:00", gotEnd.String())
	})

	t.Run("start must be before end", func(t *testing.T) {
		_, err := booking.NewTimeSpec(nil, &end, &start)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("equal start and end rejected", func(t *testing.T) {
		_, err := booking.NewTimeSpec(nil, &start, &start)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("neither representation", func(t *testing.T) {
		_, err := booking.NewTimeSpec(nil, nil, nil)
		assert.ErrorIs(t, err, booking.ErrEmptyTimeSpec)
	})

	t.Run("unknown session", func(t *testing.T) {
		bad := booking.Session("SESSION_3")
		_, err := booking.NewTimeSpec(&bad, nil, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidSession)
	})
}

func TestSessionWindow(t *testing.T) {
	tests := []struct {
		session    booking.Session
		start, end string
	}{
		{booking.Session1, "09:00", "12:00"},
		{booking.Session2, "13:00", "16:00"},
		{booking.SessionFullDay, "09:00", "16:00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.session), func(t *testing.T) {
			start, end := tt.session.Window()
			assert.Equal(t, tt.start, start.String())
			assert.Equal(t, tt.end, end.String())
		})
	}
}

func TestTimeSpecDescribe(t *testing.T) {
	assert.Equal(t, "Session 1 (09:00 - 12:00)", sessionSpec(t, booking.Session1).Describe())
	assert.Equal(t, "Session 2 (13:00 - 16:00)", sessionSpec(t, booking.Session2).Describe())
	assert.Equal(t, "Session 1 & 2 (Full Day)", sessionSpec(t, booking.SessionFullDay).Describe())
	assert.Equal(t, "10:00 - 11:30", intervalSpec(t, "10:00", "11:30").Describe())
}
