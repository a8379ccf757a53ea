//go:build unit

package repository

import (
	"testing"

	"kelurahan-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullStringHelpers(t *testing.T) {
	t.Run("nullIfEmpty", func(t *testing.T) {
		assert.Nil(t, nullIfEmpty(""))
		v := nullIfEmpty("RPTRA-01")
		require.NotNil(t, v)
		assert.Equal(t, "RPTRA-01", *v)
	})

	t.Run("emptyIfNull", func(t *testing.T) {
		// rooms.code is NULL for office rooms; the view carries "".
		assert.Equal(t, "", emptyIfNull(nil))
		v := "RPTRA-01"
		assert.Equal(t, "RPTRA-01", emptyIfNull(&v))
	})
}

func TestSpecColumns(t *testing.T) {
	t.Run("session spec fills only the session column", func(t *testing.T) {
		s := booking.Session1
		spec, err := booking.NewTimeSpec(&s, nil, nil)
		require.NoError(t, err)

		session, start, end := specColumns(spec)
		require.NotNil(t, session)
		assert.Equal(t, "SESSION_1", *session)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("interval spec fills the time columns", func(t *testing.T) {
		start, err := booking.ParseTimeOfDay("10:00")
		require.NoError(t, err)
		end, err := booking.ParseTimeOfDay("11:30")
		require.NoError(t, err)
		spec, err := booking.NewTimeSpec(nil, &start, &end)
		require.NoError(t, err)

		session, st, en := specColumns(spec)
		assert.Nil(t, session)
		require.NotNil(t, st)
		require.NotNil(t, en)
		assert.Equal(t, "10:00", *st)
		assert.Equal(t, "11:30", *en)
	})

	t.Run("round trip through specFromColumns", func(t *testing.T) {
		s := booking.SessionFullDay
		spec, err := booking.NewTimeSpec(&s, nil, nil)
		require.NoError(t, err)

		session, st, en := specColumns(spec)
		restored, err := specFromColumns(session, st, en)
		require.NoError(t, err)
		assert.Equal(t, spec, restored)
	})
}
