package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	require.NoError(t, Init("UTC"))
	t.Cleanup(func() { _ = Init("") })

	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-15T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestStartOfDayUTC_BusinessZone(t *testing.T) {
	require.NoError(t, Init("Europe/Paris"))
	t.Cleanup(func() { _ = Init("") })

	// 23:30 UTC on Jan 1 is already Jan 2 in Paris.
	got := StartOfDayUTC(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-01-02", FormatDate(got))
}

func TestInit_Invalid(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus"))
}
