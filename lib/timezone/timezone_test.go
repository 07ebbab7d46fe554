package timezone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseServerTime(t *testing.T) {
	naive, err := ParseServerTime("2026-08-30 15:00:00")
	require.NoError(t, err)
	// naive UTC 15:00 is midnight JST the next day
	require.Equal(t, 31, naive.Day())
	require.Equal(t, 0, naive.Hour())

	zoned, err := ParseServerTime("2026-08-30T15:00:00Z")
	require.NoError(t, err)
	require.True(t, naive.Equal(zoned))

	_, err = ParseServerTime("not a date")
	require.Error(t, err)
}
