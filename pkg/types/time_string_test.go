package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"23:59", false},
		{"00:00", false},
		{"24:00", false}, // эксклюзивная верхняя граница
		{"24:01", true},
		{"25:00", true},
		{"09:60", true},
		{"9:00", true},
		{"09-00", true},
		{"", true},
		{"09:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = TimeString("24:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1440, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	ts, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:00"))

	// Некорректные значения не считаются "раньше"
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_MinutesBetween(t *testing.T) {
	d, err := TimeString("09:00").MinutesBetween("10:10")
	require.NoError(t, err)
	assert.Equal(t, 70, d)

	d, err = TimeString("10:00").MinutesBetween("09:00")
	require.NoError(t, err)
	assert.Equal(t, -60, d)
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 3, 12, 15, 45, 11, 0, time.UTC)

	got, err := TimeString("09:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC), got)

	// "24:00" переходит на начало следующего дня
	got, err = TimeString("24:00").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("14:15:00.000000")))
	assert.Equal(t, TimeString("14:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
