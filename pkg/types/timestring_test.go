package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "10:30", want: 630},
		{name: "closing time", input: "18:30", want: 1110},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "missing colon", input: "1030", wantErr: true},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Minutes()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("13:00")
	require.NoError(t, err)
	assert.Equal(t, "13:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("10:30"), FromMinutes(630))
	assert.Equal(t, TimeString("18:30"), FromMinutes(1110))

	// Values past midnight are capped, not wrapped
	assert.Equal(t, TimeString("23:59"), FromMinutes(1500))
	assert.Equal(t, TimeString("00:00"), FromMinutes(-10))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("16:30")

	got, err := start.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:30"), got)

	got, err = start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:00"), got)

	_, err = TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("10:30").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsBefore("13:00"))
	assert.True(t, TimeString("17:30").IsAfter("17:00"))
	assert.False(t, TimeString("17:00").IsAfter("17:00"))

	// Invalid values never compare true
	assert.False(t, TimeString("bad").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsAfter("bad"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME arrives with seconds on the text path
	require.NoError(t, ts.Scan("15:04:00"))
	assert.Equal(t, TimeString("15:04"), ts)

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 7, 17, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("17:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("13:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "13:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	assert.Error(t, err)
}
