package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDaySet(t *testing.T) {
	set, err := ParseDaySet([]string{"fri", "sat", "sun"})
	require.NoError(t, err)
	assert.Equal(t, FriToSun, set)

	set, err = ParseDaySet([]string{"Mon", " TUE ", "wed", "thu"})
	require.NoError(t, err)
	assert.Equal(t, MonToThu, set)

	// Пустой список означает отсутствие ограничения
	set, err = ParseDaySet(nil)
	require.NoError(t, err)
	assert.Equal(t, AllDays, set)

	_, err = ParseDaySet([]string{"funday"})
	assert.Error(t, err)
}

func TestDaySet_Contains(t *testing.T) {
	assert.True(t, FriToSun.Contains(time.Friday))
	assert.True(t, FriToSun.Contains(time.Saturday))
	assert.True(t, FriToSun.Contains(time.Sunday))
	assert.False(t, FriToSun.Contains(time.Monday))

	assert.True(t, MonToThu.Contains(time.Thursday))
	assert.False(t, MonToThu.Contains(time.Friday))

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		assert.True(t, AllDays.Contains(wd))
	}
}

func TestDaySet_Names(t *testing.T) {
	// Monday first, regardless of bit order
	assert.Equal(t, []string{"fri", "sat", "sun"}, FriToSun.Names())
	assert.Equal(t, []string{"mon", "tue", "wed", "thu"}, MonToThu.Names())
	assert.Empty(t, DaySet(0).Names())
}

func TestDaySet_IsEmpty(t *testing.T) {
	assert.True(t, DaySet(0).IsEmpty())
	assert.False(t, AllDays.IsEmpty())
	assert.False(t, FriToSun.IsEmpty())
}
