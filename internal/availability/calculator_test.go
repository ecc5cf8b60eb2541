package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/types"
)

var (
	// 2026-03-07 суббота, 2026-03-09 понедельник
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
)

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(saturday.AddDate(0, 0, 1))) // воскресенье
	assert.False(t, IsWeekend(monday))
	assert.False(t, IsWeekend(monday.AddDate(0, 0, 4))) // пятница
}

func TestOpeningSlots_Weekend(t *testing.T) {
	slots := OpeningSlots(saturday)

	// 10:30 .. 17:30 с шагом 30 минут = 15 слотов
	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("10:30"), slots[0])
	assert.Equal(t, types.TimeString("11:00"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestOpeningSlots_Weekday(t *testing.T) {
	slots := OpeningSlots(monday)

	// 13:00 .. 17:30 = 10 слотов
	require.Len(t, slots, 10)
	assert.Equal(t, types.TimeString("13:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestSlotFits(t *testing.T) {
	// Парк закрывается в 18:30
	assert.True(t, SlotFits("16:30", 2))
	assert.False(t, SlotFits("17:00", 2))
	assert.True(t, SlotFits("17:30", 1))
	assert.True(t, SlotFits("17:00", 1.5))
	assert.False(t, SlotFits("17:30", 1.5))
	assert.False(t, SlotFits("bad", 1))
}

func TestEndTime(t *testing.T) {
	assert.Equal(t, types.TimeString("15:00"), EndTime("13:00", 2))
	assert.Equal(t, types.TimeString("12:00"), EndTime("10:30", 1.5))

	// Выход за закрытие ограничивается 18:30
	assert.Equal(t, domain.ClosingTime, EndTime("17:30", 4))
	assert.Equal(t, types.TimeString(""), EndTime("bad", 2))
}

func TestFeasibleSlots(t *testing.T) {
	pkg := &domain.Package{DurationHours: 4}
	slots := OpeningSlots(saturday)

	feasible := FeasibleSlots(pkg, slots)

	// 4-часовой пакет успевает только при старте до 14:30 включительно
	require.NotEmpty(t, feasible)
	assert.Equal(t, types.TimeString("10:30"), feasible[0])
	assert.Equal(t, types.TimeString("14:30"), feasible[len(feasible)-1])
}

func TestEligiblePackages(t *testing.T) {
	weekendOnly := &domain.Package{ID: 1, AvailableDays: domain.FriToSun}
	weekdayOnly := &domain.Package{ID: 2, AvailableDays: domain.MonToThu}
	always := &domain.Package{ID: 3, AvailableDays: domain.AllDays}

	all := []*domain.Package{weekendOnly, weekdayOnly, always}

	satPkgs := EligiblePackages(saturday, all)
	require.Len(t, satPkgs, 2)
	assert.Equal(t, int64(1), satPkgs[0].ID)
	assert.Equal(t, int64(3), satPkgs[1].ID)

	monPkgs := EligiblePackages(monday, all)
	require.Len(t, monPkgs, 2)
	assert.Equal(t, int64(2), monPkgs[0].ID)
	assert.Equal(t, int64(3), monPkgs[1].ID)
}
