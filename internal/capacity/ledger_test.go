package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/types"
)

func booking(start, end string, persons int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		NumberOfPersons: persons,
		Status:          status,
	}
}

func TestUsedCapacity_Overlap(t *testing.T) {
	existing := []*domain.Booking{
		booking("13:00", "15:00", 10, domain.StatusConfirmed),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "full overlap", start: "13:00", end: "15:00", want: 10},
		{name: "partial overlap at start", start: "12:00", end: "13:30", want: 10},
		{name: "partial overlap at end", start: "14:30", end: "16:30", want: 10},
		{name: "candidate inside existing", start: "13:30", end: "14:00", want: 10},
		{name: "existing inside candidate", start: "12:00", end: "16:00", want: 10},
		// Строгие неравенства: встык не считается пересечением
		{name: "back to back before", start: "11:00", end: "13:00", want: 0},
		{name: "back to back after", start: "15:00", end: "17:00", want: 0},
		{name: "disjoint", start: "16:00", end: "18:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UsedCapacity(types.TimeString(tt.start), types.TimeString(tt.end), existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsedCapacity_StatusFilter(t *testing.T) {
	existing := []*domain.Booking{
		booking("13:00", "15:00", 10, domain.StatusPending),
		booking("13:00", "15:00", 8, domain.StatusConfirmed),
		booking("13:00", "15:00", 5, domain.StatusCompleted),
		booking("13:00", "15:00", 20, domain.StatusCancelled),
	}

	// Отмененные не занимают места, остальные статусы занимают
	assert.Equal(t, 23, UsedCapacity("13:00", "15:00", existing))
}

func TestFreeCapacity(t *testing.T) {
	existing := []*domain.Booking{
		booking("13:00", "15:00", 30, domain.StatusConfirmed),
	}

	assert.Equal(t, 5, FreeCapacity("13:00", "15:00", existing))
	assert.Equal(t, domain.VenueCapacity, FreeCapacity("15:00", "17:00", existing))
}

func TestFreeCapacity_AdminOverbook(t *testing.T) {
	// Админ может создать бронирование сверх лимита: значение уходит в минус
	existing := []*domain.Booking{
		booking("13:00", "15:00", 40, domain.StatusConfirmed),
	}
	assert.Equal(t, -5, FreeCapacity("13:00", "15:00", existing))
}

func TestWouldFit(t *testing.T) {
	existing := []*domain.Booking{
		booking("13:00", "15:00", 30, domain.StatusConfirmed),
	}

	assert.True(t, WouldFit("13:00", "15:00", 5, existing))
	assert.False(t, WouldFit("13:00", "15:00", 6, existing))
	assert.True(t, WouldFit("15:00", "17:00", domain.VenueCapacity, existing))
	assert.False(t, WouldFit("15:00", "17:00", domain.VenueCapacity+1, existing))
}

func TestWouldFit_EmptyDay(t *testing.T) {
	assert.True(t, WouldFit("10:30", "12:30", 35, nil))
	assert.False(t, WouldFit("10:30", "12:30", 36, nil))
}
