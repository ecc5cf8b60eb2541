package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanturapark/booking-service/internal/domain"
	bookingRepo "github.com/avanturapark/booking-service/internal/infra/storage/booking"
	"github.com/avanturapark/booking-service/internal/service/bookings/models"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	statuses []domain.BookingStatus
	deleted  []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	list := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Status == domain.StatusCancelled && !f.includeCancelled(filter) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		list = append(list, b)
	}
	return list, nil
}

func (f *fakeRepo) includeCancelled(filter domain.BookingsFilter) bool {
	if filter.Status != nil && *filter.Status == domain.StatusCancelled {
		return true
	}
	return filter.IncludeCancelled
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNotifier struct {
	confirmed []int64
	cancelled []int64
}

func (f *fakeNotifier) BookingConfirmed(b *domain.Booking) { f.confirmed = append(f.confirmed, b.ID) }
func (f *fakeNotifier) BookingCancelled(b *domain.Booking) { f.cancelled = append(f.cancelled, b.ID) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(statuses ...domain.BookingStatus) (*Service, *fakeRepo, *fakeNotifier) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{}}
	for i, status := range statuses {
		id := int64(i + 1)
		repo.bookings[id] = &domain.Booking{
			ID:              id,
			BookingDate:     time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
			StartTime:       "14:00",
			EndTime:         "16:00",
			PackageName:     "Geburtstagsparty Basic",
			NumberOfPersons: 8,
			CustomerName:    "Anna Huber",
			Status:          status,
		}
	}
	notifier := &fakeNotifier{}
	return NewService(repo, notifier, nopLogger{}), repo, notifier
}

func TestConfirm(t *testing.T) {
	svc, repo, notifier := newService(domain.StatusPending)

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
	assert.Equal(t, []int64{1}, notifier.confirmed)
}

func TestConfirm_WrongStatus(t *testing.T) {
	svc, _, notifier := newService(domain.StatusConfirmed)

	_, err := svc.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotConfirm)
	assert.Empty(t, notifier.confirmed)
}

func TestConfirm_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Confirm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestReject(t *testing.T) {
	svc, repo, notifier := newService(domain.StatusPending, domain.StatusConfirmed)

	// Отклонение заявки и отмена подтвержденного бронирования идут
	// одним путем
	_, err := svc.Reject(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[2].Status)
	assert.Equal(t, []int64{1, 2}, notifier.cancelled)
}

func TestReject_Terminal(t *testing.T) {
	svc, _, _ := newService(domain.StatusCompleted)

	_, err := svc.Reject(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, notifier := newService(domain.StatusConfirmed)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	// Завершение не порождает побочных эффектов
	assert.Empty(t, notifier.confirmed)
	assert.Empty(t, notifier.cancelled)
}

func TestUpdateStatus_Idempotent(t *testing.T) {
	svc, repo, notifier := newService(domain.StatusConfirmed)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	// Повтор не трогает хранилище и не дублирует уведомления
	assert.Empty(t, repo.statuses)
	assert.Empty(t, notifier.confirmed)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	svc, _, _ := newService(domain.StatusCompleted)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newService(domain.StatusPending)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_Notifications(t *testing.T) {
	svc, _, notifier := newService(domain.StatusPending, domain.StatusConfirmed)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, notifier.confirmed)
	assert.Equal(t, []int64{2}, notifier.cancelled)
}

func TestDelete(t *testing.T) {
	svc, repo, notifier := newService(domain.StatusConfirmed)

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.deleted)
	// Удаление убирает след в календаре
	assert.Equal(t, []int64{1}, notifier.cancelled)

	err = svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	svc, _, _ := newService(domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled)

	status := "pending"
	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)

	// Отмененные скрыты по умолчанию
	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{IncludeCancelled: true})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)
}

func TestList_InvalidStatus(t *testing.T) {
	svc, _, _ := newService()

	status := "archived"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
