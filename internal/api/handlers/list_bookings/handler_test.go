package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanturapark/booking-service/internal/service/bookings"
	"github.com/avanturapark/booking-service/internal/service/bookings/models"
)

type stubService struct {
	resp *models.BookingListResponse
	err  error
	got  *models.ListBookingsRequest
}

func (s *stubService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.resp == nil {
		return &models.BookingListResponse{Bookings: []*models.BookingResponse{}}, s.err
	}
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *stubService, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings"+query, nil)
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_DateShorthand(t *testing.T) {
	svc := &stubService{}

	rec := doRequest(t, svc, "?date=2026-03-07")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)

	// date задает обе границы периода
	want := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, svc.got.StartDate)
	require.NotNil(t, svc.got.EndDate)
	assert.Equal(t, want, *svc.got.StartDate)
	assert.Equal(t, want, *svc.got.EndDate)
	assert.Nil(t, svc.got.Status)
	assert.False(t, svc.got.IncludeCancelled)
}

func TestHandle_PeriodAndStatus(t *testing.T) {
	svc := &stubService{}

	rec := doRequest(t, svc, "?startDate=2026-03-01&endDate=2026-03-31&status=pending&includeCancelled=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)

	require.NotNil(t, svc.got.StartDate)
	require.NotNil(t, svc.got.EndDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *svc.got.StartDate)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *svc.got.EndDate)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "pending", *svc.got.Status)
	assert.True(t, svc.got.IncludeCancelled)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &stubService{}

	rec := doRequest(t, svc, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Nil(t, svc.got.StartDate)
	assert.Nil(t, svc.got.EndDate)
	assert.Nil(t, svc.got.Status)
}

func TestHandle_InvalidDate(t *testing.T) {
	for _, query := range []string{"?date=07.03.2026", "?startDate=nope", "?endDate=2026-13-40"} {
		svc := &stubService{}
		rec := doRequest(t, svc, query)

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Nil(t, svc.got, query)
	}
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &stubService{err: bookings.ErrInvalidInput}

	rec := doRequest(t, svc, "?status=unbekannt")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
