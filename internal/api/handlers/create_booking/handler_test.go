package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/avanturapark/booking-service/internal/usecase/create_booking"
	"github.com/avanturapark/booking-service/pkg/types"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *stubUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		BookingDate:     "2026-03-07",
		StartTime:       "14:00",
		PackageID:       1,
		NumberOfPersons: 3,
		CustomerName:    "Anna Huber",
		CustomerEmail:   "anna@example.at",
		CustomerPhone:   "+43 660 1234567",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:              7,
		BookingDate:     time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		EndTime:         "16:00",
		PackageID:       1,
		PackageName:     "Spielspaß pro Stunde",
		NumberOfPersons: 3,
		CustomerName:    "Anna Huber",
		TotalPrice:      30,
		PaymentMethod:   "on_site",
		Status:          "pending",
	}}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-03-07", resp.BookingDate)
	assert.Equal(t, "16:00", resp.EndTime)
	assert.Equal(t, "pending", resp.Status)

	// Публичная форма всегда идет каналом public
	require.NotNil(t, uc.got)
	assert.Equal(t, createBooking.ChannelPublic, uc.got.Channel)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := validBody()
	body.BookingDate = "07.03.2026"

	rec := doRequest(t, &stubUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NoCapacity(t *testing.T) {
	uc := &stubUseCase{err: &createBooking.CapacityError{
		Requested:    10,
		FreePlaces:   4,
		Alternatives: []types.TimeString{"10:30", "16:00"},
	}}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp CapacityErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.FreePlaces)
	assert.Equal(t, []string{"10:30", "16:00"}, resp.AlternativeSlots)
	assert.NotEmpty(t, resp.Error)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "package not found", err: createBooking.ErrPackageNotFound, wantCode: http.StatusNotFound},
		{name: "extra not found", err: createBooking.ErrExtraNotFound, wantCode: http.StatusNotFound},
		{name: "package not on day", err: createBooking.ErrPackageNotAvailableOnDay, wantCode: http.StatusBadRequest},
		{name: "invalid time slot", err: createBooking.ErrInvalidTimeSlot, wantCode: http.StatusBadRequest},
		{name: "food required", err: createBooking.ErrFoodSelectionRequired, wantCode: http.StatusBadRequest},
		{name: "invalid food", err: createBooking.ErrInvalidFoodSelection, wantCode: http.StatusBadRequest},
		{name: "persons out of range", err: createBooking.ErrPersonsOutOfRange, wantCode: http.StatusBadRequest},
		{name: "date in past", err: createBooking.ErrDateInPast, wantCode: http.StatusBadRequest},
		{name: "day blocked", err: createBooking.ErrDayBlocked, wantCode: http.StatusConflict},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
