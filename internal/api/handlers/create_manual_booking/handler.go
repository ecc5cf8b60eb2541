package create_manual_booking

import (
	"errors"
	"net/http"

	"github.com/avanturapark/booking-service/internal/api/handlers"
	createBooking "github.com/avanturapark/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Ungültige Anfrage"
	msgInvalidDate        = "Ungültiges Datumsformat, erwartet wird JJJJ-MM-TT"
	msgPackageNotFound    = "Das gewählte Paket wurde nicht gefunden"
	msgExtraNotFound      = "Ein gewähltes Extra wurde nicht gefunden"
	msgPackageNotOnDay    = "Das gewählte Paket ist an diesem Tag nicht verfügbar"
	msgInvalidTimeSlot    = "Die gewählte Uhrzeit ist nicht buchbar"
	msgFoodRequired       = "Bitte eine Essensoption für dieses Paket wählen"
	msgInvalidFood        = "Die gewählte Essensoption wird für dieses Paket nicht angeboten"
	msgPersonsOutOfRange  = "Die Personenanzahl liegt außerhalb des zulässigen Bereichs für dieses Paket"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateManualBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /admin/bookings - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrExtraNotFound):
			h.logger.Warn("POST /admin/bookings - Extra not found: %v", err)
			handlers.RespondNotFound(w, msgExtraNotFound)

		case errors.Is(err, createBooking.ErrPackageNotAvailableOnDay):
			h.logger.Warn("POST /admin/bookings - Package not offered on day: package_id=%d, date=%s", req.PackageID, req.BookingDate)
			handlers.RespondBadRequest(w, msgPackageNotOnDay)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /admin/bookings - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrFoodSelectionRequired):
			h.logger.Warn("POST /admin/bookings - Food selection required: package_id=%d", req.PackageID)
			handlers.RespondBadRequest(w, msgFoodRequired)

		case errors.Is(err, createBooking.ErrInvalidFoodSelection):
			h.logger.Warn("POST /admin/bookings - Invalid food selection: %q", req.SelectedFood)
			handlers.RespondBadRequest(w, msgInvalidFood)

		case errors.Is(err, createBooking.ErrPersonsOutOfRange):
			h.logger.Warn("POST /admin/bookings - Persons out of range: persons=%d, package_id=%d", req.NumberOfPersons, req.PackageID)
			handlers.RespondBadRequest(w, msgPersonsOutOfRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/bookings - Failed to create booking: date=%s, error=%v", req.BookingDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.CapacityWarning != "" {
		h.logger.Warn("POST /admin/bookings - Created with capacity warning: booking_id=%d", result.ID)
	}
	h.logger.Info("POST /admin/bookings - Booking created: booking_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
