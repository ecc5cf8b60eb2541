package create_booking

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
	msgFoodRequired       = "Bitte wählen Sie eine Essensoption für dieses Paket"
	msgInvalidFood        = "Die gewählte Essensoption wird für dieses Paket nicht angeboten"
	msgPersonsOutOfRange  = "Die Personenanzahl liegt außerhalb des zulässigen Bereichs für dieses Paket"
	msgDateInPast         = "Buchungen für vergangene Tage sind nicht möglich"
	msgDayBlocked         = "An diesem Tag sind leider keine Buchungen möglich"
	msgNoCapacity         = "Für die gewählte Uhrzeit sind nicht genügend Plätze frei"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказ по вместимости несет альтернативные слоты
		var capErr *createBooking.CapacityError
		if errors.As(err, &capErr) {
			h.logger.Warn("POST /bookings - No capacity: date=%s, time=%s, persons=%d",
				req.BookingDate, req.StartTime, req.NumberOfPersons)

			alternatives := make([]string, 0, len(capErr.Alternatives))
			for _, slot := range capErr.Alternatives {
				alternatives = append(alternatives, slot.String())
			}

			handlers.RespondJSON(w, http.StatusConflict, CapacityErrorResponse{
				Error:            msgNoCapacity,
				FreePlaces:       capErr.FreePlaces,
				AlternativeSlots: alternatives,
			})
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrExtraNotFound):
			h.logger.Warn("POST /bookings - Extra not found: %v", err)
			handlers.RespondNotFound(w, msgExtraNotFound)

		case errors.Is(err, createBooking.ErrPackageNotAvailableOnDay):
			h.logger.Warn("POST /bookings - Package not offered on day: package_id=%d, date=%s", req.PackageID, req.BookingDate)
			handlers.RespondBadRequest(w, msgPackageNotOnDay)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrFoodSelectionRequired):
			h.logger.Warn("POST /bookings - Food selection required: package_id=%d", req.PackageID)
			handlers.RespondBadRequest(w, msgFoodRequired)

		case errors.Is(err, createBooking.ErrInvalidFoodSelection):
			h.logger.Warn("POST /bookings - Invalid food selection: %q", req.SelectedFood)
			handlers.RespondBadRequest(w, msgInvalidFood)

		case errors.Is(err, createBooking.ErrPersonsOutOfRange):
			h.logger.Warn("POST /bookings - Persons out of range: persons=%d, package_id=%d", req.NumberOfPersons, req.PackageID)
			handlers.RespondBadRequest(w, msgPersonsOutOfRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDayBlocked):
			h.logger.Warn("POST /bookings - Day blocked: date=%s", req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgDayBlocked)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.BookingDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, time=%s",
		result.ID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
