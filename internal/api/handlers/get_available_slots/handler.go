package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avanturapark/booking-service/internal/api/handlers"
	"github.com/avanturapark/booking-service/internal/domain"
	getSlots "github.com/avanturapark/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate      = "Ungültiges Datumsformat, erwartet wird JJJJ-MM-TT"
	msgInvalidPackageID = "Ungültige Paket-ID"
	msgInvalidPersons   = "Ungültige Personenanzahl"
	msgPackageNotFound  = "Das gewählte Paket wurde nicht gefunden"
	msgPackageNotOnDay  = "Das gewählte Paket ist an diesem Tag nicht verfügbar"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotResponse слот в HTTP ответе
type SlotResponse struct {
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	FreePlaces int    `json:"freePlaces"`
	MaxPlaces  int    `json:"maxPlaces"`
	Available  bool   `json:"available"`
	NearlyFull bool   `json:"nearlyFull"`
}

// SlotsResponse HTTP ответ со слотами
type SlotsResponse struct {
	Date      string         `json:"date"`
	PackageID int64          `json:"packageId"`
	Blocked   bool           `json:"blocked"`
	Reason    string         `json:"reason,omitempty"`
	Slots     []SlotResponse `json:"slots"`
}

// Handle GET /api/v1/available-slots?date=2026-08-29&packageId=1&persons=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	packageID, err := strconv.ParseInt(query.Get("packageId"), 10, 64)
	if err != nil || packageID <= 0 {
		h.logger.Warn("GET /available-slots - Invalid packageId: %q", query.Get("packageId"))
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	// persons опционален, по умолчанию 1
	persons := 1
	if raw := query.Get("persons"); raw != "" {
		persons, err = strconv.Atoi(raw)
		if err != nil || persons <= 0 {
			h.logger.Warn("GET /available-slots - Invalid persons: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPersons)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		Date:            date,
		PackageID:       packageID,
		NumberOfPersons: persons,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrPackageNotFound):
			h.logger.Warn("GET /available-slots - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getSlots.ErrPackageNotAvailableOnDay):
			h.logger.Warn("GET /available-slots - Package not offered on day: package_id=%d, date=%s", packageID, query.Get("date"))
			handlers.RespondBadRequest(w, msgPackageNotOnDay)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-slots - Failed: date=%s, package_id=%d, error=%v", query.Get("date"), packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{
			StartTime:  s.StartTime.String(),
			EndTime:    s.EndTime.String(),
			FreePlaces: s.FreePlaces,
			MaxPlaces:  s.MaxPlaces,
			Available:  s.Available,
			NearlyFull: s.NearlyFull,
		})
	}

	h.logger.Info("GET /available-slots - date=%s, package_id=%d: %d slots", query.Get("date"), packageID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		Date:      result.Date.Format(domain.DateFormat),
		PackageID: result.PackageID,
		Blocked:   result.Blocked,
		Reason:    result.Reason,
		Slots:     slots,
	})
}
