package manage_blocked_days

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avanturapark/booking-service/internal/api/handlers"
	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/internal/service/blockeddays"
)

const (
	msgInvalidRequestBody = "Ungültige Anfrage"
	msgInvalidDate        = "Ungültiges Datumsformat, erwartet wird JJJJ-MM-TT"
	msgInvalidID          = "Ungültige ID"
	msgNotFound           = "Sperrtag nicht gefunden"
	msgAlreadyBlocked     = "Dieser Tag ist bereits gesperrt"
)

type BlockedDaysService interface {
	Block(ctx context.Context, date time.Time, reason string) (*blockeddays.BlockedDayResponse, error)
	List(ctx context.Context) (*blockeddays.BlockedDayListResponse, error)
	Unblock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BlockDayRequest HTTP request model
type BlockDayRequest struct {
	Date   string `json:"date"` // "2026-08-29"
	Reason string `json:"reason,omitempty"`
}

type Handler struct {
	service BlockedDaysService
	logger  Logger
}

func NewHandler(service BlockedDaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/blocked-days
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req BlockDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-days - Invalid date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Block(r.Context(), date, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, blockeddays.ErrAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-days - Already blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)
		case errors.Is(err, blockeddays.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("POST /admin/blocked-days - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-days - Blocked: date=%s, id=%d", req.Date, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/blocked-days
// Публичный: форма бронирования прячет закрытые дни в календаре.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-days - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/blocked-days/{blockedDayId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["blockedDayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-days/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Unblock(r.Context(), id); err != nil {
		if errors.Is(err, blockeddays.ErrBlockedDayNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/blocked-days/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/blocked-days/{id} - Unblocked: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
