package list_packages

import (
	"context"
	"net/http"
	"time"

	"github.com/avanturapark/booking-service/internal/api/handlers"
	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidDate = "Ungültiges Datumsformat, erwartet wird JJJJ-MM-TT"
)

type CatalogService interface {
	ListPackages(ctx context.Context, onlyActive bool) (*models.PackageListResponse, error)
	ListPackagesForDate(ctx context.Context, date time.Time) (*models.PackageListResponse, error)
	ListExtras(ctx context.Context, onlyActive bool) (*models.ExtraListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages?date=2026-08-29
// Без параметра date возвращает все активные пакеты.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	var result *models.PackageListResponse
	var err error

	if rawDate == "" {
		result, err = h.service.ListPackages(r.Context(), true)
	} else {
		var date time.Time
		date, err = time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /packages - Invalid date: %q", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.ListPackagesForDate(r.Context(), date)
	}

	if err != nil {
		h.logger.Error("GET /packages - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /packages - %d packages", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExtras GET /api/v1/extras
func (h *Handler) HandleExtras(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListExtras(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /extras - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /extras - %d extras", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
