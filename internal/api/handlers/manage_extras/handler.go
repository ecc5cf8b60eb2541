package manage_extras

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avanturapark/booking-service/internal/api/handlers"
	"github.com/avanturapark/booking-service/internal/service/catalog"
	"github.com/avanturapark/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Ungültige Anfrage"
	msgInvalidExtraID     = "Ungültige Extra-ID"
	msgNotFound           = "Extra nicht gefunden"
)

type CatalogService interface {
	CreateExtra(ctx context.Context, req *models.ExtraRequest) (*models.ExtraResponse, error)
	GetExtra(ctx context.Context, id int64) (*models.ExtraResponse, error)
	ListExtras(ctx context.Context, onlyActive bool) (*models.ExtraListResponse, error)
	UpdateExtra(ctx context.Context, id int64, req *models.ExtraRequest) (*models.ExtraResponse, error)
	DeleteExtra(ctx context.Context, id int64) error
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

// HandleCreate POST /api/v1/admin/extras
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ExtraRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/extras - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateExtra(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/extras - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /admin/extras - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/extras - Created: extra_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/extras
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListExtras(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/extras - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/extras/{extraId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	extraID, ok := h.extraID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetExtra(r.Context(), extraID)
	if err != nil {
		if errors.Is(err, catalog.ErrExtraNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /admin/extras/{id} - Failed: extra_id=%d, error=%v", extraID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/extras/{extraId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	extraID, ok := h.extraID(w, r)
	if !ok {
		return
	}

	var req models.ExtraRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/extras/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateExtra(r.Context(), extraID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrExtraNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/extras/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /admin/extras/{id} - Failed: extra_id=%d, error=%v", extraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/extras/{id} - Updated: extra_id=%d", extraID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/extras/{extraId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	extraID, ok := h.extraID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteExtra(r.Context(), extraID); err != nil {
		if errors.Is(err, catalog.ErrExtraNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/extras/{id} - Failed: extra_id=%d, error=%v", extraID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/extras/{id} - Deleted: extra_id=%d", extraID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) extraID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["extraId"], 10, 64)
	if err != nil {
		h.logger.Warn("Invalid extra ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExtraID)
		return 0, false
	}
	return id, true
}
