package manage_packages

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
	msgInvalidPackageID   = "Ungültige Paket-ID"
	msgNotFound           = "Paket nicht gefunden"
)

type CatalogService interface {
	CreatePackage(ctx context.Context, req *models.PackageRequest) (*models.PackageResponse, error)
	GetPackage(ctx context.Context, id int64) (*models.PackageResponse, error)
	ListPackages(ctx context.Context, onlyActive bool) (*models.PackageListResponse, error)
	UpdatePackage(ctx context.Context, id int64, req *models.PackageRequest) (*models.PackageResponse, error)
	DeletePackage(ctx context.Context, id int64) error
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

// HandleCreate POST /api/v1/admin/packages
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/packages - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /admin/packages - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/packages - Created: package_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/packages
// Включает неактивные пакеты.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPackages(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/packages - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/packages/{packageId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	packageID, ok := h.packageID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetPackage(r.Context(), packageID)
	if err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /admin/packages/{id} - Failed: package_id=%d, error=%v", packageID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/packages/{packageId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	packageID, ok := h.packageID(w, r)
	if !ok {
		return
	}

	var req models.PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePackage(r.Context(), packageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/packages/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /admin/packages/{id} - Failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/packages/{id} - Updated: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/packages/{packageId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	packageID, ok := h.packageID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/packages/{id} - Failed: package_id=%d, error=%v", packageID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/packages/{id} - Deleted: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) packageID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return 0, false
	}
	return id, true
}
