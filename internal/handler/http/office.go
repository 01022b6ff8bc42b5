package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/geofence"
	"github.com/sunvolt-energy/erp-backend-go/internal/handler/http/response"
)

type OfficeHandler interface {
	Locate(w http.ResponseWriter, r *http.Request)

	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OfficeHandlerImpl struct {
	geofenceService geofence.GeofenceService
}

func NewOfficeHandler(geofenceService geofence.GeofenceService) OfficeHandler {
	return &OfficeHandlerImpl{geofenceService: geofenceService}
}

// Locate implements OfficeHandler. The verdict is advisory; clients show it
// before check-in but the engine does not enforce it.
func (h *OfficeHandlerImpl) Locate(w http.ResponseWriter, r *http.Request) {
	latitude, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		response.BadRequest(w, "latitude must be a number", nil)
		return
	}
	longitude, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		response.BadRequest(w, "longitude must be a number", nil)
		return
	}

	result, err := h.geofenceService.Locate(r.Context(), latitude, longitude)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements OfficeHandler.
func (h *OfficeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpsertOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create office decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.geofenceService.CreateOffice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office location created successfully", result)
}

// List implements OfficeHandler.
func (h *OfficeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.geofenceService.ListOffices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, offices)
}

// Update implements OfficeHandler.
func (h *OfficeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Office ID is required", nil)
		return
	}

	var req geofence.UpsertOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update office decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.geofenceService.UpdateOffice(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location updated successfully", result)
}

// Delete implements OfficeHandler.
func (h *OfficeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Office ID is required", nil)
		return
	}

	if err := h.geofenceService.DeleteOffice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location deleted successfully", nil)
}
