package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atolyetakip/workshop/internal/vehicle/usecase/command"
	"github.com/atolyetakip/workshop/internal/vehicle/usecase/query"
	"github.com/atolyetakip/workshop/pkg/apperr"
	"github.com/atolyetakip/workshop/pkg/logger"
)

// VehicleHandler handles HTTP requests for vehicle reception
type VehicleHandler struct {
	registerHandler *command.RegisterVehicleHandler

	getHandler     *query.GetVehicleHandler
	byPlateHandler *query.GetByPlateHandler
	listHandler    *query.ListVehiclesHandler
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(
	registerHandler *command.RegisterVehicleHandler,
	getHandler *query.GetVehicleHandler,
	byPlateHandler *query.GetByPlateHandler,
	listHandler *query.ListVehiclesHandler,
) *VehicleHandler {
	return &VehicleHandler{
		registerHandler: registerHandler,
		getHandler:      getHandler,
		byPlateHandler:  byPlateHandler,
		listHandler:     listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterVehicle handles POST /api/vehicles
func (h *VehicleHandler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plate string `json:"plate"`
		Brand string `json:"brand"`
		Model string `json:"model"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	vehicle, err := h.registerHandler.Handle(r.Context(), command.RegisterVehicleCommand{
		Plate: req.Plate,
		Brand: req.Brand,
		Model: req.Model,
	})
	if err != nil {
		respondError(w, r, err, "Failed to register vehicle")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Vehicle registered successfully",
		Data:    vehicle,
	})
}

// GetVehicle handles GET /api/vehicles/{id}
func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid vehicle ID",
		})
		return
	}

	vehicle, err := h.getHandler.Handle(r.Context(), query.GetVehicleQuery{ID: uint(id)})
	if err != nil {
		respondError(w, r, err, "Failed to get vehicle")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    vehicle,
	})
}

// GetVehicleByPlate handles GET /api/vehicles/plate/{plate}
func (h *VehicleHandler) GetVehicleByPlate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicle, err := h.byPlateHandler.Handle(r.Context(), query.GetByPlateQuery{Plate: vars["plate"]})
	if err != nil {
		respondError(w, r, err, "Failed to get vehicle by plate")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    vehicle,
	})
}

// ListVehicles handles GET /api/vehicles
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	vehicles, err := h.listHandler.Handle(r.Context(), query.ListVehiclesQuery{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, err, "Failed to list vehicles")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    vehicles,
	})
}

// RegisterRoutes registers all vehicle routes
func (h *VehicleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/vehicles", h.ListVehicles).Methods("GET")
	router.HandleFunc("/api/vehicles", h.RegisterVehicle).Methods("POST")
	router.HandleFunc("/api/vehicles/plate/{plate}", h.GetVehicleByPlate).Methods("GET")
	router.HandleFunc("/api/vehicles/{id:[0-9]+}", h.GetVehicle).Methods("GET")
}

// respondError maps engine error kinds to HTTP statuses
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := apperr.HTTPStatus(err)
	if status >= 500 {
		logger.Error(r.Context()).Err(err).Msg(msg)
	}
	respondJSON(w, status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
