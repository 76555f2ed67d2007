package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atolyetakip/workshop/internal/workorder/usecase/command"
	"github.com/atolyetakip/workshop/internal/workorder/usecase/query"
	"github.com/atolyetakip/workshop/pkg/apperr"
	"github.com/atolyetakip/workshop/pkg/logger"
)

// WorkOrderHandler handles HTTP requests for work orders using CQRS pattern
type WorkOrderHandler struct {
	// Command handlers
	createHandler   *command.CreateWorkOrderHandler
	startHandler    *command.StartWorkOrderHandler
	stopHandler     *command.StopWorkOrderHandler
	completeHandler *command.CompleteWorkOrderHandler
	addPartHandler  *command.AddPartHandler

	// Query handlers
	getHandler   *query.GetWorkOrderHandler
	listHandler  *query.ListWorkOrdersHandler
	statsHandler *query.GetStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	laborSeconds   *prometheus.CounterVec
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(
	createHandler *command.CreateWorkOrderHandler,
	startHandler *command.StartWorkOrderHandler,
	stopHandler *command.StopWorkOrderHandler,
	completeHandler *command.CompleteWorkOrderHandler,
	addPartHandler *command.AddPartHandler,
	getHandler *query.GetWorkOrderHandler,
	listHandler *query.ListWorkOrdersHandler,
	statsHandler *query.GetStatsHandler,
) *WorkOrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workshop_requests_total",
			Help: "Total number of requests to the work order service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workshop_request_duration_seconds",
			Help:    "Duration of work order service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	laborSeconds := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workshop_labor_seconds_total",
			Help: "Total labor seconds accounted on completed work orders",
		},
		[]string{},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(laborSeconds)

	return &WorkOrderHandler{
		createHandler:   createHandler,
		startHandler:    startHandler,
		stopHandler:     stopHandler,
		completeHandler: completeHandler,
		addPartHandler:  addPartHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
		statsHandler:    statsHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		laborSeconds:    laborSeconds,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *WorkOrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// CreateWorkOrder handles POST /api/work-orders
func (h *WorkOrderHandler) CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VehiclePlate string `json:"vehicle_plate"`
		Description  string `json:"description"`
		TechnicianID *uint  `json:"technician_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	workOrder, err := h.createHandler.Handle(r.Context(), command.CreateWorkOrderCommand{
		VehiclePlate: req.VehiclePlate,
		Description:  req.Description,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		respondError(w, r, err, "Failed to create work order")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Work order created successfully",
		Data:    workOrder,
	})
}

// GetWorkOrder handles GET /api/work-orders/{id}
func (h *WorkOrderHandler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := workOrderID(w, r)
	if !ok {
		return
	}

	view, err := h.getHandler.Handle(r.Context(), query.GetWorkOrderQuery{ID: id})
	if err != nil {
		respondError(w, r, err, "Failed to get work order")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// ListWorkOrders handles GET /api/work-orders
func (h *WorkOrderHandler) ListWorkOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	views, err := h.listHandler.Handle(r.Context(), query.ListWorkOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, err, "Failed to list work orders")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    views,
	})
}

// GetStats handles GET /api/work-orders/stats
func (h *WorkOrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get work order stats")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// StartWorkOrder handles POST /api/work-orders/{id}/start
func (h *WorkOrderHandler) StartWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := workOrderID(w, r)
	if !ok {
		return
	}

	workOrder, err := h.startHandler.Handle(r.Context(), command.StartWorkOrderCommand{ID: id})
	if err != nil {
		respondError(w, r, err, "Failed to start work order")
		return
	}

	logger.Info(r.Context()).
		Uint("work_order_id", workOrder.ID).
		Msg("Work order started")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Work order started",
		Data:    workOrder,
	})
}

// StopWorkOrder handles POST /api/work-orders/{id}/stop
func (h *WorkOrderHandler) StopWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := workOrderID(w, r)
	if !ok {
		return
	}

	workOrder, err := h.stopHandler.Handle(r.Context(), command.StopWorkOrderCommand{ID: id})
	if err != nil {
		respondError(w, r, err, "Failed to stop work order")
		return
	}

	logger.Info(r.Context()).
		Uint("work_order_id", workOrder.ID).
		Int64("total_labor_seconds", workOrder.TotalLaborSeconds).
		Msg("Work order stopped")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Work order stopped",
		Data:    workOrder,
	})
}

// CompleteWorkOrder handles POST /api/work-orders/{id}/complete
func (h *WorkOrderHandler) CompleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := workOrderID(w, r)
	if !ok {
		return
	}

	workOrder, err := h.completeHandler.Handle(r.Context(), command.CompleteWorkOrderCommand{ID: id})
	if err != nil {
		respondError(w, r, err, "Failed to complete work order")
		return
	}

	h.laborSeconds.WithLabelValues().Add(float64(workOrder.TotalLaborSeconds))

	logger.Info(r.Context()).
		Uint("work_order_id", workOrder.ID).
		Int64("total_labor_seconds", workOrder.TotalLaborSeconds).
		Msg("Work order completed")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Work order completed",
		Data:    workOrder,
	})
}

// AddPart handles POST /api/work-orders/{id}/parts
func (h *WorkOrderHandler) AddPart(w http.ResponseWriter, r *http.Request) {
	id, ok := workOrderID(w, r)
	if !ok {
		return
	}

	var req struct {
		InventoryItemID uint   `json:"inventory_item_id"`
		Quantity        int    `json:"quantity"`
		RequestID       string `json:"request_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	part, err := h.addPartHandler.Handle(r.Context(), command.AddPartCommand{
		WorkOrderID:     id,
		InventoryItemID: req.InventoryItemID,
		Quantity:        req.Quantity,
		RequestID:       req.RequestID,
	})
	if err != nil {
		respondError(w, r, err, "Failed to add part to work order")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Part added to work order",
		Data:    part,
	})
}

// RegisterRoutes registers all work order routes
func (h *WorkOrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/work-orders", h.metricsMiddleware("/api/work-orders", h.ListWorkOrders)).Methods("GET")
	router.HandleFunc("/api/work-orders", h.metricsMiddleware("/api/work-orders", h.CreateWorkOrder)).Methods("POST")
	router.HandleFunc("/api/work-orders/stats", h.metricsMiddleware("/api/work-orders/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/work-orders/{id:[0-9]+}", h.metricsMiddleware("/api/work-orders/{id}", h.GetWorkOrder)).Methods("GET")
	router.HandleFunc("/api/work-orders/{id:[0-9]+}/start", h.metricsMiddleware("/api/work-orders/{id}/start", h.StartWorkOrder)).Methods("POST")
	router.HandleFunc("/api/work-orders/{id:[0-9]+}/stop", h.metricsMiddleware("/api/work-orders/{id}/stop", h.StopWorkOrder)).Methods("POST")
	router.HandleFunc("/api/work-orders/{id:[0-9]+}/complete", h.metricsMiddleware("/api/work-orders/{id}/complete", h.CompleteWorkOrder)).Methods("POST")
	router.HandleFunc("/api/work-orders/{id:[0-9]+}/parts", h.metricsMiddleware("/api/work-orders/{id}/parts", h.AddPart)).Methods("POST")
}

func workOrderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid work order ID",
		})
		return 0, false
	}
	return uint(id), true
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
