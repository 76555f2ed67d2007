package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atolyetakip/workshop/internal/inventory/usecase/command"
	"github.com/atolyetakip/workshop/internal/inventory/usecase/query"
	"github.com/atolyetakip/workshop/pkg/apperr"
	"github.com/atolyetakip/workshop/pkg/logger"
)

// InventoryHandler handles HTTP requests for the inventory ledger
type InventoryHandler struct {
	createHandler *command.CreateItemHandler
	adjustHandler *command.AdjustStockHandler

	getHandler      *query.GetItemHandler
	listHandler     *query.ListItemsHandler
	lowStockHandler *query.LowStockHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	createHandler *command.CreateItemHandler,
	adjustHandler *command.AdjustStockHandler,
	getHandler *query.GetItemHandler,
	listHandler *query.ListItemsHandler,
	lowStockHandler *query.LowStockHandler,
) *InventoryHandler {
	return &InventoryHandler{
		createHandler:   createHandler,
		adjustHandler:   adjustHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
		lowStockHandler: lowStockHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateItem handles POST /api/inventory
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		SKU           string `json:"sku"`
		Quantity      int    `json:"quantity"`
		CriticalLevel int    `json:"critical_level"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.createHandler.Handle(r.Context(), command.CreateItemCommand{
		Name:          req.Name,
		SKU:           req.SKU,
		Quantity:      req.Quantity,
		CriticalLevel: req.CriticalLevel,
	})
	if err != nil {
		respondError(w, r, err, "Failed to create inventory item")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Inventory item created successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/inventory/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	item, err := h.getHandler.Handle(r.Context(), query.GetItemQuery{ID: uint(id)})
	if err != nil {
		respondError(w, r, err, "Failed to get inventory item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, err, "Failed to list inventory")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// ListLowStock handles GET /api/inventory/low-stock
func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.lowStockHandler.Handle(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to list low stock items")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// StockMovement handles POST /api/inventory/movement
func (h *InventoryHandler) StockMovement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU            string `json:"sku"`
		QuantityChange int    `json:"quantity_change"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.adjustHandler.Handle(r.Context(), command.AdjustStockCommand{
		SKU:            req.SKU,
		QuantityChange: req.QuantityChange,
	})
	if err != nil {
		respondError(w, r, err, "Failed to process stock movement")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock movement processed successfully",
		Data:    item,
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListItems).Methods("GET")
	router.HandleFunc("/api/inventory", h.CreateItem).Methods("POST")
	router.HandleFunc("/api/inventory/low-stock", h.ListLowStock).Methods("GET")
	router.HandleFunc("/api/inventory/movement", h.StockMovement).Methods("POST")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", h.GetItem).Methods("GET")
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
