package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"carwash-backend/internal/models"
	"carwash-backend/internal/services"
	"carwash-backend/pkg/utils"
)

type SupplyHandler struct {
	Service *services.SupplyService
}

func NewSupplyHandler(s *services.SupplyService) *SupplyHandler {
	return &SupplyHandler{Service: s}
}

func (h *SupplyHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *SupplyHandler) Get(w http.ResponseWriter, r *http.Request) {
	supply, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Supply not found")
		return
	}
	utils.JSON(w, http.StatusOK, supply)
}

func (h *SupplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supply, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, supply)
}

func (h *SupplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var supply models.Supply
	if err := json.NewDecoder(r.Body).Decode(&supply); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	supply.ID = mux.Vars(r)["id"]

	if err := h.Service.Update(r.Context(), &supply); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, supply)
}

func (h *SupplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusNoContent, nil)
}

// ListMovements supports optional filtering by supply via ?supply_id=.
func (h *SupplyHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	if supplyID := r.URL.Query().Get("supply_id"); supplyID != "" {
		movements, err := h.Service.ListMovementsBySupply(r.Context(), supplyID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, movements)
		return
	}

	movements, err := h.Service.ListMovements(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, movements)
}

func (h *SupplyHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movement, err := h.Service.RecordMovement(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, movement)
}
