package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"carwash-backend/internal/models"
	"carwash-backend/internal/services"
	"carwash-backend/internal/workflow"
	"carwash-backend/pkg/utils"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var list []*models.ServiceOrder
	var err error
	if status := r.URL.Query().Get("status"); status != "" {
		list, err = h.Service.ListByStatus(r.Context(), status)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
	} else if list, err = h.Service.List(r.Context(), r.URL.Query().Get("sort")); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Services) == 0 {
		utils.Error(w, http.StatusBadRequest, "at least one service is required")
		return
	}

	order, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var order models.ServiceOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order.ID = mux.Vars(r)["id"]

	if err := h.Service.Update(r.Context(), &order); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusNoContent, nil)
}

// ChangeStatus moves an order through its lifecycle. Completing an
// already-completed order answers 409 and applies nothing.
func (h *OrderHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.ChangeStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrAlreadyCompleted):
			utils.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, pgx.ErrNoRows):
			utils.Error(w, http.StatusNotFound, "Order not found")
		default:
			utils.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	utils.JSON(w, http.StatusOK, order)
}
