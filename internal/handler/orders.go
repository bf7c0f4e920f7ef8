package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/users-orders-api/internal/events"
	"github.com/mmeshcher/users-orders-api/internal/model"
	"github.com/mmeshcher/users-orders-api/internal/repository"
)

const (
	msgInvalidOwnerID = "Invalid user ID"
	msgInvalidOrderID = "Invalid user or order ID"
	msgOrderNotFound  = "Order not found"
)

// orderRequest — тело запроса на создание или замену заказа.
// userId из тела не используется: владельцем всегда считается пользователь из пути.
type orderRequest struct {
	Description     *string `json:"description"`
	PriceInPence    *int64  `json:"priceInPence"`
	CompletedStatus bool    `json:"completedStatus"`
	UserID          *int64  `json:"userId"`
}

func (req orderRequest) toModel(userID int64) (model.Order, error) {
	var missing missingFields
	o := model.Order{
		Description:     missing.str("description", req.Description),
		PriceInPence:    missing.num("priceInPence", req.PriceInPence),
		CompletedStatus: req.CompletedStatus,
		UserID:          userID,
	}
	return o, missing.err()
}

func decodeOrder(r *http.Request, userID int64) (model.Order, error) {
	var req orderRequest
	if err := decodeBody(r, &req); err != nil {
		return model.Order{}, err
	}
	return req.toModel(userID)
}

func orderIDs(r *http.Request) (userID, orderID int64, ok bool) {
	userID, ok = pathID(r, paramUserID)
	if !ok {
		return 0, 0, false
	}
	orderID, ok = pathID(r, paramOrderID)
	return userID, orderID, ok
}

// ListOrders возвращает заказы пользователя.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, paramUserID)
	if !ok {
		http.Error(w, msgInvalidOwnerID, http.StatusBadRequest)
		return
	}

	orders, err := h.orders.ListOrdersByUser(r.Context(), userID)
	if err != nil {
		h.storeFailure(w, "list orders error", err, zap.Int64("userID", userID))
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// CreateOrder создаёт заказ пользователя из пути.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, paramUserID)
	if !ok {
		http.Error(w, msgInvalidOwnerID, http.StatusBadRequest)
		return
	}

	o, err := decodeOrder(r, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.orders.CreateOrder(r.Context(), userID, o)
	if err != nil {
		h.storeFailure(w, "create order error", err, zap.Int64("userID", userID))
		return
	}

	h.publish(r.Context(), events.Created, events.ResourceOrder, created.ID, userID, created)
	writeJSON(w, http.StatusCreated, created)
}

// GetOrder возвращает заказ, если он принадлежит пользователю из пути.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := orderIDs(r)
	if !ok {
		http.Error(w, msgInvalidOrderID, http.StatusBadRequest)
		return
	}

	o, err := h.orders.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			http.Error(w, msgOrderNotFound, http.StatusNotFound)
			return
		}
		h.storeFailure(w, "get order error", err, zap.Int64("userID", userID), zap.Int64("orderID", orderID))
		return
	}

	writeJSON(w, http.StatusOK, o)
}

// UpdateOrder полностью заменяет данные заказа.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := orderIDs(r)
	if !ok {
		http.Error(w, msgInvalidOrderID, http.StatusBadRequest)
		return
	}

	o, err := decodeOrder(r, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.orders.UpdateOrder(r.Context(), userID, orderID, o)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			http.Error(w, msgOrderNotFound, http.StatusNotFound)
			return
		}
		h.storeFailure(w, "update order error", err, zap.Int64("userID", userID), zap.Int64("orderID", orderID))
		return
	}

	h.publish(r.Context(), events.Updated, events.ResourceOrder, updated.ID, userID, updated)
	writeJSON(w, http.StatusOK, updated)
}

// PatchOrder обновляет только переданные поля заказа.
func (h *Handler) PatchOrder(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := orderIDs(r)
	if !ok {
		http.Error(w, msgInvalidOrderID, http.StatusBadRequest)
		return
	}

	var patch model.PartialOrderUpdate
	if err := decodeBody(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patched, err := h.orders.PatchOrder(r.Context(), userID, orderID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			http.Error(w, msgOrderNotFound, http.StatusNotFound)
			return
		}
		h.storeFailure(w, "patch order error", err, zap.Int64("userID", userID), zap.Int64("orderID", orderID))
		return
	}

	if !patch.IsEmpty() {
		h.publish(r.Context(), events.Patched, events.ResourceOrder, patched.ID, userID, patched)
	}
	writeJSON(w, http.StatusOK, patched)
}

// DeleteOrder удаляет заказ пользователя.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, orderID, ok := orderIDs(r)
	if !ok {
		http.Error(w, msgInvalidOrderID, http.StatusBadRequest)
		return
	}

	deleted, err := h.orders.DeleteOrder(r.Context(), userID, orderID)
	if err != nil {
		h.storeFailure(w, "delete order error", err, zap.Int64("userID", userID), zap.Int64("orderID", orderID))
		return
	}
	if !deleted {
		http.Error(w, msgOrderNotFound, http.StatusNotFound)
		return
	}

	h.publish(r.Context(), events.Deleted, events.ResourceOrder, orderID, userID, nil)
	w.WriteHeader(http.StatusNoContent)
}
