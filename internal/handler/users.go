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
	msgInvalidUserID = "Invalid or missing ID"
	msgUserNotFound  = "User not found"
)

type userRequest struct {
	FirstName           *string `json:"firstName"`
	LastName            *string `json:"lastName"`
	Email               *string `json:"email"`
	FirstLineOfAddress  *string `json:"firstLineOfAddress"`
	SecondLineOfAddress *string `json:"secondLineOfAddress"`
	Town                *string `json:"town"`
	PostCode            *string `json:"postCode"`
}

func (req userRequest) toModel() (model.User, error) {
	var missing missingFields
	u := model.User{
		FirstName:           missing.str("firstName", req.FirstName),
		LastName:            missing.str("lastName", req.LastName),
		Email:               missing.str("email", req.Email),
		FirstLineOfAddress:  missing.str("firstLineOfAddress", req.FirstLineOfAddress),
		SecondLineOfAddress: req.SecondLineOfAddress,
		Town:                missing.str("town", req.Town),
		PostCode:            missing.str("postCode", req.PostCode),
	}
	return u, missing.err()
}

func decodeUser(r *http.Request) (model.User, error) {
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		return model.User{}, err
	}
	return req.toModel()
}

// ListUsers возвращает всех пользователей.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.storeFailure(w, "list users error", err)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUser возвращает пользователя по идентификатору.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, paramUserID)
	if !ok {
		http.Error(w, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		h.storeFailure(w, "get user error", err, zap.Int64("userID", id))
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// CreateUser создаёт пользователя и возвращает его с присвоенным идентификатором.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	u, err := decodeUser(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.users.CreateUser(r.Context(), u)
	if err != nil {
		h.storeFailure(w, "create user error", err)
		return
	}

	h.publish(r.Context(), events.Created, events.ResourceUser, created.ID, created.ID, created)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateUser полностью заменяет данные пользователя.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, paramUserID)
	if !ok {
		http.Error(w, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	u, err := decodeUser(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.users.UpdateUser(r.Context(), id, u)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		h.storeFailure(w, "update user error", err, zap.Int64("userID", id))
		return
	}

	h.publish(r.Context(), events.Updated, events.ResourceUser, updated.ID, updated.ID, updated)
	writeJSON(w, http.StatusOK, updated)
}

// PatchUser обновляет только переданные поля пользователя.
func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, paramUserID)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	var patch model.PartialUserUpdate
	if err := decodeBody(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patched, err := h.users.PatchUser(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		h.storeFailure(w, "patch user error", err, zap.Int64("userID", id))
		return
	}

	if !patch.IsEmpty() {
		h.publish(r.Context(), events.Patched, events.ResourceUser, patched.ID, patched.ID, patched)
	}
	writeJSON(w, http.StatusOK, patched)
}

// DeleteUser удаляет пользователя вместе с его заказами.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, paramUserID)
	if !ok {
		http.Error(w, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	deleted, err := h.users.DeleteUser(r.Context(), id)
	if err != nil {
		h.storeFailure(w, "delete user error", err, zap.Int64("userID", id))
		return
	}
	if !deleted {
		http.Error(w, msgUserNotFound, http.StatusNotFound)
		return
	}

	h.publish(r.Context(), events.Deleted, events.ResourceUser, id, id, nil)
	w.WriteHeader(http.StatusNoContent)
}
