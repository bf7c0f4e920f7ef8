// Package handler содержит HTTP-обработчики API пользователей и заказов.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/users-orders-api/internal/events"
	"github.com/mmeshcher/users-orders-api/internal/model"
	"github.com/mmeshcher/users-orders-api/internal/repository"
	"github.com/mmeshcher/users-orders-api/internal/validation"
)

const (
	paramUserID  = "userId"
	paramOrderID = "orderId"
)

// UserService определяет контракт операций над пользователями, используемый обработчиками.
type UserService interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error)
	PatchUser(ctx context.Context, id int64, p model.PartialUserUpdate) (model.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// OrderService определяет контракт операций над заказами пользователя.
type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, o model.Order) (model.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateOrder(ctx context.Context, userID, orderID int64, o model.Order) (model.Order, error)
	PatchOrder(ctx context.Context, userID, orderID int64, p model.PartialOrderUpdate) (model.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID int64) (bool, error)
}

// Handler реализует HTTP-обработчики API.
type Handler struct {
	users  UserService
	orders OrderService
	events events.Publisher
	logger *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
// Если publisher равен nil, события не публикуются.
func NewHandler(users UserService, orders OrderService, publisher events.Publisher, logger *zap.Logger) *Handler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Handler{
		users:  users,
		orders: orders,
		events: publisher,
		logger: logger,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := validation.ParseID(chi.URLParam(r, name))
	return id, err == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// storeFailure отвечает 500 с описанием ошибки хранилища.
func (h *Handler) storeFailure(w http.ResponseWriter, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if repository.IsConstraintViolation(err) {
		h.logger.Warn(msg, fields...)
	} else {
		h.logger.Error(msg, fields...)
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (h *Handler) publish(ctx context.Context, t events.Type, res events.Resource, id, userID int64, payload any) {
	e, err := events.New(t, res, id, userID, payload)
	if err == nil {
		err = h.events.Publish(ctx, e)
	}
	if err != nil {
		h.logger.Warn("publish event error",
			zap.Error(err),
			zap.String("type", string(t)),
			zap.String("resource", string(res)),
			zap.Int64("id", id),
		)
	}
}

type missingFields []string

func (m *missingFields) str(name string, v *string) string {
	if v == nil {
		*m = append(*m, name)
		return ""
	}
	return *v
}

func (m *missingFields) num(name string, v *int64) int64 {
	if v == nil {
		*m = append(*m, name)
		return 0
	}
	return *v
}

func (m missingFields) err() error {
	if len(m) == 0 {
		return nil
	}
	return fmt.Errorf("missing required fields: %s", strings.Join(m, ", "))
}
