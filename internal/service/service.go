// Package service содержит сервисы пользователей и заказов поверх DAO.
package service

//go:generate mockgen -destination=servicemock/repository.go -package=servicemock . UserRepository,OrderRepository

import (
	"context"

	"github.com/mmeshcher/users-orders-api/internal/model"
)

// UserRepository описывает контракт доступа к пользователям.
type UserRepository interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error)
	PatchUser(ctx context.Context, id int64, p model.PartialUserUpdate) (model.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// OrderRepository описывает контракт доступа к заказам, ограниченным владельцем.
type OrderRepository interface {
	CreateOrder(ctx context.Context, userID int64, o model.Order) (model.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateOrder(ctx context.Context, userID, orderID int64, o model.Order) (model.Order, error)
	PatchOrder(ctx context.Context, userID, orderID int64, p model.PartialOrderUpdate) (model.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID int64) (bool, error)
}

// UserService делегирует операции над пользователями репозиторию.
type UserService struct {
	repo UserRepository
}

// NewUserService создаёт сервис пользователей.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser создаёт пользователя.
func (s *UserService) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	return s.repo.CreateUser(ctx, u)
}

// GetUser возвращает пользователя по идентификатору.
func (s *UserService) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

// ListUsers возвращает всех пользователей.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUser полностью заменяет данные пользователя.
func (s *UserService) UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error) {
	return s.repo.UpdateUser(ctx, id, u)
}

// PatchUser частично обновляет пользователя.
func (s *UserService) PatchUser(ctx context.Context, id int64, p model.PartialUserUpdate) (model.User, error) {
	return s.repo.PatchUser(ctx, id, p)
}

// DeleteUser удаляет пользователя и его заказы.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteUser(ctx, id)
}

// OrderService делегирует операции над заказами репозиторию.
type OrderService struct {
	repo OrderRepository
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// CreateOrder создаёт заказ пользователя.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, o model.Order) (model.Order, error) {
	return s.repo.CreateOrder(ctx, userID, o)
}

// GetOrder возвращает заказ пользователя.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID int64) (model.Order, error) {
	return s.repo.GetOrder(ctx, userID, orderID)
}

// ListOrdersByUser возвращает заказы пользователя.
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

// UpdateOrder полностью заменяет данные заказа.
func (s *OrderService) UpdateOrder(ctx context.Context, userID, orderID int64, o model.Order) (model.Order, error) {
	return s.repo.UpdateOrder(ctx, userID, orderID, o)
}

// PatchOrder частично обновляет заказ.
func (s *OrderService) PatchOrder(ctx context.Context, userID, orderID int64, p model.PartialOrderUpdate) (model.Order, error) {
	return s.repo.PatchOrder(ctx, userID, orderID, p)
}

// DeleteOrder удаляет заказ пользователя.
func (s *OrderService) DeleteOrder(ctx context.Context, userID, orderID int64) (bool, error) {
	return s.repo.DeleteOrder(ctx, userID, orderID)
}
