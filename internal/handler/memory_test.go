package handler

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mmeshcher/users-orders-api/internal/model"
	"github.com/mmeshcher/users-orders-api/internal/repository"
)

// memoryStore реализует UserService и OrderService в памяти с теми же
// правилами владения и каскадного удаления, что и PostgreSQL.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	users   map[int64]model.User
	orders  map[int64]model.Order
	failErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:  make(map[int64]model.User),
		orders: make(map[int64]model.Order),
	}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryStore) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return model.User{}, m.failErr
	}
	u.ID = m.id()
	m.users[u.ID] = u
	return u, nil
}

func (m *memoryStore) GetUser(ctx context.Context, id int64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return model.User{}, m.failErr
	}
	u, ok := m.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryStore) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	res := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m *memoryStore) UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	u.ID = id
	m.users[id] = u
	return u, nil
}

func (m *memoryStore) PatchUser(ctx context.Context, id int64, p model.PartialUserUpdate) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	patchString(&u.FirstName, p.FirstName)
	patchString(&u.LastName, p.LastName)
	patchString(&u.Email, p.Email)
	patchString(&u.FirstLineOfAddress, p.FirstLineOfAddress)
	if p.SecondLineOfAddress.Set {
		u.SecondLineOfAddress = nil
		if !p.SecondLineOfAddress.Null {
			u.SecondLineOfAddress = model.StringPtr(p.SecondLineOfAddress.Value)
		}
	}
	patchString(&u.Town, p.Town)
	patchString(&u.PostCode, p.PostCode)
	m.users[id] = u
	return u, nil
}

func patchString(dst *string, f model.Field[string]) {
	if f.Present() {
		*dst = f.Value
	}
}

func (m *memoryStore) DeleteUser(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return false, m.failErr
	}
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	for oid, o := range m.orders {
		if o.UserID == id {
			delete(m.orders, oid)
		}
	}
	return true, nil
}

func (m *memoryStore) CreateOrder(ctx context.Context, userID int64, o model.Order) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[userID]; !ok {
		return model.Order{}, &repository.StoreError{
			Op:   "create order",
			Code: "23503",
			Err:  errors.New("violates foreign key constraint"),
		}
	}
	o.ID = m.id()
	o.UserID = userID
	m.orders[o.ID] = o
	return o, nil
}

func (m *memoryStore) owned(userID, orderID int64) (model.Order, bool) {
	o, ok := m.orders[orderID]
	if !ok || o.UserID != userID {
		return model.Order{}, false
	}
	return o, true
}

func (m *memoryStore) GetOrder(ctx context.Context, userID, orderID int64) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.owned(userID, orderID)
	if !ok {
		return model.Order{}, repository.ErrOrderNotFound
	}
	return o, nil
}

func (m *memoryStore) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]model.Order, 0)
	for _, o := range m.orders {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m *memoryStore) UpdateOrder(ctx context.Context, userID, orderID int64, o model.Order) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(userID, orderID); !ok {
		return model.Order{}, repository.ErrOrderNotFound
	}
	o.ID = orderID
	o.UserID = userID
	m.orders[orderID] = o
	return o, nil
}

func (m *memoryStore) PatchOrder(ctx context.Context, userID, orderID int64, p model.PartialOrderUpdate) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.owned(userID, orderID)
	if !ok {
		return model.Order{}, repository.ErrOrderNotFound
	}
	patchString(&o.Description, p.Description)
	if p.PriceInPence.Present() {
		o.PriceInPence = p.PriceInPence.Value
	}
	if p.CompletedStatus.Present() {
		o.CompletedStatus = p.CompletedStatus.Value
	}
	m.orders[orderID] = o
	return o, nil
}

func (m *memoryStore) DeleteOrder(ctx context.Context, userID, orderID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(userID, orderID); !ok {
		return false, nil
	}
	delete(m.orders, orderID)
	return true, nil
}
