// Package events публикует события об изменениях пользователей и заказов.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Type описывает вид изменения.
type Type string

const (
	Created Type = "created"
	Updated Type = "updated"
	Patched Type = "patched"
	Deleted Type = "deleted"
)

// Resource описывает тип изменённой сущности.
type Resource string

const (
	ResourceUser  Resource = "user"
	ResourceOrder Resource = "order"
)

// Event описывает одно изменение сущности.
type Event struct {
	Type       Type            `json:"type"`
	Resource   Resource        `json:"resource"`
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// New создаёт событие и сериализует состояние сущности в Payload.
// Для удаления payload обычно nil.
func New(t Type, r Resource, id, userID int64, payload any) (Event, error) {
	e := Event{
		Type:       t,
		Resource:   r,
		ID:         id,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		e.Payload = raw
	}
	return e, nil
}

// Publisher отправляет события во внешнюю систему.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop ничего не публикует. Используется, когда брокер не настроен.
type Nop struct{}

// Publish ничего не делает.
func (Nop) Publish(context.Context, Event) error { return nil }

// Close ничего не делает.
func (Nop) Close() error { return nil }
