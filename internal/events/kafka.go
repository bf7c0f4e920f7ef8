package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события в топик Kafka.
type KafkaPublisher struct {
	writer messageWriter
	source string
}

const flushInterval = 10 * time.Millisecond

// NewKafkaPublisher создаёт асинхронного публикатора для указанных брокеров и топика.
// Publish не ждёт подтверждения брокера; ошибки доставки пишутся в logger.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: newWriter(brokers, topic, logger),
		source: "users-orders-api",
	}
}

func newWriter(brokers []string, topic string, logger *zap.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: flushInterval,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				logger.Warn("deliver events error",
					zap.Error(err),
					zap.String("topic", topic),
					zap.Int("messages", len(msgs)),
				)
			}
		},
	}
}

// Publish ставит событие в очередь на отправку. Ключ сообщения — ресурс и его
// идентификатор, поэтому события одной сущности попадают в одну партицию.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(e.Resource) + ":" + strconv.FormatInt(e.ID, 10)),
		Value: val,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "source", Value: []byte(p.source)},
			{Key: "event-type", Value: []byte(e.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Close сбрасывает буферы и закрывает соединения с брокерами.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
