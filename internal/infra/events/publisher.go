package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Виды событий ленты изменений
const (
	KindBookingCreated     = "booking_created"
	KindBookingRescheduled = "booking_rescheduled"
	KindBookingCancelled   = "booking_cancelled"
	KindRangeBlocked       = "range_blocked"
	KindRangeUnblocked     = "range_unblocked"
)

// ChangeEvent событие изменения расписания
//
// Лента изменений - это удобство для живых админских календарей: подписчик
// по событию заново запрашивает доступные слоты. Лента никогда не участвует
// в обнаружении конфликтов - этим занимается только проверка в момент коммита
type ChangeEvent struct {
	Kind      string `json:"kind"`
	Date      string `json:"date"` // YYYY-MM-DD
	ServiceID int64  `json:"serviceId,omitempty"`
	BookingID int64  `json:"bookingId,omitempty"`
}

// Publisher публикует события изменения расписания в redis-канал
type Publisher struct {
	client  *redis.Client
	channel string
	log     Logger
}

// NewPublisher создает подключенного к redis издателя событий
func NewPublisher(addr, password string, db int, channel string, log Logger) *Publisher {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Publisher{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// Publish отправляет событие в канал
// Сбой публикации логируется и не возвращается наружу: лента изменений
// не обязана быть надёжной
func (p *Publisher) Publish(ctx context.Context, event ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: failed to marshal change event: %v", err)
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Warn("events: failed to publish change event kind=%s date=%s: %v", event.Kind, event.Date, err)
		return
	}
}

// Close закрывает соединение с redis
func (p *Publisher) Close() error {
	if err := p.client.Close(); err != nil {
		return fmt.Errorf("events: close redis client: %w", err)
	}
	return nil
}

// NopPublisher издатель-заглушка для конфигурации с выключенной лентой событий
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(ctx context.Context, event ChangeEvent) {}
