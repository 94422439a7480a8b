// Package events публикует события учётных записей во внешнюю шину.
// Публикация не влияет на результат запроса: ошибки только логируются.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/jboard/orchestrator/internal/lib/rabbitmq"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// Publisher отправляет событие учётной записи.
type Publisher interface {
	Publish(ctx context.Context, eventType, username string, role models.Role)
}

// Nop ничего не публикует. Используется, когда брокер не настроен.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, models.Role) {}

// AMQPPublisher публикует события в topic-exchange, routing key равен типу события.
//
// Канал не переоткрывается: если брокер закрыл канал или соединение, издатель
// отключается и дальнейшие события только логируются до перезапуска процесса.
type AMQPPublisher struct {
	log      *slog.Logger
	exchange string
	now      func() time.Time
	newID    func() string

	mu sync.Mutex
	ch *amqp.Channel
}

// NewAMQPPublisher создаёт издателя поверх открытого канала.
func NewAMQPPublisher(ch *amqp.Channel, exchange string, log *slog.Logger) *AMQPPublisher {
	p := &AMQPPublisher{
		log:      log,
		exchange: exchange,
		now:      time.Now,
		newID:    uuid.NewString,
		ch:       ch,
	}
	if ch != nil {
		go p.watch(ch.NotifyClose(make(chan *amqp.Error, 1)))
	}
	return p
}

// watch отключает издателя, когда брокер закрывает канал.
// Закрытие через Close приходит без ошибки и ничего не делает.
func (p *AMQPPublisher) watch(closed <-chan *amqp.Error) {
	const op = "events.AMQPPublisher.watch"
	amqpErr, ok := <-closed
	if !ok || amqpErr == nil {
		return
	}
	p.log.Error("broker closed the channel, account events disabled until restart",
		sl.Op(op), sl.Err(amqpErr))

	p.mu.Lock()
	p.ch = nil
	p.mu.Unlock()
}

// Publish строит событие и публикует его.
func (p *AMQPPublisher) Publish(ctx context.Context, eventType, username string, role models.Role) {
	const op = "events.AMQPPublisher.Publish"
	log := p.log.With(sl.Op(op), slog.String("event", eventType), slog.String("username", username))

	event := p.newEvent(eventType, username, role)
	if err := p.send(event); err != nil {
		log.WarnContext(ctx, "failed to publish account event", sl.Err(err))
		return
	}
	log.DebugContext(ctx, "account event published", slog.String("event_id", event.ID))
}

func (p *AMQPPublisher) newEvent(eventType, username string, role models.Role) models.AccountEvent {
	return models.AccountEvent{
		ID:         p.newID(),
		Type:       eventType,
		Username:   username,
		Role:       role,
		OccurredAt: p.now().UTC(),
	}
}

// amqp.Channel не рассчитан на одновременную публикацию из нескольких горутин.
func (p *AMQPPublisher) send(event models.AccountEvent) error {
	const op = "events.AMQPPublisher.send"
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return fmt.Errorf("%s: channel is closed", op)
	}
	return rabbitmq.PublishMessage(p.ch, p.exchange, event.Type, rabbitmq.Message{
		ID:        event.ID,
		Type:      event.Type,
		Timestamp: event.OccurredAt,
		Body:      event,
	})
}

// Close закрывает канал. Последующие публикации логируются как ошибки.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}
