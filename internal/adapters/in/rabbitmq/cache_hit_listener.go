package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/in"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
)

type CacheHitListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.CacheInvalidationUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	CacheHitType         string
	CacheHitResourceType string
)

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	WeekKey      string
	CacheHitType CacheHitType
}

const (
	CacheHitResourceTypeSchedule CacheHitResourceType = "schedule"
)

const (
	CacheHitTypeStore      CacheHitType = "store"
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

// Вместо ключа недели в routing key приходит _all_, если сбросить нужно все недели
const allWeeksKey = "_all_"

func NewCacheHitListener(useCase in.CacheInvalidationUseCase, cfg *config.Config, logger out.LoggerPort) (*CacheHitListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &CacheHitListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *CacheHitListener) Start(ctx context.Context) error {
	err := l.channel.ExchangeDeclare(
		l.cfg.RabbitMQ.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.QueueBind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("schedule.queue.closed", out.LogFields{
						"queue": queue.Name,
					})
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("schedule.message.failed", out.LogFields{
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					// битый routing key не станет валидным при повторе
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("schedule.queue.started", out.LogFields{
		"queue": queue.Name,
		"bind":  l.cfg.RabbitMQ.QueueBind,
	})

	return nil
}

func (l *CacheHitListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *CacheHitListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := parseCacheMessageRoutingKey(msg.RoutingKey)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != CacheHitResourceTypeSchedule {
		return nil
	}

	// Расписание целиком принадлежит сервису доступности, store нам не нужен
	if routingKey.CacheHitType != CacheHitTypeInvalidate {
		return nil
	}

	if routingKey.WeekKey == allWeeksKey {
		if err := l.useCase.InvalidateAllWeeksCache(ctx); err != nil {
			return err
		}
		l.logger.Info("schedule.message.invalidated_all", out.LogFields{
			"source": routingKey.Source,
		})
		return nil
	}

	if err := l.useCase.InvalidateWeekCache(ctx, routingKey.WeekKey); err != nil {
		return err
	}
	l.logger.Info("schedule.message.invalidated", out.LogFields{
		"source":  routingKey.Source,
		"weekKey": routingKey.WeekKey,
	})

	return nil
}

// Пример routingKey:
// availability.slot-appointment-svc.schedule.20240715.invalidate
// availability.slot-appointment-svc.schedule._all_.invalidate
func parseCacheMessageRoutingKey(routingKey string) (CacheMessageRoutingKey, error) {
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 || parts[3] == "" {
		return CacheMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		WeekKey:      parts[3],
		CacheHitType: CacheHitType(parts[4]),
	}, nil
}
