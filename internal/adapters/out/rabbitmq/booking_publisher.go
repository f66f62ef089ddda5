package rabbitmq

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
)

const AppointmentBookedRoutingKey = "appointment.booked"

type BookingPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   out.LoggerPort
	mu       sync.Mutex
}

func NewBookingPublisher(cfg *config.Config, logger out.LoggerPort) (*BookingPublisher, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, booking events will not be published",
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

	err = channel.ExchangeDeclare(
		cfg.RabbitMQ.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.exchange.failed", out.LogFields{
			"exchange": cfg.RabbitMQ.Exchange,
			"error":    err.Error(),
		})
		return nil, err
	}

	return &BookingPublisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.RabbitMQ.Exchange,
		logger:   logger,
	}, nil
}

func (p *BookingPublisher) PublishAppointmentBooked(ctx context.Context, appointment domain.Appointment) error {
	msg, err := newAppointmentBookedMessage(appointment, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		AppointmentBookedRoutingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return err
	}

	p.logger.Debug("appointment.booked.published", out.LogFields{
		"messageId":  msg.MessageId,
		"facilityId": appointment.FacilityID,
		"start":      appointment.Start,
	})

	return nil
}

func (p *BookingPublisher) Stop() error {
	if p == nil || p.channel == nil {
		return nil
	}

	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

func newAppointmentBookedMessage(appointment domain.Appointment, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(appointment)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    now,
		Type:         AppointmentBookedRoutingKey,
		Body:         body,
	}, nil
}
