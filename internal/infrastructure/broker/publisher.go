package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"main/internal/config"
	domain "main/internal/domain/entity/portfolio"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher fans out executed-transaction events to a RabbitMQ exchange so
// downstream consumers (statements, notifications) can react without polling
// the transaction log.
type Publisher struct {
	cfg    config.RabbitMQConfig
	logger *logrus.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(cfg config.RabbitMQConfig, logger *logrus.Logger) (*Publisher, error) {
	if cfg.URL == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	return &Publisher{cfg: cfg, logger: logger}, nil
}

// Start establishes the AMQP connection and declares the fanout exchange.
func (p *Publisher) Start() error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.cfg.TransactionsExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.cfg.TransactionsExchange, err)
	}
	p.conn = conn
	p.channel = ch
	p.logger.Infof("rabbitmq publisher started: exchange=%s", p.cfg.TransactionsExchange)
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// PublishTransaction marshals the transaction into an event envelope and
// fans it out. Safe to call on a nil Publisher; the server runs without a
// broker when none is configured.
func (p *Publisher) PublishTransaction(ctx context.Context, tx *domain.Transaction) error {
	if p == nil || p.channel == nil {
		return nil
	}
	body, err := json.Marshal(&TransactionMessage{Transaction: tx})
	if err != nil {
		return fmt.Errorf("encode transaction message: %w", err)
	}
	return p.channel.PublishWithContext(ctx, p.cfg.TransactionsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
