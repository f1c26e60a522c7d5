package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"orderdesk/internal/notify"
)

// Publisher broadcasts notifications on a fanout exchange. It keeps one
// channel open and replaces it after any channel error.
type Publisher struct {
	conn     Connection
	exchange string

	mu       sync.Mutex
	ch       Channel
	declared bool
}

func NewPublisher(conn Connection, exchange string) *Publisher {
	return &Publisher{conn: conn, exchange: exchange}
}

func (p *Publisher) Notify(ctx context.Context, n notify.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   n.Timestamp,
		Type:        string(n.Severity),
		Body:        body,
	})
	if err != nil {
		p.resetChannel()
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close releases the open channel, if any. The connection is owned by the caller.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}

// channel returns the open channel, opening it and declaring the exchange as
// needed. The declaration is retried until it succeeds once. Callers hold p.mu.
func (p *Publisher) channel() (Channel, error) {
	if p.ch == nil {
		ch, err := p.conn.Channel()
		if err != nil {
			return nil, fmt.Errorf("failed to open channel: %w", err)
		}
		p.ch = ch
	}

	if !p.declared {
		if err := p.ch.ExchangeDeclare(p.exchange, "fanout", true, false, false, false, nil); err != nil {
			// A failed declare closes the channel on the broker side.
			p.resetChannel()
			return nil, fmt.Errorf("failed to declare exchange: %w", err)
		}
		p.declared = true
	}

	return p.ch, nil
}

func (p *Publisher) resetChannel() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
}
