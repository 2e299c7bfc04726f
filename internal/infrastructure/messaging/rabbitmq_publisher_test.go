package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"laboratorio_xpto/internal/domain/entities"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	confirms  chan amqp.Confirmation
	ack       bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func newTestPublisher(ack bool, err error) (*RabbitMQPublisher, *fakeChannel) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: ack, err: err}
	return &RabbitMQPublisher{ch: ch, queue: "orders.test", confirms: ch.confirms}, ch
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:        "o1",
		BudgetID:  "b1",
		Kind:      "orcamento",
		PatientID: "p1",
		Total:     100,
		ItemCount: 2,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRabbitMQPublisher_PublishOrderConfirmed(t *testing.T) {
	t.Run("publishes persistent json and waits for ack", func(t *testing.T) {
		p, ch := newTestPublisher(true, nil)
		if err := p.PublishOrderConfirmed(context.Background(), sampleOrder()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ch.published) != 1 || ch.keys[0] != "orders.test" {
			t.Fatalf("expected one message on orders.test, got %v", ch.keys)
		}
		msg := ch.published[0]
		if msg.DeliveryMode != amqp.Persistent || msg.MessageId != "o1" {
			t.Fatalf("unexpected publishing: %+v", msg)
		}
		var body OrderConfirmedMessage
		if err := json.Unmarshal(msg.Body, &body); err != nil {
			t.Fatalf("body: %v", err)
		}
		if body.Event != eventOrderConfirmed || body.BudgetID != "b1" || body.Total != 100 || body.ItemCount != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("nack is an error", func(t *testing.T) {
		p, _ := newTestPublisher(false, nil)
		err := p.PublishOrderConfirmed(context.Background(), sampleOrder())
		if !errors.Is(err, ErrPublishNotConfirmed) {
			t.Fatalf("expected ErrPublishNotConfirmed, got %v", err)
		}
	})

	t.Run("publish error is returned", func(t *testing.T) {
		boom := errors.New("channel closed")
		p, _ := newTestPublisher(true, boom)
		if err := p.PublishOrderConfirmed(context.Background(), sampleOrder()); !errors.Is(err, boom) {
			t.Fatalf("expected channel error, got %v", err)
		}
	})
}
