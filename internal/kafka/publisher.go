package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/pkg/retry"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// UsagePublisher streams usage records as JSON, keyed by identity id so one
// identity's records stay ordered within a partition.
type UsagePublisher struct {
	w messageWriter
}

func NewUsagePublisher(brokers []string, topic string) *UsagePublisher {
	return &UsagePublisher{w: &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}}
}

type usageEvent struct {
	ID         string    `json:"id"`
	IdentityID string    `json:"identityId"`
	Endpoint   string    `json:"endpoint"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

func (p *UsagePublisher) Write(ctx context.Context, rec domain.UsageRecord) error {
	b, err := json.Marshal(usageEvent{
		ID:         rec.ID,
		IdentityID: rec.IdentityID,
		Endpoint:   rec.Endpoint,
		Status:     string(rec.Status),
		Timestamp:  rec.Timestamp.UTC(),
	})
	if err != nil {
		return retry.Permanent(fmt.Errorf("encode usage event: %w", err))
	}
	err = p.w.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(rec.IdentityID),
		Value: b,
		Time:  rec.Timestamp,
	})
	// broker errors such as MessageSizeTooLarge will fail the same way again
	var kerr kafkago.Error
	if errors.As(err, &kerr) && !kerr.Temporary() {
		return retry.Permanent(err)
	}
	return err
}

func (p *UsagePublisher) Name() string { return "kafka" }

func (p *UsagePublisher) Close() error { return p.w.Close() }
