// Package kafka publishes exported edges to a Kafka topic with a sarama
// synchronous producer. Each record is one message keyed by its sender
// address, so transfers from the same address keep their order within a
// partition.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/aethersight/internal/edgeexport"
	"github.com/gabapcia/aethersight/internal/pkg/logger"
	"github.com/gabapcia/aethersight/internal/pkg/resilience/retry"

	"github.com/IBM/sarama"
)

var (
	// ErrNoBrokers is returned by NewProducer without broker addresses.
	ErrNoBrokers = errors.New("no kafka brokers configured")

	// ErrNoTopic is returned by NewProducer without a topic.
	ErrNoTopic = errors.New("no kafka topic configured")
)

// Envelope wraps every published record.
type Envelope struct {
	Type string          `json:"type"`
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

// recordType tags edge records in the envelope.
const recordType = "edge"

type producer struct {
	topic string
	sp    sarama.SyncProducer
	now   func() time.Time
}

var _ edgeexport.Publisher = (*producer)(nil)

// Publish sends records as one batch and waits for the broker
// acknowledgements.
func (p *producer) Publish(ctx context.Context, records []edgeexport.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ts := p.now().UnixMilli()

	msgs := make([]*sarama.ProducerMessage, len(records))
	for i, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}

		value, err := json.Marshal(Envelope{Type: recordType, TS: ts, Data: data})
		if err != nil {
			return err
		}

		msgs[i] = &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(r.From),
			Value: sarama.ByteEncoder(value),
		}
	}

	if err := p.sp.SendMessages(msgs); err != nil {
		var perrs sarama.ProducerErrors
		if errors.As(err, &perrs) {
			return fmt.Errorf("kafka publish failed for %d of %d records: %w", len(perrs), len(msgs), err)
		}
		return fmt.Errorf("kafka publish failed: %w", err)
	}

	return nil
}

// Close flushes and closes the producer.
func (p *producer) Close() error {
	return p.sp.Close()
}

func newProducer(sp sarama.SyncProducer, topic string) *producer {
	return &producer{
		topic: topic,
		sp:    sp,
		now:   time.Now,
	}
}

// NewConfig returns the producer configuration: all in-sync replicas must
// acknowledge, and the synchronous producer reports both outcomes.
func NewConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "aethersight"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 10
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	return cfg
}

// NewProducer connects to brokers, retrying with backoff while the cluster
// is not reachable yet.
func NewProducer(ctx context.Context, brokers []string, topic string) (*producer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if topic == "" {
		return nil, ErrNoTopic
	}

	r := retry.New(retry.WithOnRetry(func(attempt uint, err error) {
		logger.Warn(ctx, "kafka connection attempt failed", "brokers", brokers, "attempt", attempt+1, "error", err)
	}))

	var sp sarama.SyncProducer
	err := r.Execute(ctx, func() error {
		var err error
		sp, err = sarama.NewSyncProducer(brokers, NewConfig())
		return err
	})
	if err != nil {
		return nil, err
	}

	return newProducer(sp, topic), nil
}
