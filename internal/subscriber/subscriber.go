package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/config"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

// MessageReader is the part of kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type Handler func(ctx context.Context, topic string, value []byte) error

type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
	// Workers bounds how many messages are handled at once across all readers.
	Workers      int

	wg       sync.WaitGroup
	poolOnce sync.Once
	pool     *errgroup.Group
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
	workers int,
) *KafkaConsumer {
	readers := make([]MessageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
		Workers:      workers,
	}
}

// Listen starts one goroutine per reader. They stop when ctx is done.
// Each message is handled on the shared worker pool, so a message that is
// being retried does not hold back the ones read after it.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	pool := c.workerPool()
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r MessageReader) {
			defer c.wg.Done()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("Kafka read error: %s", err.Error())
					if !sleep(ctx, time.Second) {
						return
					}
					continue
				}
				pool.Go(func() error {
					c.ProcessMessage(ctx, msg, handler)
					return nil
				})
			}
		}(reader)
	}
}

// Close closes every reader and waits for the listeners and in-flight
// messages to finish.
func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.wg.Wait()
	_ = c.workerPool().Wait()
	return errors.Join(errs...)
}

func (c *KafkaConsumer) workerPool() *errgroup.Group {
	c.poolOnce.Do(func() {
		workers := c.Workers
		if workers <= 0 {
			workers = DefaultWorkers
		}
		c.pool = &errgroup.Group{}
		c.pool.SetLimit(workers)
	})
	return c.pool
}

// ProcessMessage runs handler with retries and parks the message on the DLQ
// once they are exhausted.
func (c *KafkaConsumer) ProcessMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		if attempt == c.RetryConfig.MaxAttempts-1 {
			logrus.Errorf("Handler error, attempt %d/%d: %v", attempt+1, c.RetryConfig.MaxAttempts, err)
			break
		}

		delay := publisher.Backoff(c.RetryConfig, attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, delay)
		if !sleep(ctx, delay) {
			return
		}
	}

	logrus.Errorf("Message failed after %d retries: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, dlqMessage); err != nil {
		logrus.Errorf("Failed to send message to DLQ: %v", err)
	} else {
		logrus.Warnf("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
