package events

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/pkg/circuit_breaker"
	"github.com/Astemirdum/biblioteca/pkg/jsonx"
)

type Publisher interface {
	Publish(ctx context.Context, event model.LoanEvent) error
	Close() error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

var _ Publisher = (*kafkaPublisher)(nil)

const (
	cbRecordLength     = 20
	cbTimeout          = 30 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

// NewKafkaPublisher sends loan events to topic, keyed by book id so events of
// one book keep their order. A circuit breaker stops calling a broker that
// keeps failing.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.NewCircuitBreaker(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, event model.LoanEvent) error {
	data, err := jsonx.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal loan event")
	}
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(strconv.Itoa(event.BookID)),
		Value:     sarama.ByteEncoder(data),
		Timestamp: event.Timestamp,
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "send loan event")
		}
		p.log.Debug("loan event sent",
			zap.String("type", string(event.Type)),
			zap.Int("loan_id", event.LoanID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct{}

// NewNopPublisher is used when no Kafka brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, model.LoanEvent) error { return nil }

func (nopPublisher) Close() error { return nil }
