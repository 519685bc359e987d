package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/events"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/pkg/circuit_breaker"
	"github.com/Astemirdum/biblioteca/pkg/jsonx"
	"github.com/Astemirdum/biblioteca/pkg/kafka"
)

func loanEvent() model.LoanEvent {
	title := "O Cortiço"
	return model.NewLoanEvent(model.LoanCreated, model.Loan{
		ID:        7,
		Borrower:  "Rita Baiana",
		BookID:    3,
		BookTitle: &title,
		Status:    model.StatusActive,
	}, time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC))
}

func producerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	return cfg
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Parallel()
	ev := loanEvent()

	producer := mocks.NewSyncProducer(t, producerConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != kafka.LoanTopic {
			return errors.Errorf("unexpected topic %q", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "3" {
			return errors.Errorf("unexpected key %q", key)
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got model.LoanEvent
		if err := jsonx.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.ID != ev.ID || got.Type != model.LoanCreated || got.LoanID != 7 || got.Borrower != "Rita Baiana" {
			return errors.Errorf("unexpected event %+v", got)
		}
		return nil
	})

	p := events.NewKafkaPublisher(producer, kafka.LoanTopic, zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), ev))
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, producerConfig())
	// half of a 20 call window opens the breaker
	for i := 0; i < 10; i++ {
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}

	p := events.NewKafkaPublisher(producer, kafka.LoanTopic, zap.NewNop())
	for i := 0; i < 10; i++ {
		require.ErrorIs(t, p.Publish(context.Background(), loanEvent()), sarama.ErrOutOfBrokers)
	}
	require.ErrorIs(t, p.Publish(context.Background(), loanEvent()), circuit_breaker.ErrOpenCB)
	require.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	t.Parallel()
	p := events.NewNopPublisher()
	require.NoError(t, p.Publish(context.Background(), loanEvent()))
	require.NoError(t, p.Close())
}
