package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const LoanTopic = "library.loans"

type Config struct {
	Addrs   []string      `envconfig:"KAFKA_ADDRS"`
	Timeout time.Duration `envconfig:"KAFKA_TIMEOUT" default:"3s"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 1
	defaultCfg.Producer.Timeout = cfg.Timeout
	defaultCfg.Net.DialTimeout = cfg.Timeout

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
