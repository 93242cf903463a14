package nsq

import (
	"errors"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
)

// MessageHandler processes the body of an NSQ message
type MessageHandler func(message []byte) error

// ErrSkipMessage tells the consumer to finish a message it cannot use instead of requeueing it
var ErrSkipMessage = errors.New("skip message")

// Consumer handles consuming messages from an NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
}

// zapNSQLogger routes go-nsq logs through the application logger
type zapNSQLogger struct{}

func (zapNSQLogger) Output(_ int, s string) error {
	logger.Debug("nsq", logger.String("message", s))
	return nil
}

// NewConsumer creates a consumer and connects it to lookupd when configured, to nsqd otherwise
func NewConsumer(topic, channel string, cfg models.NSQConfig, handler MessageHandler) (*Consumer, error) {
	consumer, err := nsq.NewConsumer(topic, channel, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(zapNSQLogger{}, nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(handler))

	if len(cfg.LookupdAddress) > 0 {
		err = consumer.ConnectToNSQLookupds(cfg.LookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(cfg.Address)
	}
	if err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect NSQ consumer: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// wrapHandler finishes handled or skipped messages and requeues failed ones
func wrapHandler(handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		err := handler(message.Body)
		if errors.Is(err, ErrSkipMessage) {
			logger.Warn("Dropping NSQ message", logger.Err(err))
			return nil
		}
		if err != nil {
			logger.Error("Error processing NSQ message", logger.Err(err))
			return err
		}
		return nil
	}
}

// Stop stops the consumer and waits until it has shut down
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
