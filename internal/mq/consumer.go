package mq

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fansite/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// LogLineHandler receives one raw access log line
type LogLineHandler func(ctx context.Context, line string) error

// Consumer feeds raw access log lines from RocketMQ to a handler.
// A message body may carry several newline separated lines.
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler LogLineHandler
	mu      sync.Mutex
	started bool
}

// NewConsumer creates a new RocketMQ consumer on the log topic
func NewConsumer(cfg *config.RocketMQConfig, handler LogLineHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		// one queue consumer at a time keeps the stream in order
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithConsumerOrder(true),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.LogTopic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	err := c.client.Subscribe(c.topic, consumer.MessageSelector{}, c.consume)
	if err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Msg("RocketMQ consumer started")

	return nil
}

// consume hands each line to the handler. A failing line is logged and
// skipped; redelivery would double count the lines before it.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		lines := splitLines(msg.Body)

		log.Debug().
			Str("msg_id", msg.MsgId).
			Int("lines", len(lines)).
			Msg("Processing log lines")

		if c.handler == nil {
			continue
		}
		for _, line := range lines {
			if err := c.handler(ctx, line); err != nil {
				log.Warn().Err(err).Str("msg_id", msg.MsgId).Str("line", line).Msg("Handler rejected log line")
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

func splitLines(body []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
