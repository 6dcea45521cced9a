package mq

import (
	"time"
)

// BlockedRequestMessage represents a blocked request published to RocketMQ
type BlockedRequestMessage struct {
	RunID       string    `json:"run_id"`
	Host        string    `json:"host"`
	Line        string    `json:"line"`
	RequestTime time.Time `json:"request_time"`
}
