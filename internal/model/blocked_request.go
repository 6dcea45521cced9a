package model

import (
	"time"
)

// BlockedRequest represents an archived request suppressed by the login blocker
type BlockedRequest struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RunID       string    `json:"run_id" gorm:"type:varchar(36);index;not null"`
	Host        string    `json:"host" gorm:"type:varchar(255);index"`
	Line        string    `json:"line" gorm:"type:text"`
	RequestTime time.Time `json:"request_time"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for BlockedRequest
func (BlockedRequest) TableName() string {
	return "blocked_requests"
}
