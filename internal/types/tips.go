package types

import (
	"time"

	"github.com/google/uuid"
)

// TipTaskStatus is the observable state of a tip generation.
type TipTaskStatus string

const (
	TipTaskPending   TipTaskStatus = "pending"
	TipTaskSucceeded TipTaskStatus = "succeeded"
	TipTaskFailed    TipTaskStatus = "failed"
)

// TipTask tracks one asynchronous tip generation for one location.
type TipTask struct {
	ID           uuid.UUID     `json:"id"`
	LocationID   int           `json:"location_id"`
	LocationName string        `json:"location_name"`
	Status       TipTaskStatus `json:"status"`
	Text         string        `json:"text,omitempty"`
	Error        string        `json:"error,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
}

// Done reports whether the task reached a terminal state.
func (t TipTask) Done() bool {
	return t.Status == TipTaskSucceeded || t.Status == TipTaskFailed
}
