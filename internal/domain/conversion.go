package domain

import "time"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusFailed:
		return true
	}
	return false
}

// ConversionRecord - запись истории конвертаций. После создания не изменяется.
type ConversionRecord struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	FromAmount float64   `json:"from_amount"`
	ToAmount   float64   `json:"to_amount"`
	Rate       float64   `json:"rate"`
	Fee        float64   `json:"fee"` // в валюте From
	Status     Status    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}
