package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StatusCheck is an append-only liveness/audit record: a client announces
// itself and the server stamps the moment. Never updated or deleted.
type StatusCheck struct {
	ID         string
	ClientName string
	Timestamp  time.Time
}

// NewStatusCheck constructs a StatusCheck with generated ID and current timestamp.
func NewStatusCheck(clientName string) (*StatusCheck, error) {
	if clientName == "" {
		return nil, fmt.Errorf("client name must not be empty")
	}
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}, nil
}
