package internal

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a fresh id used to correlate the log lines of one request
func GenerateRequestID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return "00000000-0000-0000-0000-000000000000"
	}
	return id.String()
}
