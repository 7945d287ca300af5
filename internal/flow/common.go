package flow

import "github.com/google/uuid"

// ExportChunkSize is the MaxChunkSize requested per exportdata call.
const ExportChunkSize int32 = 1000

var newQueueItemID = func() string {
	return uuid.NewString()
}

// NewQueueItemID returns a fresh idempotency key for a transaction call.
func NewQueueItemID() string {
	return newQueueItemID()
}
