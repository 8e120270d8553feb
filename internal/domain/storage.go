package domain

import (
	"context"
	"errors"
)

// Named slots in a client's key-value storage.
const (
	SlotProfile = "eligibilityData"
	SlotSaved   = "savedOpportunities"
	SlotUser    = "user"
)

var ErrSlotEmpty = errors.New("slot is empty")

// SlotStore is the client-side key-value storage: one JSON document per
// (client, slot). Get returns ErrSlotEmpty for a slot never written.
type SlotStore interface {
	Get(ctx context.Context, clientID, slot string) ([]byte, error)
	Put(ctx context.Context, clientID, slot string, value []byte) error
	Delete(ctx context.Context, clientID, slot string) error
	Ping(ctx context.Context) error
}
