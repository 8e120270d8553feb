package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/logger"
)

// loadSlot decodes a client slot into dst. It reports false when the slot
// is empty. A slot holding malformed JSON is logged and cleared, and is then
// treated as empty.
func loadSlot(ctx context.Context, store domain.SlotStore, clientID, slot string, dst interface{}) (bool, error) {
	raw, err := store.Get(ctx, clientID, slot)
	if errors.Is(err, domain.ErrSlotEmpty) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", slot, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Log.Warn("Discarding malformed slot", "client_id", clientID, "slot", slot, "error", err)
		if delErr := store.Delete(ctx, clientID, slot); delErr != nil {
			logger.Log.Error("Failed to reset slot", "client_id", clientID, "slot", slot, "error", delErr)
		}
		return false, nil
	}
	return true, nil
}

func storeSlot(ctx context.Context, store domain.SlotStore, clientID, slot string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := store.Put(ctx, clientID, slot, raw); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}
