package usecase

import (
	"context"
	"time"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/logger"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	store  domain.SlotStore
	driver string
}

func NewHealthUsecase(store domain.SlotStore, driver string) HealthUsecase {
	return &healthUsecase{store: store, driver: driver}
}

// Check pings the slot store. The bool is false when storage is unreachable.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":  "ok",
		"storage": u.driver,
	}
	if err := u.store.Ping(ctx); err != nil {
		logger.Log.Error("Storage health check failed", "driver", u.driver, "error", err)
		status["status"] = "degraded"
		return status, false
	}
	return status, true
}
