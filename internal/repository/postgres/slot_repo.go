package postgres

import (
	"context"
	"errors"
	"fmt"

	"edu-finder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS client_slots (
    client_id  UUID        NOT NULL,
    slot       TEXT        NOT NULL,
    value      JSONB       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (client_id, slot)
)`

type slotRepo struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) domain.SlotStore {
	return &slotRepo{db: db}
}

// EnsureSchema creates the client_slots table when it does not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create client_slots: %w", err)
	}
	return nil
}

func (r *slotRepo) Get(ctx context.Context, clientID, slot string) ([]byte, error) {
	query := `SELECT value::text FROM client_slots WHERE client_id = $1 AND slot = $2`
	var value string
	err := r.db.QueryRow(ctx, query, clientID, slot).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return []byte(value), nil
}

// Put stores value as text and lets Postgres parse it. A malformed value is
// rejected by the JSONB cast rather than stored.
func (r *slotRepo) Put(ctx context.Context, clientID, slot string, value []byte) error {
	query := `INSERT INTO client_slots (client_id, slot, value, updated_at)
              VALUES ($1, $2, $3::jsonb, NOW())
              ON CONFLICT (client_id, slot)
              DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.db.Exec(ctx, query, clientID, slot, string(value)); err != nil {
		return fmt.Errorf("put slot: %w", err)
	}
	return nil
}

func (r *slotRepo) Delete(ctx context.Context, clientID, slot string) error {
	query := `DELETE FROM client_slots WHERE client_id = $1 AND slot = $2`
	if _, err := r.db.Exec(ctx, query, clientID, slot); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

func (r *slotRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
