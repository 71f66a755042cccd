package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
)

// ClockStateStore persists the single game clock row.
type ClockStateStore struct {
	pool *pgxpool.Pool
}

func NewClockStateStore(pool *pgxpool.Pool) *ClockStateStore {
	return &ClockStateStore{pool: pool}
}

func (s *ClockStateStore) Load(ctx context.Context) (domain.GameClockState, error) {
	var (
		st    domain.GameClockState
		speed string
	)
	err := s.pool.QueryRow(ctx, `SELECT game_date, running, speed, updated_at FROM game_clock WHERE id = 1`).
		Scan(&st.CurrentDate, &st.Running, &speed, &st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.GameClockState{}, domain.ErrClockStateNotFound
	}
	if err != nil {
		return domain.GameClockState{}, err
	}
	st.Speed = domain.GameSpeed(speed)
	st.CurrentDate = domain.DateOf(st.CurrentDate)
	st.UpdatedAt = st.UpdatedAt.UTC()
	return st, nil
}

func (s *ClockStateStore) Save(ctx context.Context, st domain.GameClockState) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO game_clock (id, game_date, running, speed, updated_at)
VALUES (1, $1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET game_date = EXCLUDED.game_date, running = EXCLUDED.running, speed = EXCLUDED.speed, updated_at = EXCLUDED.updated_at`,
		domain.DateOf(st.CurrentDate), st.Running, string(st.Speed), st.UpdatedAt.UTC())
	return err
}
