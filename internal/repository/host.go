package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/successxx/punctual/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const hostColumns = `id, name, email, telegram_chat_id, timezone,
	booking_duration_minutes, buffer_minutes, created_at, updated_at`

type HostRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHostRepo(db *dbpg.DB) *HostRepository {
	return &HostRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HostRepository) Create(ctx context.Context, h *domain.Host) error {
	query := `INSERT INTO hosts (id, name, email, telegram_chat_id, timezone,
				booking_duration_minutes, buffer_minutes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, h.ID, h.Name, h.Email, h.TelegramChatID, h.Timezone,
		int(h.BookingDuration/time.Minute), int(h.BufferTime/time.Minute),
		h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert host: %w", classify(err))
	}

	return nil
}

func (r *HostRepository) GetByID(ctx context.Context, id string) (*domain.Host, error) {
	query := `SELECT ` + hostColumns + ` FROM hosts WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get host: %w", classify(err))
	}

	h, err := scanHost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHostNotFound
		}
		return nil, fmt.Errorf("scan host: %w", classify(err))
	}
	return h, nil
}

func (r *HostRepository) UpdateConfig(ctx context.Context, id string, cfg domain.SchedulingConfig) (*domain.Host, error) {
	query := `UPDATE hosts
			  SET timezone = $2, booking_duration_minutes = $3, buffer_minutes = $4, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + hostColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id, cfg.Timezone,
		int(cfg.BookingDuration/time.Minute), int(cfg.BufferTime/time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("update host config: %w", classify(err))
	}

	h, err := scanHost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHostNotFound
		}
		return nil, fmt.Errorf("scan host: %w", classify(err))
	}
	return h, nil
}

func scanHost(row rowScanner) (*domain.Host, error) {
	var (
		h               domain.Host
		chatID          sql.NullInt64
		durationMinutes int
		bufferMinutes   int
	)
	if err := row.Scan(
		&h.ID, &h.Name, &h.Email, &chatID, &h.Timezone,
		&durationMinutes, &bufferMinutes, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if chatID.Valid {
		h.TelegramChatID = &chatID.Int64
	}
	h.BookingDuration = time.Duration(durationMinutes) * time.Minute
	h.BufferTime = time.Duration(bufferMinutes) * time.Minute
	return &h, nil
}
