package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/slots"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, host_id, guest_name, guest_email, notes, start_time, end_time, status,
	rescheduled_from, reminded_at, cancelled_at, created_at, updated_at`

type BookingRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

// NewBookingRepo builds a repository whose commit transactions wait at most
// lockTimeout for the host row lock.
func NewBookingRepo(db *dbpg.DB, lockTimeout time.Duration) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		lockTimeout: lockTimeout,
	}
}

// Create inserts b if no confirmed booking of the same host overlaps
// [b.Start-buffer, b.End+buffer). Check and insert run under the host row lock.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, buffer time.Duration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", classify(err))
	}
	defer tx.Rollback()

	if err = r.lockHost(ctx, tx, b.HostID); err != nil {
		return err
	}
	if err = checkFree(ctx, tx, b, buffer); err != nil {
		return err
	}
	if err = insertBooking(ctx, tx, b); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", classify(err))
	}
	return nil
}

// Reschedule cancels oldID and inserts next in one transaction. Nothing changes
// when the new time is taken.
func (r *BookingRepository) Reschedule(
	ctx context.Context,
	oldID string,
	next *domain.Booking,
	buffer time.Duration,
) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", classify(err))
	}
	defer tx.Rollback()

	if err = r.lockHost(ctx, tx, next.HostID); err != nil {
		return nil, err
	}

	old, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 AND host_id = $2 FOR UPDATE`,
		oldID, next.HostID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", classify(err))
	}
	if !old.Confirmed() {
		return nil, domain.ErrBookingCancelled
	}

	// The old booking is released first so the new slot may overlap it.
	cancelled, err := scanBooking(tx.QueryRowContext(ctx,
		`UPDATE bookings
		 SET status = $2, cancelled_at = now(), updated_at = now()
		 WHERE id = $1
		 RETURNING `+bookingColumns,
		oldID, domain.BookingStatusCancelled,
	))
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", classify(err))
	}

	if err = checkFree(ctx, tx, next, buffer); err != nil {
		return nil, err
	}
	if err = insertBooking(ctx, tx, next); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", classify(err))
	}
	return cancelled, nil
}

// Cancel flips a confirmed booking to cancelled. The bool reports whether this
// call changed the row; a second cancel returns the stored booking and false.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, bool, error) {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id,
		domain.BookingStatusCancelled, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return nil, false, fmt.Errorf("cancel booking: %w", classify(err))
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("scan booking: %w", classify(err))
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", classify(err))
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", classify(err))
	}
	return b, nil
}

// ListConfirmedInRange returns confirmed bookings intersecting [from, to).
func (r *BookingRepository) ListConfirmedInRange(
	ctx context.Context,
	hostID string,
	from, to time.Time,
) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE host_id = $1 AND status = $2 AND start_time < $3 AND end_time > $4
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hostID, domain.BookingStatusConfirmed, to, from)
	if err != nil {
		return nil, fmt.Errorf("list confirmed bookings: %w", classify(err))
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListByHost returns bookings of any status intersecting [from, to).
func (r *BookingRepository) ListByHost(ctx context.Context, hostID string, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE host_id = $1 AND start_time < $2 AND end_time > $3
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hostID, to, from)
	if err != nil {
		return nil, fmt.Errorf("list bookings by host: %w", classify(err))
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ClaimDueReminders marks confirmed bookings starting in (from, to] as reminded
// and returns them. Each booking is claimed once.
func (r *BookingRepository) ClaimDueReminders(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET reminded_at = now(), updated_at = now()
        WHERE status = $1
          AND reminded_at IS NULL
          AND start_time > $2
          AND start_time <= $3
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed, from, to)
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", classify(err))
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) lockHost(ctx context.Context, tx *sql.Tx, hostID string) error {
	lockQuery := fmt.Sprintf(`SET LOCAL lock_timeout = %d`, r.lockTimeout.Milliseconds())
	if _, err := tx.ExecContext(ctx, lockQuery); err != nil {
		return fmt.Errorf("set lock timeout: %w", classify(err))
	}

	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM hosts WHERE id = $1 FOR UPDATE`, hostID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrHostNotFound
		}
		return fmt.Errorf("lock host: %w", classify(err))
	}
	return nil
}

func checkFree(ctx context.Context, tx *sql.Tx, b *domain.Booking, buffer time.Duration) error {
	from, to := slots.Expand(b.Start, b.End, buffer)

	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE host_id = $1 AND status = $2 AND start_time < $3 AND end_time > $4
			  )`
	var taken bool
	if err := tx.QueryRowContext(ctx, query, b.HostID, domain.BookingStatusConfirmed, to, from).Scan(&taken); err != nil {
		return fmt.Errorf("check overlap: %w", classify(err))
	}
	if taken {
		return domain.ErrSlotConflict
	}
	return nil
}

func insertBooking(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, host_id, guest_name, guest_email, notes,
				start_time, end_time, status, rescheduled_from, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := tx.ExecContext(
		ctx, query, b.ID, b.HostID, b.GuestName, b.GuestEmail, b.Notes,
		b.Start, b.End, b.Status, b.RescheduledFrom, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		switch pqCode(err) {
		case codeExclusionViolation:
			return domain.ErrSlotConflict
		case codeForeignKey:
			return domain.ErrHostNotFound
		}
		return fmt.Errorf("insert booking: %w", classify(err))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b               domain.Booking
		rescheduledFrom sql.NullString
		remindedAt      sql.NullTime
		cancelledAt     sql.NullTime
	)
	if err := row.Scan(
		&b.ID, &b.HostID, &b.GuestName, &b.GuestEmail, &b.Notes,
		&b.Start, &b.End, &b.Status,
		&rescheduledFrom, &remindedAt, &cancelledAt,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Start = b.Start.UTC()
	b.End = b.End.UTC()
	if rescheduledFrom.Valid {
		b.RescheduledFrom = &rescheduledFrom.String
	}
	if remindedAt.Valid {
		t := remindedAt.Time.UTC()
		b.RemindedAt = &t
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		b.CancelledAt = &t
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
