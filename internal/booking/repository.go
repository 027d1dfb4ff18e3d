package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrBookingConflict = errors.New("a non-cancelled booking already exists for this service at the scheduled time")

const bookingColumns = `id, service_id, user_id, service_snapshot, scheduled_at, duration,
	base_price, total_price, status, attributes, created_at, updated_at`

const conflictQuery = `
	SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE user_id = $1 AND service_id = $2 AND scheduled_at = $3 AND status <> 'cancelled'
	)`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func lockKey(userID, serviceID string, scheduledAt time.Time) string {
	return userID + "|" + serviceID + "|" + scheduledAt.UTC().Format(time.RFC3339Nano)
}

// Create inserts a booking inside one transaction. A transaction-scoped
// advisory lock on the (user, service, slot) key serializes concurrent
// creates, so the conflict check cannot race another insert. A plain unique
// index would not do: the forced override path must still be able to create
// duplicates.
func (r *repository) Create(ctx context.Context, p CreateParams) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		lockKey(p.UserID, p.ServiceID, p.ScheduledAt),
	); err != nil {
		return nil, err
	}

	var exists bool
	if err := tx.GetContext(ctx, &exists, conflictQuery, p.UserID, p.ServiceID, p.ScheduledAt); err != nil {
		return nil, err
	}
	if exists && !p.Force {
		return nil, ErrBookingConflict
	}

	query := `
		INSERT INTO bookings (id, service_id, user_id, service_snapshot, scheduled_at, duration,
			base_price, total_price, status, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9)
		RETURNING ` + bookingColumns

	var b Booking
	err = tx.GetContext(ctx, &b, query,
		uuid.NewString(), p.ServiceID, p.UserID, p.ServiceSnapshot, p.ScheduledAt,
		p.Duration, p.BasePrice, p.TotalPrice, p.Attributes,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// HasConflict reports whether a non-cancelled booking exists with the exact
// same (user, service, scheduled_at) tuple. Equality is on the timestamp, not
// interval overlap.
func (r *repository) HasConflict(ctx context.Context, userID, serviceID string, scheduledAt time.Time) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, conflictQuery, userID, serviceID, scheduledAt)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error) {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)+1))
		args = append(args, value)
	}

	if req.ScheduledAt != nil {
		add("scheduled_at", *req.ScheduledAt)
	}
	if req.Duration != nil {
		add("duration", *req.Duration)
	}
	if len(req.Attributes) > 0 {
		add("attributes", []byte(req.Attributes))
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := `
		UPDATE bookings
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = $` + strconv.Itoa(len(args)) + `
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, args...)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}
