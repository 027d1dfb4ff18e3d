package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, booking_id, reference_id, reference_type, status, amount, currency,
	payment_method, provider, external_id, transaction_id, payment_metadata, paid_at,
	created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p CreateParams) (*Payment, error) {
	query := `
		INSERT INTO payments (id, booking_id, reference_id, reference_type, status, amount,
			currency, payment_method, provider, external_id, payment_metadata)
		VALUES ($1, $2, $3, $4, 'pending', $5, $6, $7, $8, $9, $10)
		RETURNING ` + paymentColumns

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query,
		uuid.NewString(), p.BookingID, p.ReferenceID, p.ReferenceType,
		p.Amount, p.Currency, p.PaymentMethod, p.Provider, p.ExternalID, p.Metadata,
	)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Payment, error) {
	var payment Payment
	err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) ListByBooking(ctx context.Context, bookingID string) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1 ORDER BY created_at DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// MarkSucceeded records a confirmed settlement in a single statement: status,
// transaction id, paid_at, and the signature merged into the metadata blob all
// move together.
func (r *repository) MarkSucceeded(ctx context.Context, id, signature string, paidAt time.Time) (*Payment, error) {
	query := `
		UPDATE payments
		SET status = 'succeeded',
			transaction_id = $2,
			paid_at = $3,
			payment_metadata = COALESCE(payment_metadata, '{}'::jsonb)
				|| jsonb_build_object('signature', $2::text),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + paymentColumns

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query, id, signature, paidAt)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
