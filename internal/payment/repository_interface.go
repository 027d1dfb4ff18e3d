package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

type CreateParams struct {
	BookingID     *string
	ReferenceID   *string
	ReferenceType *string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod string
	Provider      string
	ExternalID    string
	Metadata      types.NullJSONText
}

type Repository interface {
	Create(ctx context.Context, p CreateParams) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]Payment, error)
	MarkSucceeded(ctx context.Context, id, signature string, paidAt time.Time) (*Payment, error)
}
