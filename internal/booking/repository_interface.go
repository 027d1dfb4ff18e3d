package booking

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

type CreateParams struct {
	ServiceID       string
	UserID          string
	ServiceSnapshot types.JSONText
	ScheduledAt     time.Time
	Duration        *int
	BasePrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	Attributes      types.NullJSONText
	Force           bool
}

type Repository interface {
	Create(ctx context.Context, p CreateParams) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	HasConflict(ctx context.Context, userID, serviceID string, scheduledAt time.Time) (bool, error)
	Update(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error
}
