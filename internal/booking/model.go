package booking

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Booking statuses. Only cancelled affects the conflict rule; the rest are
// informational.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking is a user's reservation of a service occurrence. The snapshot
// column pins the service state at creation time, so later service edits do
// not rewrite booking history. Prices are computed once at creation and never
// recomputed.
type Booking struct {
	ID              string              `db:"id" json:"id"`
	ServiceID       string              `db:"service_id" json:"service_id"`
	UserID          string              `db:"user_id" json:"user_id"`
	ServiceSnapshot types.JSONText      `db:"service_snapshot" json:"service_snapshot"`
	ScheduledAt     time.Time           `db:"scheduled_at" json:"scheduled_at"`
	Duration        *int                `db:"duration" json:"duration,omitempty"`
	BasePrice       decimal.NullDecimal `db:"base_price" json:"base_price"`
	TotalPrice      decimal.NullDecimal `db:"total_price" json:"total_price"`
	Status          string              `db:"status" json:"status"`
	Attributes      types.NullJSONText  `db:"attributes" json:"attributes,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

type CreateBookingRequest struct {
	ServiceID   string          `json:"service_id" binding:"required"`
	ScheduledAt time.Time       `json:"scheduled_at" binding:"required"`
	Duration    *int            `json:"duration"`
	Attributes  json.RawMessage `json:"attributes"`
	ForceAdd    bool            `json:"force_add"`
}

// UpdateBookingRequest carries the only fields the owner may change after
// creation. Status and prices are not updatable through this path.
type UpdateBookingRequest struct {
	ScheduledAt *time.Time      `json:"scheduled_at"`
	Duration    *int            `json:"duration"`
	Attributes  json.RawMessage `json:"attributes"`
}
