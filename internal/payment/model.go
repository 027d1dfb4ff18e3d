package payment

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Payment statuses. The only automated transition is pending -> succeeded,
// driven by settlement verification; every other status is set out of band.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// Payment methods.
const (
	MethodCard       = "card"
	MethodMandelCoin = "mandel_coin"
)

// Providers.
const (
	ProviderSolana = "solana"
)

// Payment settles either a booking (booking_id set) or an arbitrary external
// obligation (reference_id set) — exactly one of the two. ExternalID holds
// the correlation key wallets attach to the on-chain transfer.
type Payment struct {
	ID              string              `db:"id" json:"id"`
	BookingID       *string             `db:"booking_id" json:"booking_id,omitempty"`
	ReferenceID     *string             `db:"reference_id" json:"reference_id,omitempty"`
	ReferenceType   *string             `db:"reference_type" json:"reference_type,omitempty"`
	Status          string              `db:"status" json:"status"`
	Amount          decimal.Decimal     `db:"amount" json:"amount"`
	Currency        string              `db:"currency" json:"currency"`
	PaymentMethod   string              `db:"payment_method" json:"payment_method"`
	Provider        string              `db:"provider" json:"provider"`
	ExternalID      *string             `db:"external_id" json:"external_id,omitempty"`
	TransactionID   *string             `db:"transaction_id" json:"transaction_id,omitempty"`
	PaymentMetadata types.NullJSONText  `db:"payment_metadata" json:"payment_metadata,omitempty"`
	PaidAt          *time.Time          `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

type CreatePaymentRequest struct {
	BookingID     *string          `json:"booking_id"`
	ReferenceID   *string          `json:"reference_id"`
	ReferenceType *string          `json:"reference_type"`
	Amount        *decimal.Decimal `json:"amount"`
	Currency      string           `json:"currency"`
	PaymentMethod string           `json:"payment_method" binding:"omitempty,oneof=card mandel_coin"`
	ForceAdd      bool             `json:"force_add"`
}
