package catalog

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Pricing models.
const (
	PricingFlat      = "flat"
	PricingTimeBased = "time_based"
)

// Time units for time-based pricing.
const (
	UnitMinute = "minute"
	UnitHour   = "hour"
	UnitDay    = "day"
	UnitWeek   = "week"
	UnitMonth  = "month"
	UnitYear   = "year"
)

// Service is a business offering with a pricing configuration. The
// pricing_tiers and variants columns are stored and returned verbatim; the
// pricing computation does not consult them.
type Service struct {
	ID           string              `db:"id" json:"id"`
	BusinessID   string              `db:"business_id" json:"business_id"`
	OwnerID      string              `db:"owner_id" json:"owner_id"`
	Name         string              `db:"name" json:"name"`
	Description  *string             `db:"description" json:"description,omitempty"`
	PricingModel string              `db:"pricing_model" json:"pricing_model"`
	Currency     string              `db:"currency" json:"currency"`
	BasePrice    decimal.NullDecimal `db:"base_price" json:"base_price"`
	TimeUnit     *string             `db:"time_unit" json:"time_unit,omitempty"`
	MinDuration  *int                `db:"min_duration" json:"min_duration,omitempty"`
	MaxDuration  *int                `db:"max_duration" json:"max_duration,omitempty"`
	PricingTiers types.NullJSONText  `db:"pricing_tiers" json:"pricing_tiers,omitempty"`
	Variants     types.NullJSONText  `db:"variants" json:"variants,omitempty"`
	Attributes   types.NullJSONText  `db:"attributes" json:"attributes,omitempty"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updated_at"`
}

type CreateServiceRequest struct {
	BusinessID   string           `json:"business_id" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	Description  *string          `json:"description"`
	PricingModel string           `json:"pricing_model" binding:"required,oneof=flat time_based"`
	Currency     string           `json:"currency"`
	BasePrice    *decimal.Decimal `json:"base_price"`
	TimeUnit     *string          `json:"time_unit" binding:"omitempty,timeunit"`
	MinDuration  *int             `json:"min_duration"`
	MaxDuration  *int             `json:"max_duration"`
	PricingTiers json.RawMessage  `json:"pricing_tiers"`
	Variants     json.RawMessage  `json:"variants"`
	Attributes   json.RawMessage  `json:"attributes"`
}

type UpdateServiceRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	PricingModel *string          `json:"pricing_model" binding:"omitempty,oneof=flat time_based"`
	Currency     *string          `json:"currency"`
	BasePrice    *decimal.Decimal `json:"base_price"`
	TimeUnit     *string          `json:"time_unit" binding:"omitempty,timeunit"`
	MinDuration  *int             `json:"min_duration"`
	MaxDuration  *int             `json:"max_duration"`
	PricingTiers json.RawMessage  `json:"pricing_tiers"`
	Variants     json.RawMessage  `json:"variants"`
	Attributes   json.RawMessage  `json:"attributes"`
}
