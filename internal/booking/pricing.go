package booking

import (
	"errors"

	"github.com/benyxxxxx/globalconnector-service/internal/catalog"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDuration         = errors.New("a positive duration is required for time-based pricing")
	ErrInvalidTimeBasedPricing = errors.New("invalid time-based pricing configuration on service")
)

type Price struct {
	Base  decimal.Decimal
	Total decimal.Decimal
}

// ComputePrice derives a booking's price from the service's pricing
// configuration. Flat services cost their base price regardless of duration;
// time-based services cost base price times duration. Pricing tiers and
// variants on the service are not consulted.
func ComputePrice(svc *catalog.Service, duration *int) (Price, error) {
	switch svc.PricingModel {
	case catalog.PricingTimeBased:
		if duration == nil || *duration <= 0 {
			return Price{}, ErrInvalidDuration
		}
		// A time-based service without a base price or time unit is a data
		// integrity problem on the service, surfaced at booking time.
		if !svc.BasePrice.Valid || svc.TimeUnit == nil {
			return Price{}, ErrInvalidTimeBasedPricing
		}

		base := svc.BasePrice.Decimal
		total := base.Mul(decimal.NewFromInt(int64(*duration))).Round(2)
		return Price{Base: base, Total: total}, nil

	default:
		// Flat pricing: total equals base, duration ignored.
		base := decimal.Zero
		if svc.BasePrice.Valid {
			base = svc.BasePrice.Decimal
		}
		return Price{Base: base, Total: base}, nil
	}
}
