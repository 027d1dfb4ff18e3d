package payment

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/benyxxxxx/globalconnector-service/internal/booking"
	"github.com/benyxxxxx/globalconnector-service/internal/logger"
	"github.com/benyxxxxx/globalconnector-service/internal/metrics"
	"github.com/benyxxxxx/globalconnector-service/internal/solana"

	"github.com/jmoiron/sqlx/types"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidPaymentRequest = errors.New("exactly one of booking_id or reference_id must be provided")
	ErrAmountRequired        = errors.New("amount is required for reference-linked payments")
	ErrSettlementUnavailable = errors.New("settlement network unavailable")
)

// SettlementVerifier checks the rail for a transfer matching a correlation
// token. Implemented by solana.Verifier.
type SettlementVerifier interface {
	VerifyPayment(ctx context.Context, reference string, expectedAmount decimal.Decimal, tokenMint string) (bool, string, error)
}

// Config carries the settlement destination the deep links point at.
type Config struct {
	DestinationAddress string
	MintAddress        string
}

type Service interface {
	Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
	Get(ctx context.Context, paymentID string) (*Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]Payment, error)
}

type service struct {
	repo        Repository
	bookingRepo booking.Repository
	verifier    SettlementVerifier
	cfg         Config
}

func NewService(repo Repository, bookingRepo booking.Repository, verifier SettlementVerifier, cfg Config) Service {
	return &service{
		repo:        repo,
		bookingRepo: bookingRepo,
		verifier:    verifier,
		cfg:         cfg,
	}
}

func (s *service) Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	if (req.BookingID == nil) == (req.ReferenceID == nil) {
		return nil, ErrInvalidPaymentRequest
	}

	method := req.PaymentMethod
	if method == "" {
		method = MethodCard
	}

	var (
		amount   decimal.Decimal
		currency = "USD"
		kind     = "reference"
	)

	if req.BookingID != nil {
		kind = "booking"

		b, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, booking.ErrBookingNotFound
			}
			return nil, err
		}

		// First payment wins: a booking keeps a single live payment unless the
		// caller explicitly forces another.
		existing, err := s.repo.ListByBooking(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 && !req.ForceAdd {
			return &existing[0], nil
		}

		if b.TotalPrice.Valid {
			amount = b.TotalPrice.Decimal
		}
		if c := snapshotCurrency(b.ServiceSnapshot); c != "" {
			currency = c
		}
	} else {
		if req.Amount == nil {
			return nil, ErrAmountRequired
		}
		amount = *req.Amount
		if req.Currency != "" {
			currency = req.Currency
		}
	}

	reference, err := generateReference()
	if err != nil {
		return nil, err
	}

	meta := map[string]string{}
	provider := ""
	if method == MethodMandelCoin {
		provider = ProviderSolana
		meta["destination"] = s.cfg.DestinationAddress
		meta["mint"] = s.cfg.MintAddress
	}
	meta["solana_pay_link"] = solana.BuildPayURL(s.cfg.DestinationAddress, solana.PayURLParams{
		Amount:    amount.String(),
		Reference: reference,
		SPLToken:  s.cfg.MintAddress,
	})

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Create(ctx, CreateParams{
		BookingID:     req.BookingID,
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: method,
		Provider:      provider,
		ExternalID:    reference,
		Metadata:      types.NullJSONText{JSONText: types.JSONText(metaJSON), Valid: true},
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPaymentCreated(method, kind)
	return payment, nil
}

func (s *service) Get(ctx context.Context, paymentID string) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return s.syncSettlement(ctx, payment)
}

func (s *service) ListByBooking(ctx context.Context, bookingID string) ([]Payment, error) {
	payments, err := s.repo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	for i := range payments {
		synced, err := s.syncSettlement(ctx, &payments[i])
		if err != nil {
			return nil, err
		}
		payments[i] = *synced
	}

	return payments, nil
}

// syncSettlement is the verify-on-read step: unsettled mandel coin payments
// are checked against the rail and promoted to succeeded when a matching
// transfer is found. Settled or card payments pass through untouched.
func (s *service) syncSettlement(ctx context.Context, p *Payment) (*Payment, error) {
	if p.Status != StatusPending && p.Status != StatusProcessing {
		return p, nil
	}
	if p.PaymentMethod != MethodMandelCoin || p.ExternalID == nil {
		return p, nil
	}

	matched, signature, err := s.verifier.VerifyPayment(ctx, *p.ExternalID, p.Amount, s.cfg.MintAddress)
	if err != nil {
		metrics.RecordSettlementCheck("error")
		logger.Error("settlement verification failed", "payment_id", p.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSettlementUnavailable, err)
	}
	if !matched {
		metrics.RecordSettlementCheck("pending")
		return p, nil
	}

	metrics.RecordSettlementCheck("matched")

	updated, err := s.repo.MarkSucceeded(ctx, p.ID, signature, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.RecordPaymentSucceeded()
	logger.Info("payment settled", "payment_id", p.ID, "signature", signature)
	return updated, nil
}

func snapshotCurrency(snapshot types.JSONText) string {
	var svc struct {
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(snapshot, &svc); err != nil {
		return ""
	}
	return svc.Currency
}

// generateReference mints the base58 correlation token that links an on-chain
// transfer back to a payment row.
func generateReference() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base58.Encode(buf), nil
}
