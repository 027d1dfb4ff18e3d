package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/benyxxxxx/globalconnector-service/internal/catalog"
	"github.com/benyxxxxx/globalconnector-service/internal/metrics"

	"github.com/jmoiron/sqlx/types"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUnauthorized    = errors.New("unauthorized: not the booking owner")
)

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest, userID string) (*Booking, error)
	Get(ctx context.Context, bookingID, callerID string) (*Booking, error)
	ListForUser(ctx context.Context, userID string) ([]Booking, error)
	Update(ctx context.Context, bookingID string, req UpdateBookingRequest, callerID string) (*Booking, error)
	Delete(ctx context.Context, bookingID, callerID string) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
	}
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest, userID string) (*Booking, error) {
	svc, err := s.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, err
	}

	// Fast conflict check before pricing, preserving error precedence. The
	// authoritative check runs again under the advisory lock in repo.Create.
	conflict, err := s.repo.HasConflict(ctx, userID, svc.ID, req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	if conflict {
		metrics.RecordBookingConflict(req.ForceAdd)
		if !req.ForceAdd {
			return nil, ErrBookingConflict
		}
	}

	price, err := ComputePrice(svc, req.Duration)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(svc)
	if err != nil {
		return nil, err
	}

	attributes := types.NullJSONText{}
	if len(req.Attributes) > 0 {
		attributes = types.NullJSONText{JSONText: types.JSONText(req.Attributes), Valid: true}
	}

	b, err := s.repo.Create(ctx, CreateParams{
		ServiceID:       svc.ID,
		UserID:          userID,
		ServiceSnapshot: types.JSONText(snapshot),
		ScheduledAt:     req.ScheduledAt,
		Duration:        req.Duration,
		BasePrice:       price.Base,
		TotalPrice:      price.Total,
		Attributes:      attributes,
		Force:           req.ForceAdd,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingCreated(svc.PricingModel)
	return b, nil
}

func (s *service) Get(ctx context.Context, bookingID, callerID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID != callerID {
		return nil, ErrUnauthorized
	}

	return b, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, bookingID string, req UpdateBookingRequest, callerID string) (*Booking, error) {
	if _, err := s.Get(ctx, bookingID, callerID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, bookingID, req)
}

func (s *service) Delete(ctx context.Context, bookingID, callerID string) error {
	if _, err := s.Get(ctx, bookingID, callerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, bookingID)
}
