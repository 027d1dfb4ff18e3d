package business

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrUnauthorized     = errors.New("unauthorized: not the business owner")
)

type Service interface {
	Create(ctx context.Context, req CreateBusinessRequest, ownerID string) (*Business, error)
	Get(ctx context.Context, id string) (*Business, error)
	List(ctx context.Context) ([]Business, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Business, error)
	Update(ctx context.Context, id string, req UpdateBusinessRequest, callerID string) (*Business, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateBusinessRequest, ownerID string) (*Business, error) {
	return s.repo.Create(ctx, ownerID, req)
}

func (s *service) Get(ctx context.Context, id string) (*Business, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]Business, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]Business, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateBusinessRequest, callerID string) (*Business, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.OwnerID != callerID {
		return nil, ErrUnauthorized
	}

	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id string, callerID string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if b.OwnerID != callerID {
		return ErrUnauthorized
	}

	return s.repo.Delete(ctx, id)
}
