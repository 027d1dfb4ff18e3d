package catalog

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceAlreadyExists = errors.New("a service with this name already exists for this owner")
	ErrUnauthorized         = errors.New("unauthorized: not the service owner")
)

type Manager interface {
	Create(ctx context.Context, req CreateServiceRequest, ownerID string) (*Service, error)
	Get(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context) ([]Service, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Service, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Service, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest, callerID string) (*Service, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type manager struct {
	repo Repository
}

func NewManager(repo Repository) Manager {
	return &manager{repo: repo}
}

func (m *manager) Create(ctx context.Context, req CreateServiceRequest, ownerID string) (*Service, error) {
	exists, err := m.repo.NameExistsForOwner(ctx, req.Name, ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrServiceAlreadyExists
	}

	return m.repo.Create(ctx, ownerID, req)
}

func (m *manager) Get(ctx context.Context, id string) (*Service, error) {
	svc, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (m *manager) List(ctx context.Context) ([]Service, error) {
	return m.repo.List(ctx)
}

func (m *manager) ListByOwner(ctx context.Context, ownerID string) ([]Service, error) {
	return m.repo.ListByOwner(ctx, ownerID)
}

func (m *manager) ListByBusiness(ctx context.Context, businessID string) ([]Service, error) {
	return m.repo.ListByBusiness(ctx, businessID)
}

func (m *manager) Update(ctx context.Context, id string, req UpdateServiceRequest, callerID string) (*Service, error) {
	svc, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if svc.OwnerID != callerID {
		return nil, ErrUnauthorized
	}

	return m.repo.Update(ctx, id, req)
}

func (m *manager) Delete(ctx context.Context, id string, callerID string) error {
	svc, err := m.Get(ctx, id)
	if err != nil {
		return err
	}

	if svc.OwnerID != callerID {
		return ErrUnauthorized
	}

	return m.repo.Delete(ctx, id)
}
