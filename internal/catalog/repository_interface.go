package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, ownerID string, req CreateServiceRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context) ([]Service, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Service, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Service, error)
	NameExistsForOwner(ctx context.Context, name, ownerID string) (bool, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest) (*Service, error)
	Delete(ctx context.Context, id string) error
}
