package business

import "context"

type Repository interface {
	Create(ctx context.Context, ownerID string, req CreateBusinessRequest) (*Business, error)
	GetByID(ctx context.Context, id string) (*Business, error)
	List(ctx context.Context) ([]Business, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Business, error)
	Update(ctx context.Context, id string, req UpdateBusinessRequest) (*Business, error)
	Delete(ctx context.Context, id string) error
}
