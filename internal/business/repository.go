package business

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ownerID string, req CreateBusinessRequest) (*Business, error) {
	query := `
		INSERT INTO businesses (id, owner_id, name, description, type, address, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner_id, name, description, type, address, contact_email, contact_phone, created_at, updated_at
	`

	var b Business
	err := r.db.GetContext(ctx, &b, query,
		uuid.NewString(), ownerID, req.Name, req.Description, req.Type,
		req.Address, req.ContactEmail, req.ContactPhone,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Business, error) {
	query := `
		SELECT id, owner_id, name, description, type, address, contact_email, contact_phone, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	var b Business
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) List(ctx context.Context) ([]Business, error) {
	query := `
		SELECT id, owner_id, name, description, type, address, contact_email, contact_phone, created_at, updated_at
		FROM businesses
		ORDER BY created_at DESC
	`

	var businesses []Business
	err := r.db.SelectContext(ctx, &businesses, query)
	if err != nil {
		return nil, err
	}

	return businesses, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]Business, error) {
	query := `
		SELECT id, owner_id, name, description, type, address, contact_email, contact_phone, created_at, updated_at
		FROM businesses
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var businesses []Business
	err := r.db.SelectContext(ctx, &businesses, query, ownerID)
	if err != nil {
		return nil, err
	}

	return businesses, nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateBusinessRequest) (*Business, error) {
	// Partial update: only fields present in the request are written.
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)+1))
		args = append(args, value)
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}
	if req.ContactEmail != nil {
		add("contact_email", *req.ContactEmail)
	}
	if req.ContactPhone != nil {
		add("contact_phone", *req.ContactPhone)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := `
		UPDATE businesses
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = $` + strconv.Itoa(len(args)) + `
		RETURNING id, owner_id, name, description, type, address, contact_email, contact_phone, created_at, updated_at
	`

	var b Business
	err := r.db.GetContext(ctx, &b, query, args...)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	return err
}
