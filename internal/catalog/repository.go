package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

const serviceColumns = `id, business_id, owner_id, name, description, pricing_model, currency,
	base_price, time_unit, min_duration, max_duration, pricing_tiers, variants, attributes,
	created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func nullJSON(raw json.RawMessage) types.NullJSONText {
	if len(raw) == 0 {
		return types.NullJSONText{}
	}
	return types.NullJSONText{JSONText: types.JSONText(raw), Valid: true}
}

func (r *repository) Create(ctx context.Context, ownerID string, req CreateServiceRequest) (*Service, error) {
	query := `
		INSERT INTO services (id, business_id, owner_id, name, description, pricing_model, currency,
			base_price, time_unit, min_duration, max_duration, pricing_tiers, variants, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + serviceColumns

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	var svc Service
	err := r.db.GetContext(ctx, &svc, query,
		uuid.NewString(), req.BusinessID, ownerID, req.Name, req.Description,
		req.PricingModel, currency, req.BasePrice, req.TimeUnit,
		req.MinDuration, req.MaxDuration,
		nullJSON(req.PricingTiers), nullJSON(req.Variants), nullJSON(req.Attributes),
	)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Service, error) {
	var svc Service
	err := r.db.GetContext(ctx, &svc, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *repository) List(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.SelectContext(ctx, &services,
		`SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]Service, error) {
	var services []Service
	err := r.db.SelectContext(ctx, &services,
		`SELECT `+serviceColumns+` FROM services WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repository) ListByBusiness(ctx context.Context, businessID string) ([]Service, error) {
	var services []Service
	err := r.db.SelectContext(ctx, &services,
		`SELECT `+serviceColumns+` FROM services WHERE business_id = $1 ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repository) NameExistsForOwner(ctx context.Context, name, ownerID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM services WHERE name = $1 AND owner_id = $2)`, name, ownerID)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateServiceRequest) (*Service, error) {
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
	if req.PricingModel != nil {
		add("pricing_model", *req.PricingModel)
	}
	if req.Currency != nil {
		add("currency", *req.Currency)
	}
	if req.BasePrice != nil {
		add("base_price", *req.BasePrice)
	}
	if req.TimeUnit != nil {
		add("time_unit", *req.TimeUnit)
	}
	if req.MinDuration != nil {
		add("min_duration", *req.MinDuration)
	}
	if req.MaxDuration != nil {
		add("max_duration", *req.MaxDuration)
	}
	if len(req.PricingTiers) > 0 {
		add("pricing_tiers", nullJSON(req.PricingTiers))
	}
	if len(req.Variants) > 0 {
		add("variants", nullJSON(req.Variants))
	}
	if len(req.Attributes) > 0 {
		add("attributes", nullJSON(req.Attributes))
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := `
		UPDATE services
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = $` + strconv.Itoa(len(args)) + `
		RETURNING ` + serviceColumns

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, args...)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}
