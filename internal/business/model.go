package business

import (
	"time"
)

// BusinessType mirrors the catalog taxonomy the marketplace supports.
const (
	TypeRestaurant = "restaurant"
	TypeHostel     = "hostel"
	TypeRental     = "rental"
	TypeTour       = "tour"
	TypeShop       = "shop"
	TypeGym        = "gym"
	TypeActivity   = "activity"
	TypeSpa        = "spa"
	TypeOther      = "other"
)

type Business struct {
	ID           string    `db:"id" json:"id"`
	OwnerID      string    `db:"owner_id" json:"owner_id"`
	Name         string    `db:"name" json:"name"`
	Description  *string   `db:"description" json:"description,omitempty"`
	Type         string    `db:"type" json:"type"`
	Address      *string   `db:"address" json:"address,omitempty"`
	ContactEmail *string   `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateBusinessRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Type         string  `json:"type" binding:"required"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
}

type UpdateBusinessRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Type         *string `json:"type"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
}
