package model

import (
	"errors"
	"time"
)

// ProductEntity represents the product table entity
type ProductEntity struct {
	ID              uint64     `db:"id"`
	Name            string     `db:"name"`
	Category        string     `db:"category"`
	Description     string     `db:"description"`
	Count           int64      `db:"count"`
	Price           float64    `db:"price"`
	DiscountedPrice float64    `db:"discounted_price"`
	HasDiscount     bool       `db:"has_discount"`
	OfferPrice      *float64   `db:"offer_price"`
	OfferExpiration *time.Time `db:"offer_expiration"`
	UserID          uint64     `db:"user_id"`
	Image           *string    `db:"image"`
}

// OfferActive reports whether an offer window ending at expiration is still open
// at now. It does not look at has_discount, which stays set after expiry until
// the next recompute.
func OfferActive(expiration *time.Time, now time.Time) bool {
	return expiration != nil && !now.After(*expiration)
}

func (p *ProductEntity) IsOfferActive(now time.Time) bool {
	return OfferActive(p.OfferExpiration, now)
}

// ProductFilter selects listings. A nil field means the filter was not supplied.
type ProductFilter struct {
	Category    *string
	SearchValue *string
}

type ProductListItem struct {
	ID              uint64     `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Category        string     `db:"category" json:"category"`
	Description     string     `db:"description" json:"description"`
	Count           int64      `db:"count" json:"count"`
	Price           float64    `db:"price" json:"price"`
	DiscountedPrice float64    `db:"discounted_price" json:"discounted_price"`
	HasDiscount     bool       `db:"has_discount" json:"has_discount"`
	OfferValidTill  *time.Time `db:"offer_expiration" json:"offer_valid_till"`
	Image           *string    `db:"image" json:"image"`
	PremiumSeller   bool       `db:"premium_seller" json:"premium_seller"`
	IsPremiumSeller bool       `db:"-" json:"is_premium_seller"`
	OfferActive     bool       `db:"-" json:"offer_active"`
}

func (p *ProductListItem) IsOfferActive(now time.Time) bool {
	return OfferActive(p.OfferValidTill, now)
}

// ProductStockItem is the compact row used by seller and category listings.
type ProductStockItem struct {
	Name            string  `db:"name" json:"name"`
	Count           int64   `db:"count" json:"count"`
	Price           float64 `db:"price" json:"price"`
	DiscountedPrice float64 `db:"discounted_price" json:"discounted_price"`
}

type ProductSummary struct {
	ID     uint64 `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	UserID uint64 `db:"user_id" json:"user_id"`
}

type ProductDetail struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	UserID          uint64 `json:"user_id"`
	IsPremiumSeller bool   `json:"is_premium_seller"`
}

var ErrOfferDurationRequired = errors.New("offerDuration is required when offer is set")

// UpsertProductRequest creates a listing or merges into the seller's listing with the same name.
type UpsertProductRequest struct {
	Category      string   `json:"category" validate:"required,max=120"`
	Name          string   `json:"name" validate:"required,max=120"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	Count         int64    `json:"count" validate:"gte=0"`
	Offer         *float64 `json:"offer" validate:"omitempty,gte=0,lte=100"`
	OfferDuration *float64 `json:"offerDuration" validate:"omitempty,gt=0"`
	Image         *string  `json:"imageBinary"`
}

func (r *UpsertProductRequest) Validate() error {
	if r.Offer != nil && *r.Offer != 0 && r.OfferDuration == nil {
		return ErrOfferDurationRequired
	}
	return nil
}

type UpsertedProduct struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Count           int64   `json:"count"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	HasDiscount     bool    `json:"has_discount"`
	PremiumSeller   bool    `json:"premium_seller"`
	OfferExpiration *string `json:"offer_expiration"`
}

type UpsertProductResponse struct {
	Message string          `json:"message"`
	Product UpsertedProduct `json:"product"`
}

// EditProductRequest replaces the price, applies a discount percentage and adds a count delta.
type EditProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Count         int64   `json:"count"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	Discount      float64 `json:"discount" validate:"gte=0,lte=100"`
}

type EditProductResponse struct {
	Message string `json:"message"`
}
