package product

import (
	"time"

	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// discountedPrice returns price minus percent of price.
func discountedPrice(price, percent float64) float64 {
	p := decimal.NewFromFloat(price)
	cut := p.Mul(decimal.NewFromFloat(percent)).Div(hundred)
	return p.Sub(cut).InexactFloat64()
}

// applyOffer recomputes the discount state of p from its current price. A nil or
// zero offer clears every offer field; otherwise the window starts at now.
func applyOffer(p *model.ProductEntity, offer, durationHours *float64, now time.Time) {
	if offer == nil || *offer == 0 {
		clearOffer(p)
		return
	}

	pct := *offer
	p.DiscountedPrice = discountedPrice(p.Price, pct)
	p.HasDiscount = true
	p.OfferPrice = &pct

	var hours float64
	if durationHours != nil {
		hours = *durationHours
	}
	expiresAt := now.Add(time.Duration(hours * float64(time.Hour)))
	p.OfferExpiration = &expiresAt
}

// applyDiscount is the edit-path variant. A positive percent keeps the current
// offer window because an edit carries no duration; zero removes the offer entirely.
func applyDiscount(p *model.ProductEntity, percent float64) {
	if percent == 0 {
		clearOffer(p)
		return
	}
	p.DiscountedPrice = discountedPrice(p.Price, percent)
	p.HasDiscount = true
	p.OfferPrice = &percent
}

func clearOffer(p *model.ProductEntity) {
	p.DiscountedPrice = 0
	p.HasDiscount = false
	p.OfferPrice = nil
	p.OfferExpiration = nil
}

// normalizeImage treats an empty blob the same as an absent one.
func normalizeImage(image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	img := *image
	return &img
}
