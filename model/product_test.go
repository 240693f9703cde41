package model_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/marketplace/model"
	"github.com/stretchr/testify/assert"
)

func TestOfferActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name       string
		expiration *time.Time
		want       bool
	}{
		{name: "no window", expiration: nil, want: false},
		{name: "expired", expiration: &past, want: false},
		{name: "expires exactly now", expiration: &now, want: true},
		{name: "still open", expiration: &future, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.OfferActive(tt.expiration, now))

			entity := model.ProductEntity{OfferExpiration: tt.expiration}
			assert.Equal(t, tt.want, entity.IsOfferActive(now))

			item := model.ProductListItem{OfferValidTill: tt.expiration}
			assert.Equal(t, tt.want, item.IsOfferActive(now))
		})
	}
}
