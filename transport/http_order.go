package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// PlaceOrder handler
// @Summary Place an order
// @Description Stores the order and takes each quantity off the product's stock in one transaction
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.OrderRequest true "Order"
// @Success 200 {object} model.OrderResponse
// @Router /placeorder [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req model.OrderRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.OrderApp.PlaceOrder(r.Context(), buyerID, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}
