package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// ListProducts handler
// @Summary List or search products
// @Description category wins when both filters are given; underscores in category read as spaces
// @Tags Product
// @Produce json
// @Param category query string false "Exact category"
// @Param searchValue query string false "Case-insensitive name substring"
// @Success 200 {array} model.ProductListItem
// @Router /addproduct [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	// a parameter that is present filters even when empty
	filter := &model.ProductFilter{}
	if query.Has("category") {
		category := query.Get("category")
		filter.Category = &category
	}
	if query.Has("searchValue") {
		search := query.Get("searchValue")
		filter.SearchValue = &search
	}

	res, err := s.ProductApp.ListProducts(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// UpsertProduct handler
// @Summary Create or restock a listing
// @Description Merges into the seller's listing with the same name, adding to its count
// @Tags Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpsertProductRequest true "Listing"
// @Success 200 {object} model.UpsertProductResponse
// @Router /addproduct [post]
func (s *RestHandler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req model.UpsertProductRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.ProductApp.UpsertListing(r.Context(), sellerID, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// EditProduct handler
// @Summary Edit price, discount and stock of a listing
// @Tags Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.EditProductRequest true "Edit"
// @Success 200 {object} model.EditProductResponse
// @Router /editproduct [post]
func (s *RestHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req model.EditProductRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.ProductApp.EditProduct(r.Context(), sellerID, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// ListByCategory handler
// @Summary Products of one category
// @Tags Product
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} model.ProductStockItem
// @Router /products/{category} [get]
func (s *RestHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// SellerProducts handler
// @Summary Products of the logged-in seller
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProductStockItem
// @Router /sellerproducts [get]
func (s *RestHandler) SellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := s.principal(w, r)
	if !ok {
		return
	}

	res, err := s.ProductApp.ListSellerProducts(r.Context(), sellerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product summary
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductSummary
// @Router /product/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// GetProductDetail handler
// @Summary Product with its seller's premium flag
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Router /product-detail/{id} [get]
func (s *RestHandler) GetProductDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetProductDetail(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}
