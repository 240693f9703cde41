package product

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	UpsertListing(ctx context.Context, sellerID uint64, req *model.UpsertProductRequest) (*model.UpsertProductResponse, error)
	EditProduct(ctx context.Context, sellerID uint64, req *model.EditProductRequest) (*model.EditProductResponse, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error)
	ListByCategory(ctx context.Context, category string) ([]model.ProductStockItem, error)
	ListSellerProducts(ctx context.Context, sellerID uint64) ([]model.ProductStockItem, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductSummary, error)
	GetProductDetail(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

type Option func(*productAppImpl)

// WithClock overrides the time source used for offer windows.
func WithClock(now func() time.Time) Option {
	return func(s *productAppImpl) {
		s.now = now
	}
}

type productAppImpl struct {
	txRepo      txrepo.TxRepository
	productRepo productRepo.ProductRepository
	userRepo    userRepo.UserRepository
	now         func() time.Time
}

func NewProductApp(txRepo txrepo.TxRepository, productRepo productRepo.ProductRepository, userRepo userRepo.UserRepository, opts ...Option) ProductApp {
	s := &productAppImpl{
		txRepo:      txRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *productAppImpl) UpsertListing(ctx context.Context, sellerID uint64, req *model.UpsertProductRequest) (*model.UpsertProductResponse, error) {
	if sellerID == 0 || req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	seller, err := s.userRepo.Get(ctx, &model.UserFilter{ID: sellerID})
	if err != nil {
		logger.Error("[UpsertListing] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if seller == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpsertListing] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.productRepo.GetByNameAndSellerTx(ctx, tx, req.Name, sellerID)
	if err != nil {
		logger.Error("[UpsertListing] error productRepo.GetByNameAndSellerTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now().UTC()
	var (
		product model.ProductEntity
		message string
	)
	if existing != nil {
		product = *existing
		product.Price = req.Price
		product.Description = req.Description
		product.Image = normalizeImage(req.Image)
		applyOffer(&product, req.Offer, req.OfferDuration, now)

		if err := s.productRepo.UpdateTx(ctx, tx, &product, req.Count); err != nil {
			logger.Error("[UpsertListing] error productRepo.UpdateTx", zap.Uint64("product_id", product.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		// the row is locked for this tx, so the stored count is exactly this
		product.Count = existing.Count + req.Count
		message = constant.MessageProductUpdated
	} else {
		product = model.ProductEntity{
			Name:        req.Name,
			Category:    req.Category,
			Description: req.Description,
			Count:       req.Count,
			Price:       req.Price,
			UserID:      sellerID,
			Image:       normalizeImage(req.Image),
		}
		applyOffer(&product, req.Offer, req.OfferDuration, now)

		id, err := s.productRepo.CreateTx(ctx, tx, &product)
		if err != nil {
			if stderrors.Is(err, productRepo.ErrDuplicateListing) {
				logger.Warn("[UpsertListing] concurrent create", zap.String("name", req.Name), zap.Uint64("seller_id", sellerID))
				return nil, errors.SetCustomError(constant.ErrConflict)
			}
			logger.Error("[UpsertListing] error productRepo.CreateTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		product.ID = id
		message = constant.MessageProductCreated
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpsertListing] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	var offerExpiration *string
	if product.OfferExpiration != nil {
		formatted := product.OfferExpiration.Format(constant.OfferTimeLayout)
		offerExpiration = &formatted
	}

	return &model.UpsertProductResponse{
		Message: message,
		Product: model.UpsertedProduct{
			ID:              product.ID,
			Name:            product.Name,
			Category:        product.Category,
			Description:     product.Description,
			Count:           product.Count,
			Price:           product.Price,
			DiscountedPrice: product.DiscountedPrice,
			HasDiscount:     product.HasDiscount,
			PremiumSeller:   seller.Premium,
			OfferExpiration: offerExpiration,
		},
	}, nil
}

func (s *productAppImpl) EditProduct(ctx context.Context, sellerID uint64, req *model.EditProductRequest) (*model.EditProductResponse, error) {
	if sellerID == 0 || req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[EditProduct] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.productRepo.GetByNameAndSellerTx(ctx, tx, req.Name, sellerID)
	if err != nil {
		logger.Error("[EditProduct] error productRepo.GetByNameAndSellerTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	product := *existing
	product.Price = req.OriginalPrice
	applyDiscount(&product, req.Discount)

	if err := s.productRepo.UpdateTx(ctx, tx, &product, req.Count); err != nil {
		logger.Error("[EditProduct] error productRepo.UpdateTx", zap.Uint64("product_id", product.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[EditProduct] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.EditProductResponse{Message: constant.MessageProductEdited}, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error) {
	f := model.ProductFilter{}
	if filter != nil {
		f = *filter
	}
	if f.Category != nil {
		category := strings.ReplaceAll(*f.Category, "_", " ")
		f.Category = &category
		f.SearchValue = nil
	}

	items, err := s.productRepo.List(ctx, &f)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now().UTC()
	for i := range items {
		items[i].IsPremiumSeller = items[i].PremiumSeller
		items[i].OfferActive = items[i].IsOfferActive(now)
	}
	return items, nil
}

func (s *productAppImpl) ListByCategory(ctx context.Context, category string) ([]model.ProductStockItem, error) {
	items, err := s.productRepo.ListByCategory(ctx, category)
	if err != nil {
		logger.Error("[ListByCategory] error productRepo.ListByCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) ListSellerProducts(ctx context.Context, sellerID uint64) ([]model.ProductStockItem, error) {
	items, err := s.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("[ListSellerProducts] error productRepo.ListBySeller", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductSummary, error) {
	result, err := s.productRepo.GetSummary(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetSummary", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *productAppImpl) GetProductDetail(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	summary, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	seller, err := s.userRepo.Get(ctx, &model.UserFilter{ID: summary.UserID})
	if err != nil {
		logger.Error("[GetProductDetail] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if seller == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.ProductDetail{
		ID:              summary.ID,
		Name:            summary.Name,
		UserID:          summary.UserID,
		IsPremiumSeller: seller.Premium,
	}, nil
}
