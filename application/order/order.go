package order

import (
	"context"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	PlaceOrder(ctx context.Context, buyerID uint64, req *model.OrderRequest) (*model.OrderResponse, error)
}

// EventPublisher announces committed orders to downstream consumers.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg rabbitmq.OrderPlacedMessage) error
}

type orderAppImpl struct {
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	publisher   EventPublisher
}

// NewOrderApp wires the order processor. publisher may be nil, in which case no events are sent.
func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, publisher EventPublisher) OrderApp {
	return &orderAppImpl{txRepo: txRepo, orderRepo: orderRepo, productRepo: productRepo, publisher: publisher}
}

// PlaceOrder stores the order header and items and takes each quantity off the
// first product with the item's name. Everything commits or rolls back together.
func (s *orderAppImpl) PlaceOrder(ctx context.Context, buyerID uint64, req *model.OrderRequest) (*model.OrderResponse, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, item := range req.Items {
		if item.ProductName == "" || item.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PlaceOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	})
	if err != nil {
		logger.Error("[PlaceOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, req.Items); err != nil {
		logger.Error("[PlaceOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// no floor check: overselling leaves a negative count
	for _, item := range req.Items {
		found, err := s.productRepo.DecrementStockByNameTx(ctx, tx, item.ProductName, item.Quantity)
		if err != nil {
			logger.Error("[PlaceOrder] decrement stock", zap.String("product_name", item.ProductName), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !found {
			logger.Warn("[PlaceOrder] no product for item", zap.Uint64("order_id", orderID), zap.String("product_name", item.ProductName))
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PlaceOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderPlacedMessage{
			OrderID:  orderID,
			BuyerID:  buyerID,
			Items:    make([]rabbitmq.OrderPlacedItem, 0, len(req.Items)),
			PlacedAt: time.Now().UTC(),
		}
		for _, item := range req.Items {
			msg.Items = append(msg.Items, rabbitmq.OrderPlacedItem{ProductName: item.ProductName, Quantity: item.Quantity})
		}
		if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
			logger.Error("[PlaceOrder] publish order placed", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		}
	}

	return &model.OrderResponse{
		Message: constant.MessageOrderPlaced,
		OrderID: orderID,
	}, nil
}
