package order

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemRequest) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrder     = "INSERT INTO `order` (address, city, state, pincode) VALUES (?, ?, ?, ?)"
	insertOrderItem = "INSERT INTO order_item (order_id, product_name, quantity) VALUES (?, ?, ?)"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrder, req.Address, req.City, req.State, req.Pincode)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemRequest) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItem, orderID, it.ProductName, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}
