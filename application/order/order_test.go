package order_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/constant"
	publishermocks "github.com/muhammadheryan/marketplace/mocks/application/order"
	ordermocks "github.com/muhammadheryan/marketplace/mocks/repository/order"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	txmocks "github.com/muhammadheryan/marketplace/mocks/repository/tx"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func validRequest(items ...model.OrderItemRequest) *model.OrderRequest {
	return &model.OrderRequest{
		Address: "12 Market Street",
		City:    "Pune",
		State:   "MH",
		Pincode: "411001",
		Items:   items,
	}
}

var header = &model.InsertOrderTxItem{Address: "12 Market Street", City: "Pune", State: "MH", Pincode: "411001"}

func TestOrderApp_PlaceOrder(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		publisher   *publishermocks.EventPublisher
	}
	type args struct {
		ctx     context.Context
		buyerID uint64
		req     *model.OrderRequest
	}
	tests := []struct {
		name          string
		args          args
		mockCall      func(f fields)
		withPublisher bool
		want          *model.OrderResponse
		wantErr       bool
		errCode       constant.ErrorType
	}{
		{
			name: "success: stock decremented per item and event published",
			args: args{
				ctx:     context.Background(),
				buyerID: 11,
				req:     validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 3}, model.OrderItemRequest{ProductName: "Rug", Quantity: 1}),
			},
			withPublisher: true,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, header).Return(uint64(21), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(21), []model.OrderItemRequest{
					{ProductName: "Lamp", Quantity: 3},
					{ProductName: "Rug", Quantity: 1},
				}).Return(nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Lamp", int64(3)).Return(true, nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Rug", int64(1)).Return(true, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishOrderPlaced", mock.Anything, mock.MatchedBy(func(msg rabbitmq.OrderPlacedMessage) bool {
					return msg.OrderID == 21 && msg.BuyerID == 11 && len(msg.Items) == 2 &&
						msg.Items[0] == rabbitmq.OrderPlacedItem{ProductName: "Lamp", Quantity: 3}
				})).Return(nil).Once()
			},
			want: &model.OrderResponse{Message: constant.MessageOrderPlaced, OrderID: 21},
		},
		{
			name: "success: item without a matching product is skipped",
			args: args{
				ctx:     context.Background(),
				buyerID: 11,
				req:     validRequest(model.OrderItemRequest{ProductName: "Unknown", Quantity: 2}),
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, header).Return(uint64(22), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(22), mock.Anything).Return(nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Unknown", int64(2)).Return(false, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.OrderResponse{Message: constant.MessageOrderPlaced, OrderID: 22},
		},
		{
			name: "success: publish failure does not fail the order",
			args: args{
				ctx:     context.Background(),
				buyerID: 11,
				req:     validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 50}),
			},
			withPublisher: true,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, header).Return(uint64(23), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(23), mock.Anything).Return(nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Lamp", int64(50)).Return(true, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			want: &model.OrderResponse{Message: constant.MessageOrderPlaced, OrderID: 23},
		},
		{
			name: "error: empty items",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: non-positive quantity",
			args: args{
				ctx: context.Background(),
				req: validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 0}),
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: BeginTx returns error",
			args: args{
				ctx: context.Background(),
				req: validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: InsertOrderTx fails and rolls back",
			args: args{
				ctx: context.Background(),
				req: validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 1}),
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, header).Return(uint64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: failed decrement rolls back the whole order",
			args: args{
				ctx: context.Background(),
				req: validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 1}, model.OrderItemRequest{ProductName: "Rug", Quantity: 1}),
			},
			withPublisher: true,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, header).Return(uint64(24), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(24), mock.Anything).Return(nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Lamp", int64(1)).Return(true, nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Rug", int64(1)).Return(false, errors.New("lock wait timeout")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: CommitTx fails",
			args: args{
				ctx: context.Background(),
				req: validRequest(model.OrderItemRequest{ProductName: "Lamp", Quantity: 1}),
			},
			withPublisher: true,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, header).Return(uint64(25), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(25), mock.Anything).Return(nil).Once()
				f.productRepo.On("DecrementStockByNameTx", mock.Anything, tx, "Lamp", int64(1)).Return(true, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("commit error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			var publisher apporder.EventPublisher
			if tt.withPublisher {
				publisher = f.publisher
			}
			app := apporder.NewOrderApp(f.txRepo, f.orderRepo, f.productRepo, publisher)

			got, err := app.PlaceOrder(tt.args.ctx, tt.args.buyerID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PlaceOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("PlaceOrder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
