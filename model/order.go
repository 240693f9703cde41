package model

type OrderItemRequest struct {
	ProductName string `json:"product_name" validate:"required,max=100"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	Address string             `json:"address" validate:"required,max=200"`
	City    string             `json:"city" validate:"required,max=100"`
	State   string             `json:"state" validate:"required,max=100"`
	Pincode string             `json:"pincode" validate:"required,max=10"`
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderResponse struct {
	Message string `json:"message"`
	OrderID uint64 `json:"order_id"`
}

type InsertOrderTxItem struct {
	Address string
	City    string
	State   string
	Pincode string
}
