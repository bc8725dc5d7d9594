package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipping  OrderStatus = "SHIPPING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type OrderItem struct {
	BookID   int64  `json:"bookId"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID         int64       `json:"id"`
	Items      []OrderItem `json:"items"`
	Total      int64       `json:"total"`
	Status     OrderStatus `json:"status"`
	AddressID  int64       `json:"addressId,omitempty"`
	PaymentURL string      `json:"paymentUrl,omitempty"`
	CreatedAt  time.Time   `json:"createdAt,omitempty"`
}
