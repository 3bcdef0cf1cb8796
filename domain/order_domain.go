package domain

import (
	"errors"
	"time"
)

var (
	MessageFailedCheckout   = "failed to place order"
	MessageFailedListOrders = "failed to retrieve orders"

	ErrEmptyCart = errors.New("cart empty")
)

type (
	CheckoutResponse struct {
		Message string `json:"message"`
		OrderID string `json:"orderId"`
	}

	OrderItemResponse struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
		Image    string  `json:"image"`
	}

	OrderResponse struct {
		ID    string              `json:"id"`
		Total float64             `json:"total"`
		Date  time.Time           `json:"date"`
		Items []OrderItemResponse `json:"items"`
	}
)
