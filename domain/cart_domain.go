package domain

import (
	"errors"
)

var (
	MessageSuccessAddToCart  = "Added to cart"
	MessageSuccessUpdateCart = "Updated"
	MessageSuccessRemoveCart = "Removed"

	MessageFailedAddToCart  = "failed to add to cart"
	MessageFailedListCart   = "failed to retrieve cart"
	MessageFailedUpdateCart = "failed to update cart"
	MessageFailedRemoveCart = "failed to remove from cart"

	ErrCartEntryNotFound = errors.New("cart entry not found")
)

type (
	AddToCartRequest struct {
		MenuID string `json:"menuId" validate:"required,uuid"`
	}

	UpdateCartRequest struct {
		CartID string `json:"cartId" validate:"required,uuid"`
		Change int    `json:"change" validate:"required"`
	}

	RemoveCartRequest struct {
		CartID string `json:"cartId" validate:"required,uuid"`
	}

	CartEntryResponse struct {
		ID       string  `json:"id"`
		Quantity int     `json:"quantity"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Image    string  `json:"image"`
	}
)
