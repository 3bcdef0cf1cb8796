package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddMenu    = "Menu added"
	MessageSuccessUpdateMenu = "Menu updated"
	MessageSuccessDeleteMenu = "Menu deleted"

	MessageFailedAddMenu    = "failed to add menu item"
	MessageFailedUpdateMenu = "Update failed"
	MessageFailedDeleteMenu = "Delete failed"
	MessageFailedListMenu   = "failed to retrieve menu"

	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	AddMenuItemRequest struct {
		Name     string                `json:"name" form:"name" validate:"required"`
		Price    float64               `json:"price" form:"price" validate:"min=0"`
		Category string                `json:"category" form:"category" validate:"required"`
		Image    *multipart.FileHeader `json:"-" form:"-" validate:"required"`
	}

	UpdateMenuItemRequest struct {
		Name     string                `json:"name" form:"name" validate:"required"`
		Price    float64               `json:"price" form:"price" validate:"min=0"`
		Category string                `json:"category" form:"category" validate:"required"`
		Image    *multipart.FileHeader `json:"-" form:"-"` // image column untouched when nil
	}

	MenuItemResponse struct {
		ID        string  `json:"id"`
		Title     string  `json:"title"`
		Paragraph string  `json:"paragraph"`
		Price     float64 `json:"price"`
		Category  string  `json:"category"`
		Rating    float64 `json:"rating"`
		Image     string  `json:"image"`
	}
)
