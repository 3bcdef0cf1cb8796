package cart

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/utils/storage"
	"Burger-App-Backend/pkg/menu"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) error
		ListCart(ctx context.Context, userID string) ([]domain.CartEntryResponse, error)
		UpdateQuantity(ctx context.Context, req domain.UpdateCartRequest) error
		RemoveFromCart(ctx context.Context, req domain.RemoveCartRequest) error
	}

	cartService struct {
		cartRepository CartRepository
		menuRepository menu.MenuRepository
		storage        storage.Storage
	}
)

func NewCartService(cartRepository CartRepository, menuRepository menu.MenuRepository, storage storage.Storage) CartService {
	return &cartService{
		cartRepository: cartRepository,
		menuRepository: menuRepository,
		storage:        storage,
	}
}

func (s *cartService) AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	menuUUID, err := uuid.Parse(req.MenuID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.menuRepository.GetByID(ctx, req.MenuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	return s.cartRepository.Upsert(ctx, userUUID, menuUUID)
}

func (s *cartService) ListCart(ctx context.Context, userID string) ([]domain.CartEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.cartRepository.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CartEntryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, domain.CartEntryResponse{
			ID:       row.ID.String(),
			Quantity: row.Quantity,
			Name:     row.Name,
			Price:    row.Price,
			Image:    s.storage.PublicURL(row.Image),
		})
	}
	return response, nil
}

// UpdateQuantity applies the delta with a floor of 1; this path never drops
// an entry below a single unit.
func (s *cartService) UpdateQuantity(ctx context.Context, req domain.UpdateCartRequest) error {
	entry, err := s.cartRepository.GetByID(ctx, req.CartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartEntryNotFound
		}
		return err
	}

	quantity := entry.Quantity + req.Change
	if quantity < 1 {
		quantity = 1
	}

	return s.cartRepository.UpdateQuantity(ctx, entry.ID, quantity)
}

func (s *cartService) RemoveFromCart(ctx context.Context, req domain.RemoveCartRequest) error {
	return s.cartRepository.Delete(ctx, req.CartID)
}
