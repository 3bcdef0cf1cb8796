package menu

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/entities"
	"Burger-App-Backend/internal/utils/storage"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		ListMenu(ctx context.Context) ([]domain.MenuItemResponse, error)
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) error
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id string) error
	}

	menuService struct {
		menuRepository MenuRepository
		storage        storage.Storage
	}
)

func NewMenuService(menuRepository MenuRepository, storage storage.Storage) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		storage:        storage,
	}
}

func (s *menuService) ListMenu(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.MenuItemResponse{
			ID:        item.ID.String(),
			Title:     item.Name,
			Paragraph: "Delicious burger",
			Price:     item.Price,
			Category:  item.Category,
			Rating:    4.5,
			Image:     s.storage.PublicURL(item.Image),
		})
	}
	return response, nil
}

func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) error {
	if req.Price < 0 {
		return domain.ErrInvalidPrice
	}

	image, err := s.storage.UploadFile(req.Image, storage.AllowImage...)
	if err != nil {
		return err
	}

	item := &entities.MenuItem{
		ID:       uuid.New(),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    image,
	}

	if err := s.menuRepository.Create(ctx, item); err != nil {
		_ = s.storage.DeleteFile(image)
		return err
	}
	return nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error {
	if req.Price < 0 {
		return domain.ErrInvalidPrice
	}

	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	item.Name = req.Name
	item.Price = req.Price
	item.Category = req.Category

	if req.Image != nil {
		image, err := s.storage.UploadFile(req.Image, storage.AllowImage...)
		if err != nil {
			return err
		}
		_ = s.storage.DeleteFile(item.Image)
		item.Image = image
	}

	return s.menuRepository.Update(ctx, item)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if err := s.menuRepository.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.storage.DeleteFile(item.Image)
	return nil
}
