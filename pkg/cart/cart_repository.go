package cart

import (
	"Burger-App-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRow is the joined view of a cart entry with its menu item.
type CartRow struct {
	ID       uuid.UUID
	Quantity int
	Name     string
	Price    float64
	Image    string
}

type (
	CartRepository interface {
		Upsert(ctx context.Context, userID, menuID uuid.UUID) error
		ListByUser(ctx context.Context, userID uuid.UUID) ([]CartRow, error)
		GetByID(ctx context.Context, id string) (*entities.CartEntry, error)
		UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
		Delete(ctx context.Context, id string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Upsert inserts a quantity-1 row, or increments the existing row when the
// unique (user_id, menu_id) index fires.
func (r *cartRepository) Upsert(ctx context.Context, userID, menuID uuid.UUID) error {
	entry := &entities.CartEntry{
		ID:       uuid.New(),
		UserID:   userID,
		MenuID:   menuID,
		Quantity: 1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + 1"),
		}),
	}).Create(entry).Error
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]CartRow, error) {
	var rows []CartRow
	err := r.db.WithContext(ctx).Table("cart").
		Select("cart.id, cart.quantity, menu.name, menu.price, menu.image").
		Joins("JOIN menu ON cart.menu_id = menu.id").
		Where("cart.user_id = ?", userID).
		Scan(&rows).Error
	return rows, err
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*entities.CartEntry, error) {
	var entry entities.CartEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entities.CartEntry{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartEntry{}).Error
}
