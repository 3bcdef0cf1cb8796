package order

import (
	"Burger-App-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// CheckoutLine is one cart row joined with the current menu price.
	CheckoutLine struct {
		MenuID   uuid.UUID
		Quantity int
		Price    float64
	}

	// OrderItemRow is the flat join used to build nested order responses.
	OrderItemRow struct {
		OrderID  uuid.UUID
		Quantity int
		Price    float64
		Name     string
		Image    string
	}

	AdminOrderRow struct {
		ID     uuid.UUID
		Name   string
		Total  float64
		Status string
	}

	OrderRepository interface {
		GetCheckoutLines(ctx context.Context, userID uuid.UUID) ([]CheckoutLine, error)
		CreateOrderWithItems(ctx context.Context, order *entities.Order, items []entities.OrderItem) error
		ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error)
		ListItemRowsByUser(ctx context.Context, userID uuid.UUID) ([]OrderItemRow, error)
		CountOrdersSince(ctx context.Context, since time.Time) (int64, error)
		SumRevenue(ctx context.Context) (float64, error)
		ListRecentWithUser(ctx context.Context, limit int) ([]AdminOrderRow, error)
		ListSince(ctx context.Context, since time.Time) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetCheckoutLines(ctx context.Context, userID uuid.UUID) ([]CheckoutLine, error) {
	var lines []CheckoutLine
	err := r.db.WithContext(ctx).Table("cart").
		Select("cart.menu_id, cart.quantity, menu.price").
		Joins("JOIN menu ON cart.menu_id = menu.id").
		Where("cart.user_id = ?", userID).
		Scan(&lines).Error
	return lines, err
}

// CreateOrderWithItems writes the order, its line items, and the cart clear
// in one transaction; any failure rolls the whole sequence back.
func (r *orderRepository) CreateOrderWithItems(ctx context.Context, order *entities.Order, items []entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", order.UserID).Delete(&entities.CartEntry{}).Error
	})
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	var orders []*entities.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListItemRowsByUser(ctx context.Context, userID uuid.UUID) ([]OrderItemRow, error) {
	var rows []OrderItemRow
	err := r.db.WithContext(ctx).Table("order_items").
		Select("order_items.order_id, order_items.quantity, order_items.price, menu.name, menu.image").
		Joins("JOIN menu ON order_items.menu_id = menu.id").
		Joins("JOIN orders ON order_items.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) CountOrdersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) SumRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *orderRepository) ListRecentWithUser(ctx context.Context, limit int) ([]AdminOrderRow, error) {
	var rows []AdminOrderRow
	err := r.db.WithContext(ctx).Table("orders").
		Select("orders.id, users.name, orders.total, orders.status").
		Joins("JOIN users ON orders.user_id = users.id").
		Order("orders.created_at desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) ListSince(ctx context.Context, since time.Time) ([]*entities.Order, error) {
	var orders []*entities.Order
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}
