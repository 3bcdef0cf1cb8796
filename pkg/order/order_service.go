package order

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/entities"
	"Burger-App-Backend/internal/utils/storage"
	"Burger-App-Backend/pkg/user"
	"context"
	"time"

	"github.com/google/uuid"
)

const recentOrdersLimit = 10

type (
	OrderService interface {
		Checkout(ctx context.Context, userID string) (string, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetAdminStats(ctx context.Context) (domain.AdminStatsResponse, error)
		GetRecentOrders(ctx context.Context) ([]domain.AdminOrderResponse, error)
		GetChart(ctx context.Context) ([]domain.ChartPointResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		userRepository  user.UserRepository
		storage         storage.Storage
	}
)

func NewOrderService(orderRepository OrderRepository, userRepository user.UserRepository, storage storage.Storage) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		storage:         storage,
	}
}

// Checkout turns the user's cart into an order, snapshotting per-line price
// and quantity, and returns the new order id. The order insert, item inserts
// and cart clear commit or roll back together.
func (s *orderService) Checkout(ctx context.Context, userID string) (string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	lines, err := s.orderRepository.GetCheckoutLines(ctx, userUUID)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", domain.ErrEmptyCart
	}

	var total float64
	items := make([]entities.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
		items = append(items, entities.OrderItem{
			ID:       uuid.New(),
			MenuID:   line.MenuID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	newOrder := &entities.Order{
		ID:     uuid.New(),
		UserID: userUUID,
		Total:  total,
		Status: "pending",
	}

	if err := s.orderRepository.CreateOrderWithItems(ctx, newOrder, items); err != nil {
		return "", err
	}

	return newOrder.ID.String(), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orders, err := s.orderRepository.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	rows, err := s.orderRepository.ListItemRowsByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]domain.OrderItemResponse, len(orders))
	for _, row := range rows {
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], domain.OrderItemResponse{
			Name:     row.Name,
			Price:    row.Price,
			Quantity: row.Quantity,
			Image:    s.storage.PublicURL(row.Image),
		})
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := itemsByOrder[o.ID]
		if items == nil {
			items = []domain.OrderItemResponse{}
		}
		response = append(response, domain.OrderResponse{
			ID:    o.ID.String(),
			Total: o.Total,
			Date:  o.CreatedAt,
			Items: items,
		})
	}
	return response, nil
}

func (s *orderService) GetAdminStats(ctx context.Context) (domain.AdminStatsResponse, error) {
	users, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return domain.AdminStatsResponse{}, err
	}

	ordersToday, err := s.orderRepository.CountOrdersSince(ctx, startOfDay(time.Now()))
	if err != nil {
		return domain.AdminStatsResponse{}, err
	}

	revenue, err := s.orderRepository.SumRevenue(ctx)
	if err != nil {
		return domain.AdminStatsResponse{}, err
	}

	return domain.AdminStatsResponse{
		Users:       users,
		OrdersToday: ordersToday,
		Revenue:     revenue,
	}, nil
}

func (s *orderService) GetRecentOrders(ctx context.Context) ([]domain.AdminOrderResponse, error) {
	rows, err := s.orderRepository.ListRecentWithUser(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AdminOrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, domain.AdminOrderResponse{
			ID:     row.ID.String(),
			Name:   row.Name,
			Total:  row.Total,
			Status: row.Status,
		})
	}
	return response, nil
}

// GetChart groups the trailing 7 days of orders by calendar day, ascending.
// Days without orders produce no row.
func (s *orderService) GetChart(ctx context.Context) ([]domain.ChartPointResponse, error) {
	since := startOfDay(time.Now()).AddDate(0, 0, -6)

	orders, err := s.orderRepository.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ChartPointResponse, 0, 7)
	index := make(map[string]int, 7)
	for _, o := range orders {
		day := o.CreatedAt.Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			index[day] = len(points)
			points = append(points, domain.ChartPointResponse{Day: day})
			i = len(points) - 1
		}
		points[i].Orders++
		points[i].Income += o.Total
	}
	return points, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
