package order

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/entities"
	"Burger-App-Backend/pkg/user"
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubStorage struct{}

func (stubStorage) UploadFile(file *multipart.FileHeader, allowedExt ...string) (string, error) {
	return "stub.jpg", nil
}
func (stubStorage) DeleteFile(name string) error { return nil }
func (stubStorage) PublicURL(name string) string {
	return "http://localhost:5000/uploads/" + name
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.MenuItem{},
		&entities.CartEntry{},
		&entities.Order{},
		&entities.OrderItem{},
	))
	return db
}

func newTestService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(NewOrderRepository(db), user.NewUserRepository(db), stubStorage{}), db
}

func seedUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	u := &entities.User{ID: uuid.New(), Name: name, Email: name + "@example.com", IsVerified: true}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) uuid.UUID {
	t.Helper()
	item := &entities.MenuItem{ID: uuid.New(), Name: name, Price: price, Category: "burger", Image: name + ".jpg"}
	require.NoError(t, db.Create(item).Error)
	return item.ID
}

func seedCartEntry(t *testing.T, db *gorm.DB, userID, menuID uuid.UUID, quantity int) {
	t.Helper()
	entry := &entities.CartEntry{ID: uuid.New(), UserID: userID, MenuID: menuID, Quantity: quantity}
	require.NoError(t, db.Create(entry).Error)
}

func TestCheckout(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	userID := seedUser(t, db, "budi")
	burger := seedMenuItem(t, db, "cheese", 5.00)
	fries := seedMenuItem(t, db, "fries", 3.50)
	seedCartEntry(t, db, userID, burger, 2)
	seedCartEntry(t, db, userID, fries, 1)

	orderID, err := service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	var placed entities.Order
	require.NoError(t, db.First(&placed, "id = ?", orderID).Error)
	assert.Equal(t, 13.50, placed.Total)
	assert.Equal(t, "pending", placed.Status)
	assert.Equal(t, userID, placed.UserID)

	var items []entities.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Find(&items).Error)
	assert.Len(t, items, 2)

	// the cart is cleared atomically with the order insert
	var remaining int64
	require.NoError(t, db.Model(&entities.CartEntry{}).Where("user_id = ?", userID).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)
}

func TestCheckoutEmptyCart(t *testing.T) {
	service, db := newTestService(t)
	userID := seedUser(t, db, "budi")

	_, err := service.Checkout(context.Background(), userID.String())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOrderItemsSnapshotPrice(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	userID := seedUser(t, db, "budi")
	burger := seedMenuItem(t, db, "cheese", 5.00)
	seedCartEntry(t, db, userID, burger, 2)

	_, err := service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	// a later price change must not rewrite order history
	require.NoError(t, db.Model(&entities.MenuItem{}).Where("id = ?", burger).Update("price", 9.99).Error)

	orders, err := service.GetUserOrders(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 5.00, orders[0].Items[0].Price)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.Equal(t, 10.00, orders[0].Total)
	assert.Equal(t, "http://localhost:5000/uploads/cheese.jpg", orders[0].Items[0].Image)
}

func TestGetUserOrdersScopedToUser(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	userID := seedUser(t, db, "budi")
	otherID := seedUser(t, db, "siti")
	burger := seedMenuItem(t, db, "cheese", 5.00)
	seedCartEntry(t, db, userID, burger, 1)

	_, err := service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	orders, err := service.GetUserOrders(ctx, otherID.String())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetAdminStats(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	// empty database reports zeroes, not an error
	stats, err := service.GetAdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Users)
	assert.Equal(t, int64(0), stats.OrdersToday)
	assert.Equal(t, 0.0, stats.Revenue)

	userID := seedUser(t, db, "budi")
	burger := seedMenuItem(t, db, "cheese", 5.00)
	seedCartEntry(t, db, userID, burger, 2)
	_, err = service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	stats, err = service.GetAdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.OrdersToday)
	assert.Equal(t, 10.00, stats.Revenue)
}

func TestGetRecentOrders(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	userID := seedUser(t, db, "budi")
	burger := seedMenuItem(t, db, "cheese", 5.00)
	seedCartEntry(t, db, userID, burger, 1)
	orderID, err := service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	rows, err := service.GetRecentOrders(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, orderID, rows[0].ID)
	assert.Equal(t, "budi", rows[0].Name)
	assert.Equal(t, 5.00, rows[0].Total)
	assert.Equal(t, "pending", rows[0].Status)
}

func TestGetChart(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	// no orders yields an empty series
	points, err := service.GetChart(ctx)
	require.NoError(t, err)
	assert.Empty(t, points)

	userID := seedUser(t, db, "budi")
	burger := seedMenuItem(t, db, "cheese", 5.00)

	seedCartEntry(t, db, userID, burger, 2)
	_, err = service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	seedCartEntry(t, db, userID, burger, 1)
	_, err = service.Checkout(ctx, userID.String())
	require.NoError(t, err)

	points, err = service.GetChart(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, int64(2), points[0].Orders)
	assert.Equal(t, 15.00, points[0].Income)
}

func TestGetChartGroupsByDayAscending(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := seedUser(t, db, "budi")

	now := time.Now()
	seedOrderAt := func(total float64, createdAt time.Time) {
		o := &entities.Order{ID: uuid.New(), UserID: userID, Total: total, Status: "pending"}
		o.CreatedAt = createdAt
		o.UpdatedAt = createdAt
		require.NoError(t, db.Create(o).Error)
	}

	seedOrderAt(4.00, now.AddDate(0, 0, -8)) // outside the 7-day window
	seedOrderAt(5.00, now.AddDate(0, 0, -3))
	seedOrderAt(2.50, now.AddDate(0, 0, -3))
	seedOrderAt(7.00, now)

	points, err := service.GetChart(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, now.AddDate(0, 0, -3).Format("2006-01-02"), points[0].Day)
	assert.Equal(t, int64(2), points[0].Orders)
	assert.Equal(t, 7.50, points[0].Income)

	assert.Equal(t, now.Format("2006-01-02"), points[1].Day)
	assert.Equal(t, int64(1), points[1].Orders)
	assert.Equal(t, 7.00, points[1].Income)
}
