package cart

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/entities"
	"Burger-App-Backend/pkg/menu"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.MenuItem{}, &entities.CartEntry{}))
	return db
}

func newTestService(t *testing.T) (CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCartService(NewCartRepository(db), menu.NewMenuRepository(db), stubStorage{}), db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) uuid.UUID {
	t.Helper()
	item := &entities.MenuItem{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Category: "burger",
		Image:    "burger.jpg",
	}
	require.NoError(t, db.Create(item).Error)
	return item.ID
}

func TestAddToCartIncrementsOnRepeat(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	menuID := seedMenuItem(t, db, "Cheese Burger", 5.00)

	for i := 0; i < 3; i++ {
		require.NoError(t, service.AddToCart(ctx, userID.String(), domain.AddToCartRequest{MenuID: menuID.String()}))
	}

	var entries []entities.CartEntry
	require.NoError(t, db.Where("user_id = ?", userID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestAddToCartUnknownMenuItem(t *testing.T) {
	service, _ := newTestService(t)

	err := service.AddToCart(context.Background(), uuid.New().String(), domain.AddToCartRequest{MenuID: uuid.New().String()})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestListCart(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	menuID := seedMenuItem(t, db, "Cheese Burger", 5.00)

	require.NoError(t, service.AddToCart(ctx, userID.String(), domain.AddToCartRequest{MenuID: menuID.String()}))

	entries, err := service.ListCart(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Cheese Burger", entries[0].Name)
	assert.Equal(t, 5.00, entries[0].Price)
	assert.Equal(t, 1, entries[0].Quantity)
	assert.Equal(t, "http://localhost:5000/uploads/burger.jpg", entries[0].Image)

	// another user's cart stays empty
	other, err := service.ListCart(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	menuID := seedMenuItem(t, db, "Cheese Burger", 5.00)

	for i := 0; i < 3; i++ {
		require.NoError(t, service.AddToCart(ctx, userID.String(), domain.AddToCartRequest{MenuID: menuID.String()}))
	}

	var entry entities.CartEntry
	require.NoError(t, db.Where("user_id = ?", userID).First(&entry).Error)

	require.NoError(t, service.UpdateQuantity(ctx, domain.UpdateCartRequest{CartID: entry.ID.String(), Change: -100}))
	require.NoError(t, db.First(&entry, "id = ?", entry.ID).Error)
	assert.Equal(t, 1, entry.Quantity)

	require.NoError(t, service.UpdateQuantity(ctx, domain.UpdateCartRequest{CartID: entry.ID.String(), Change: 4}))
	require.NoError(t, db.First(&entry, "id = ?", entry.ID).Error)
	assert.Equal(t, 5, entry.Quantity)
}

func TestUpdateQuantityUnknownEntry(t *testing.T) {
	service, _ := newTestService(t)

	err := service.UpdateQuantity(context.Background(), domain.UpdateCartRequest{CartID: uuid.New().String(), Change: 1})
	assert.ErrorIs(t, err, domain.ErrCartEntryNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	menuID := seedMenuItem(t, db, "Cheese Burger", 5.00)

	require.NoError(t, service.AddToCart(ctx, userID.String(), domain.AddToCartRequest{MenuID: menuID.String()}))

	var entry entities.CartEntry
	require.NoError(t, db.Where("user_id = ?", userID).First(&entry).Error)

	require.NoError(t, service.RemoveFromCart(ctx, domain.RemoveCartRequest{CartID: entry.ID.String()}))

	var count int64
	require.NoError(t, db.Model(&entities.CartEntry{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// removing an absent entry is not an error
	assert.NoError(t, service.RemoveFromCart(ctx, domain.RemoveCartRequest{CartID: entry.ID.String()}))
}
