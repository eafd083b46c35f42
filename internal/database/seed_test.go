package database_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"store2070/internal/database"
	"store2070/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	err := database.Seed(db)
	assert.NoError(t, err)

	assert.EqualValues(t, 3, count(t, db, &models.Category{}))
	assert.EqualValues(t, 4, count(t, db, &models.Product{}))
	assert.EqualValues(t, 4, count(t, db, &models.User{}))
	assert.EqualValues(t, 3, count(t, db, &models.Order{}))
	assert.EqualValues(t, 3, count(t, db, &models.OrderItem{}))

	// The admin fixture is present with its flag set
	var admin models.User
	assert.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.Equal(t, 1, admin.IsAdmin)
	assert.Equal(t, "admin_hash_2070", admin.Password)
	assert.False(t, admin.EmailVerified)

	// Every order item references existing rows, and each order's
	// total matches its single item's captured price
	var items []models.OrderItem
	assert.NoError(t, db.Find(&items).Error)
	for _, item := range items {
		var order models.Order
		assert.NoError(t, db.First(&order, item.OrderID).Error)
		var product models.Product
		assert.NoError(t, db.First(&product, item.ProductID).Error)
		assert.Equal(t, order.TotalPrice, item.Price*float64(item.Quantity))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, database.Seed(db))
	assert.NoError(t, database.Seed(db))

	// The second invocation is a no-op guarded by the category probe
	assert.EqualValues(t, 3, count(t, db, &models.Category{}))
	assert.EqualValues(t, 4, count(t, db, &models.Product{}))
	assert.EqualValues(t, 4, count(t, db, &models.User{}))
	assert.EqualValues(t, 3, count(t, db, &models.Order{}))
	assert.EqualValues(t, 3, count(t, db, &models.OrderItem{}))
}
