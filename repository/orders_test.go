package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tuffahtayn/delivery-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func draft(storeID uint) OrderDraft {
	return OrderDraft{
		CustomerName: "أحمد محمود",
		Address:      "123 شارع النصر، القاهرة",
		Value:        decimal.NewFromInt(150),
		Fee:          decimal.NewFromInt(25),
		StoreID:      storeID,
	}
}

func TestCreate_Defaults(t *testing.T) {
	orders := NewOrders(setupTestDB(t))

	created, err := orders.Create(draft(1))
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Nil(t, created.CourierID)
	assert.Equal(t, uint(1), created.StoreID)
	assert.True(t, created.Value.Equal(decimal.NewFromInt(150)))
	assert.True(t, created.Fee.Equal(decimal.NewFromInt(25)))
}

func TestList_MostRecentFirst(t *testing.T) {
	orders := NewOrders(setupTestDB(t))

	first, _ := orders.Create(draft(1))
	second, _ := orders.Create(draft(2))
	third, _ := orders.Create(draft(1))

	all, err := orders.List()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	// Updating a record must not disturb the listing order.
	_, err = orders.Accept(second.ID, 101)
	assert.NoError(t, err)

	all, err = orders.List()
	assert.NoError(t, err)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})
}

func TestListByStore(t *testing.T) {
	orders := NewOrders(setupTestDB(t))

	mine, _ := orders.Create(draft(1))
	orders.Create(draft(2))

	got, err := orders.ListByStore(1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	orders := NewOrders(setupTestDB(t))

	_, err := orders.Get(999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAccept(t *testing.T) {
	orders := NewOrders(setupTestDB(t))
	created, _ := orders.Create(draft(1))

	accepted, err := orders.Accept(created.ID, 101)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInDelivery, accepted.Status)
	if assert.NotNil(t, accepted.CourierID) {
		assert.Equal(t, uint(101), *accepted.CourierID)
	}
}

func TestAccept_SecondCourierLoses(t *testing.T) {
	orders := NewOrders(setupTestDB(t))
	created, _ := orders.Create(draft(1))

	_, err := orders.Accept(created.ID, 101)
	assert.NoError(t, err)

	// The race loser must fail, never silently overwrite the assignment.
	_, err = orders.Accept(created.ID, 102)
	assert.ErrorIs(t, err, ErrOrderTaken)

	order, _ := orders.Get(created.ID)
	assert.Equal(t, models.StatusInDelivery, order.Status)
	assert.Equal(t, uint(101), *order.CourierID)
}

func TestAccept_NotPending(t *testing.T) {
	orders := NewOrders(setupTestDB(t))
	created, _ := orders.Create(draft(1))

	orders.Accept(created.ID, 101)
	orders.Complete(created.ID, 101)

	_, err := orders.Accept(created.ID, 101)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAccept_NotFound(t *testing.T) {
	orders := NewOrders(setupTestDB(t))

	_, err := orders.Accept(999, 101)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestComplete(t *testing.T) {
	orders := NewOrders(setupTestDB(t))
	created, _ := orders.Create(draft(1))
	orders.Accept(created.ID, 101)

	delivered, err := orders.Complete(created.ID, 101)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, delivered.Status)
	// The assignment survives delivery.
	if assert.NotNil(t, delivered.CourierID) {
		assert.Equal(t, uint(101), *delivered.CourierID)
	}
}

func TestComplete_WrongCourier(t *testing.T) {
	orders := NewOrders(setupTestDB(t))
	created, _ := orders.Create(draft(1))
	orders.Accept(created.ID, 101)

	_, err := orders.Complete(created.ID, 102)
	assert.ErrorIs(t, err, ErrNotAssignee)

	order, _ := orders.Get(created.ID)
	assert.Equal(t, models.StatusInDelivery, order.Status)
}

func TestComplete_NotInDelivery(t *testing.T) {
	orders := NewOrders(setupTestDB(t))
	created, _ := orders.Create(draft(1))

	_, err := orders.Complete(created.ID, 101)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestComplete_NotFound(t *testing.T) {
	orders := NewOrders(setupTestDB(t))

	_, err := orders.Complete(999, 101)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Seed(db))

	orders := NewOrders(db)
	all, err := orders.List()
	assert.NoError(t, err)
	assert.Len(t, all, 5)

	// Seeding again is a no-op.
	assert.NoError(t, Seed(db))
	all, _ = orders.List()
	assert.Len(t, all, 5)

	directory := NewDirectory(db)
	stores, err := directory.Stores()
	assert.NoError(t, err)
	assert.Len(t, stores, 2)
	couriers, err := directory.Couriers()
	assert.NoError(t, err)
	assert.Len(t, couriers, 2)
}

func TestDirectoryDefaults(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Seed(db))
	directory := NewDirectory(db)

	store, err := directory.DefaultStore()
	assert.NoError(t, err)
	assert.Equal(t, uint(1), store.ID)

	// Courier 101 is the first active one; 102 is seeded inactive.
	courier, err := directory.DefaultCourier()
	assert.NoError(t, err)
	assert.Equal(t, uint(101), courier.ID)
	assert.True(t, courier.Active)
}

func TestDirectoryNotFound(t *testing.T) {
	directory := NewDirectory(setupTestDB(t))

	_, err := directory.FindStore(7)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	_, err = directory.FindCourier(7)
	assert.ErrorIs(t, err, ErrCourierNotFound)
	_, err = directory.DefaultStore()
	assert.ErrorIs(t, err, ErrStoreNotFound)
	_, err = directory.DefaultCourier()
	assert.ErrorIs(t, err, ErrCourierNotFound)
}
