package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tuffahtayn/delivery-api/models"
)

// Migrate creates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Store{}, &models.Courier{}, &models.Order{})
}

// Seed loads the demo dataset for the session: two stores, two couriers and
// five orders spanning the whole lifecycle. It is a no-op when the database
// already holds orders, so calling it twice is safe.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stores := []models.Store{
		{ID: 1, Name: "متجر الورود", Location: "القاهرة"},
		{ID: 2, Name: "متجر الأجهزة الحديثة", Location: "الجيزة"},
	}
	if err := db.Create(&stores).Error; err != nil {
		return err
	}

	couriers := []models.Courier{
		{ID: 101, Name: "علي حسن", Phone: "01012345678", Active: true},
		{ID: 102, Name: "محمود السيد", Phone: "01298765432", Active: false},
	}
	if err := db.Create(&couriers).Error; err != nil {
		return err
	}

	courier101 := uint(101)
	courier102 := uint(102)
	orders := []models.Order{
		{
			ID: 1, CustomerName: "أحمد محمود", Address: "123 شارع النصر، القاهرة",
			Value: decimal.NewFromInt(150), Fee: decimal.NewFromInt(25),
			Notes: "يرجى الاتصال قبل الوصول", Status: models.StatusPending, StoreID: 1,
		},
		{
			ID: 2, CustomerName: "فاطمة الزهراء", Address: "45 شارع الجمهورية، الجيزة",
			Value: decimal.NewFromInt(220), Fee: decimal.NewFromInt(30),
			Status: models.StatusInDelivery, StoreID: 1, CourierID: &courier101,
		},
		{
			ID: 3, CustomerName: "خالد وليد", Address: "78 شارع الحرية، الإسكندرية",
			Value: decimal.NewFromInt(95), Fee: decimal.NewFromInt(20),
			Notes: "الدور الثالث", Status: models.StatusDelivered, StoreID: 2, CourierID: &courier102,
		},
		{
			ID: 4, CustomerName: "سارة عبد الرحمن", Address: "90 شارع بغداد، مصر الجديدة",
			Value: decimal.NewFromInt(310), Fee: decimal.NewFromInt(35),
			Status: models.StatusPending, StoreID: 2,
		},
		{
			ID: 5, CustomerName: "محمد علي", Address: "55 شارع فيصل، الهرم",
			Value: decimal.NewFromInt(180), Fee: decimal.NewFromInt(25),
			Notes: "بجوار صيدلية العزبي", Status: models.StatusDelivered, StoreID: 1, CourierID: &courier101,
		},
	}
	return db.Create(&orders).Error
}
