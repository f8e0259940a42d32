package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tuffahtayn/delivery-api/models"
)

// Directory reads the static reference entities: the stores and couriers
// known to the platform. Order flow never mutates these.
type Directory struct {
	db *gorm.DB
}

// NewDirectory creates a Directory on top of db.
func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// Stores returns every registered store.
func (d *Directory) Stores() ([]models.Store, error) {
	var stores []models.Store
	if err := d.db.Order("id").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// Couriers returns every registered courier, active or not.
func (d *Directory) Couriers() ([]models.Courier, error) {
	var couriers []models.Courier
	if err := d.db.Order("id").Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

// FindStore returns one store by id.
func (d *Directory) FindStore(id uint) (models.Store, error) {
	var store models.Store
	if err := d.db.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Store{}, ErrStoreNotFound
		}
		return models.Store{}, err
	}
	return store, nil
}

// FindCourier returns one courier by id.
func (d *Directory) FindCourier(id uint) (models.Courier, error) {
	var courier models.Courier
	if err := d.db.First(&courier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Courier{}, ErrCourierNotFound
		}
		return models.Courier{}, err
	}
	return courier, nil
}

// DefaultStore returns the first registered store. Used when a store session
// logs in without naming an explicit store id.
func (d *Directory) DefaultStore() (models.Store, error) {
	var store models.Store
	if err := d.db.Order("id").First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Store{}, ErrStoreNotFound
		}
		return models.Store{}, err
	}
	return store, nil
}

// DefaultCourier returns the first active courier. Used when a courier
// session logs in without naming an explicit courier id.
func (d *Directory) DefaultCourier() (models.Courier, error) {
	var courier models.Courier
	if err := d.db.Where("active = ?", true).Order("id").First(&courier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Courier{}, ErrCourierNotFound
		}
		return models.Courier{}, err
	}
	return courier, nil
}
