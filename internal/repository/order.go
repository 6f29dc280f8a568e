package repository

import (
	"context"

	"github.com/pavelmamonov20/furnitura/internal/constant"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"gorm.io/gorm"
)

type OrderRepository struct {
	*baseRepository
}

func (or OrderRepository) Create(ctx context.Context, tx *gorm.DB, order *model.Order) (*model.Order, error) {
	or.logger.Debugf("Create order with data: %v \n", order)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Order{}).Create(order).Error; err != nil {
		return order, err
	}

	return order, nil
}

func (or OrderRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Order, error) {
	or.logger.Debugf("Get order with id: %s \n", id)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var order model.Order
	if err := db.WithContext(ctx).Model(&model.Order{}).Where(&model.Order{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).Preload("ProfileSystem").Preload("Hardware").Preload("Hardware.Component").First(&order).Error; err != nil {
		return nil, err
	}

	return &order, nil
}

func (or OrderRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Order, error) {
	or.logger.Debug("Get all orders \n")

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var orders []model.Order
	if err := db.WithContext(ctx).Model(&model.Order{}).Preload("ProfileSystem").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (or OrderRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	or.logger.Debugf("Delete order with id: %s \n", id)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	// Remove pinned hardware together with the order.
	return or.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where(&model.OrderHardware{OrderID: id}).Delete(&model.OrderHardware{}).Error; err != nil {
			return err
		}
		return tx.Where(&model.Order{
			BaseModel: model.BaseModel{
				ID: id,
			},
		}).Delete(&model.Order{}).Error
	})
}
