package repository

import (
	"context"

	"github.com/pavelmamonov20/furnitura/internal/constant"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"gorm.io/gorm"
)

type OrderHardwareRepository struct {
	*baseRepository
}

func (ohr OrderHardwareRepository) Create(ctx context.Context, tx *gorm.DB, hardware *model.OrderHardware) (*model.OrderHardware, error) {
	ohr.logger.Debugf("Pin hardware to order with data: %v \n", hardware)

	db := ohr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.OrderHardware{}).Create(hardware).Error; err != nil {
		return hardware, err
	}

	return hardware, nil
}

// CreateBatch pins several placements in one transaction, so a partial
// placement result is never stored.
func (ohr OrderHardwareRepository) CreateBatch(ctx context.Context, tx *gorm.DB, hardware []model.OrderHardware) ([]model.OrderHardware, error) {
	ohr.logger.Debugf("Pin %d hardware items to order \n", len(hardware))

	db := ohr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if len(hardware) == 0 {
		return hardware, nil
	}

	err := ohr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		return tx.Model(&model.OrderHardware{}).Create(&hardware).Error
	})
	if err != nil {
		return nil, err
	}

	return hardware, nil
}

func (ohr OrderHardwareRepository) GetByOrderId(ctx context.Context, tx *gorm.DB, orderID string) ([]model.OrderHardware, error) {
	ohr.logger.Debugf("Get hardware of order with orderID: %s \n", orderID)

	db := ohr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var hardware []model.OrderHardware
	if err := db.WithContext(ctx).Model(&model.OrderHardware{}).Where(&model.OrderHardware{
		OrderID: orderID,
	}).Preload("Component").Order("created_at asc").Find(&hardware).Error; err != nil {
		return nil, err
	}

	return hardware, nil
}

func (ohr OrderHardwareRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	ohr.logger.Debugf("Delete order hardware with id: %s \n", id)

	db := ohr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Where(&model.OrderHardware{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).Delete(&model.OrderHardware{}).Error; err != nil {
		return err
	}

	return nil
}
