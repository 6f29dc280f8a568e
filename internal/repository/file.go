package repository

import (
	"context"

	"github.com/pavelmamonov20/furnitura/internal/constant"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"gorm.io/gorm"
)

type FileRepository struct {
	*baseRepository
}

func (fr FileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.File) (*model.File, error) {
	fr.logger.Debugf("Create file with data: %v \n", file)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.File{}).Create(file).Error; err != nil {
		return file, err
	}

	return file, nil
}

func (fr FileRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.File, error) {
	fr.logger.Debugf("Get file with id: %s \n", id)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var file model.File
	if err := db.WithContext(ctx).Model(&model.File{}).Where(&model.File{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(&file).Error; err != nil {
		return nil, err
	}

	return &file, nil
}

func (fr FileRepository) GetByOrderId(ctx context.Context, tx *gorm.DB, orderID string) ([]model.File, error) {
	fr.logger.Debugf("Get files of order with orderID: %s \n", orderID)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var files []model.File
	if err := db.WithContext(ctx).Model(&model.File{}).Where(&model.File{
		OrderID: orderID,
	}).Order("created_at desc").Find(&files).Error; err != nil {
		return nil, err
	}

	return files, nil
}

func (fr FileRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	fr.logger.Debugf("Delete file with id: %s \n", id)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Where(&model.File{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).Delete(&model.File{}).Error; err != nil {
		return err
	}

	return nil
}
