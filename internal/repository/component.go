package repository

import (
	"context"

	"github.com/pavelmamonov20/furnitura/internal/constant"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"gorm.io/gorm"
)

type ComponentRepository struct {
	*baseRepository
}

func (cr ComponentRepository) Create(ctx context.Context, tx *gorm.DB, component *model.HardwareComponent) (*model.HardwareComponent, error) {
	cr.logger.Debugf("Create hardware component with data: %v \n", component)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.HardwareComponent{}).Create(component).Error; err != nil {
		return component, err
	}

	return component, nil
}

func (cr ComponentRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.HardwareComponent, error) {
	cr.logger.Debugf("Get hardware component with id: %s \n", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var component model.HardwareComponent
	if err := db.WithContext(ctx).Model(&model.HardwareComponent{}).Where(&model.HardwareComponent{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(&component).Error; err != nil {
		return nil, err
	}

	return &component, nil
}

func (cr ComponentRepository) GetByArticleNumber(ctx context.Context, tx *gorm.DB, articleNumber string) (*model.HardwareComponent, error) {
	cr.logger.Debugf("Get hardware component with article number: %s \n", articleNumber)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var component model.HardwareComponent
	if err := db.WithContext(ctx).Model(&model.HardwareComponent{}).Where(&model.HardwareComponent{
		ArticleNumber: articleNumber,
	}).First(&component).Error; err != nil {
		return nil, err
	}

	return &component, nil
}

// List returns one page of catalog components, optionally filtered by a
// case-insensitive search over article number and name, and by category.
func (cr ComponentRepository) List(ctx context.Context, tx *gorm.DB, search string, category string, page, pageSize uint) ([]model.HardwareComponent, int64, error) {
	cr.logger.Debugf("List hardware components with search: %q category: %q page: %d \n", search, category, page)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = constant.DefaultPageSize
	}

	query := db.WithContext(ctx).Model(&model.HardwareComponent{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("article_number ILIKE ? OR name ILIKE ?", pattern, pattern)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var components []model.HardwareComponent
	if err := query.Order("article_number asc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&components).Error; err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

func (cr ComponentRepository) Update(ctx context.Context, tx *gorm.DB, component *model.HardwareComponent) (*model.HardwareComponent, error) {
	cr.logger.Debugf("Update hardware component with id: %s \n", component.ID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.HardwareComponent{}).Where(&model.HardwareComponent{
		BaseModel: model.BaseModel{
			ID: component.ID,
		},
	}).Updates(component).Error; err != nil {
		return component, err
	}

	return component, nil
}

func (cr ComponentRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	cr.logger.Debugf("Delete hardware component with id: %s \n", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Where(&model.HardwareComponent{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).Delete(&model.HardwareComponent{}).Error; err != nil {
		return err
	}

	return nil
}
