package repository

import (
	"context"

	"github.com/pavelmamonov20/furnitura/internal/constant"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileSystemRepository struct {
	*baseRepository
}

func (pr ProfileSystemRepository) Create(ctx context.Context, tx *gorm.DB, profile *model.ProfileSystem) (*model.ProfileSystem, error) {
	pr.logger.Debugf("Create profile system with data: %v \n", profile)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProfileSystem{}).Create(profile).Error; err != nil {
		return profile, err
	}

	return profile, nil
}

// Upsert replaces the stored parameters when a profile system with the
// same name already exists, mirroring the calculator's
// overwrite-on-duplicate registration semantics.
func (pr ProfileSystemRepository) Upsert(ctx context.Context, tx *gorm.DB, profile *model.ProfileSystem) (*model.ProfileSystem, error) {
	pr.logger.Debugf("Upsert profile system with name: %s \n", profile.Name)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProfileSystem{}).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "axis_offset", "sash_thickness", "frame_width", "sash_width", "updated_at"}),
	}).Create(profile).Error; err != nil {
		return profile, err
	}

	return profile, nil
}

func (pr ProfileSystemRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.ProfileSystem, error) {
	pr.logger.Debugf("Get profile system with id: %s \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var profile model.ProfileSystem
	if err := db.WithContext(ctx).Model(&model.ProfileSystem{}).Where(&model.ProfileSystem{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (pr ProfileSystemRepository) GetByName(ctx context.Context, tx *gorm.DB, name string) (*model.ProfileSystem, error) {
	pr.logger.Debugf("Get profile system with name: %s \n", name)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var profile model.ProfileSystem
	if err := db.WithContext(ctx).Model(&model.ProfileSystem{}).Where(&model.ProfileSystem{
		Name: name,
	}).First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (pr ProfileSystemRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.ProfileSystem, error) {
	pr.logger.Debug("Get all profile systems \n")

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var profiles []model.ProfileSystem
	if err := db.WithContext(ctx).Model(&model.ProfileSystem{}).Order("name asc").Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (pr ProfileSystemRepository) Update(ctx context.Context, tx *gorm.DB, profile *model.ProfileSystem) (*model.ProfileSystem, error) {
	pr.logger.Debugf("Update profile system with id: %s \n", profile.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProfileSystem{}).Where(&model.ProfileSystem{
		BaseModel: model.BaseModel{
			ID: profile.ID,
		},
	}).Updates(profile).Error; err != nil {
		return profile, err
	}

	return profile, nil
}

func (pr ProfileSystemRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	pr.logger.Debugf("Delete profile system with id: %s \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Where(&model.ProfileSystem{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).Delete(&model.ProfileSystem{}).Error; err != nil {
		return err
	}

	return nil
}
