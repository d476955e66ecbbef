package repository

import (
	"context"
	"errors"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type PresetRepository interface {
	Create(ctx context.Context, preset *models.Preset) error
	GetByID(ctx context.Context, id uint) (*models.Preset, error)
	GetAll(ctx context.Context) ([]models.Preset, error)
	GetByItemTypeID(ctx context.Context, itemTypeID uint) ([]models.Preset, error)
	Update(ctx context.Context, preset *models.Preset) error
	Delete(ctx context.Context, id uint) error
	SetPartGroups(ctx context.Context, presetID uint, partGroupIDs []uint) error
}

type presetRepository struct {
	db *gorm.DB
}

func NewPresetRepository(db *gorm.DB) PresetRepository {
	return &presetRepository{db: db}
}

func (r *presetRepository) Create(ctx context.Context, preset *models.Preset) error {
	return r.db.WithContext(ctx).Create(preset).Error
}

func (r *presetRepository) GetByID(ctx context.Context, id uint) (*models.Preset, error) {
	var preset models.Preset
	err := r.db.WithContext(ctx).
		Preload("ItemType").
		Preload("PartGroups.PartType").
		First(&preset, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

func (r *presetRepository) GetAll(ctx context.Context) ([]models.Preset, error) {
	var presets []models.Preset
	err := r.db.WithContext(ctx).Preload("ItemType").Order("id").Find(&presets).Error
	return presets, err
}

func (r *presetRepository) GetByItemTypeID(ctx context.Context, itemTypeID uint) ([]models.Preset, error) {
	var presets []models.Preset
	err := r.db.WithContext(ctx).
		Preload("PartGroups").
		Where("item_type_id = ?", itemTypeID).
		Find(&presets).Error
	return presets, err
}

func (r *presetRepository) Update(ctx context.Context, preset *models.Preset) error {
	return r.db.WithContext(ctx).Save(preset).Error
}

func (r *presetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var preset models.Preset
		if err := tx.First(&preset, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&preset).Association("PartGroups").Clear(); err != nil {
			return err
		}
		return tx.Delete(&preset).Error
	})
}

func (r *presetRepository) SetPartGroups(ctx context.Context, presetID uint, partGroupIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var preset models.Preset
		if err := tx.First(&preset, presetID).Error; err != nil {
			return err
		}
		var groups []models.PartGroup
		if len(partGroupIDs) > 0 {
			if err := tx.Find(&groups, partGroupIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(&preset).Association("PartGroups").Replace(groups)
	})
}
