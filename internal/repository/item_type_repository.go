package repository

import (
	"context"
	"errors"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type ItemTypeRepository interface {
	Create(ctx context.Context, itemType *models.ItemType) error
	GetByID(ctx context.Context, id uint) (*models.ItemType, error)
	GetAll(ctx context.Context) ([]models.ItemType, error)
	Update(ctx context.Context, itemType *models.ItemType) error
	// ArchiveByID fans out two levels: every item of every group belonging to
	// the type is archived before its group, and every group before the type.
	// One transaction covers the whole cascade. (nil, nil) when absent.
	ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveItemType, error)
}

type itemTypeRepository struct {
	db *gorm.DB
}

func NewItemTypeRepository(db *gorm.DB) ItemTypeRepository {
	return &itemTypeRepository{db: db}
}

func (r *itemTypeRepository) Create(ctx context.Context, itemType *models.ItemType) error {
	return r.db.WithContext(ctx).Create(itemType).Error
}

func (r *itemTypeRepository) GetByID(ctx context.Context, id uint) (*models.ItemType, error) {
	var itemType models.ItemType
	err := r.db.WithContext(ctx).
		Preload("ItemGroups").
		Preload("Presets").
		First(&itemType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itemType, nil
}

func (r *itemTypeRepository) GetAll(ctx context.Context) ([]models.ItemType, error) {
	var itemTypes []models.ItemType
	err := r.db.WithContext(ctx).Order("id").Find(&itemTypes).Error
	return itemTypes, err
}

func (r *itemTypeRepository) Update(ctx context.Context, itemType *models.ItemType) error {
	return r.db.WithContext(ctx).Save(itemType).Error
}

func (r *itemTypeRepository) ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveItemType, error) {
	var archived *models.ArchiveItemType
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itemType models.ItemType
		if err := tx.Preload("ItemGroups").First(&itemType, id).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, group := range itemType.ItemGroups {
			if _, err := archiveItemGroup(tx, group.ID, now, note); err != nil {
				return err
			}
		}

		archive := models.ArchiveItemType{
			ID:          itemType.ID,
			Name:        itemType.Name,
			DeleteTime:  now,
			ArchiveNote: note,
		}
		if err := tx.Create(&archive).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ItemType{}, itemType.ID).Error; err != nil {
			return err
		}
		archived = &archive
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return archived, nil
}
