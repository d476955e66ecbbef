package repository

import (
	"context"
	"errors"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type ItemGroupRepository interface {
	Create(ctx context.Context, group *models.ItemGroup) error
	GetByID(ctx context.Context, id uint) (*models.ItemGroup, error)
	GetAll(ctx context.Context) ([]models.ItemGroup, error)
	Update(ctx context.Context, group *models.ItemGroup) error
	// ArchiveByID archives every item in the group before the group itself,
	// all in one transaction. Returns (nil, nil) when the group does not exist.
	ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveItemGroup, error)
}

type itemGroupRepository struct {
	db *gorm.DB
}

func NewItemGroupRepository(db *gorm.DB) ItemGroupRepository {
	return &itemGroupRepository{db: db}
}

func (r *itemGroupRepository) Create(ctx context.Context, group *models.ItemGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *itemGroupRepository) GetByID(ctx context.Context, id uint) (*models.ItemGroup, error) {
	var group models.ItemGroup
	err := r.db.WithContext(ctx).
		Preload("ItemType").
		Preload("Items").
		First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *itemGroupRepository) GetAll(ctx context.Context) ([]models.ItemGroup, error) {
	var groups []models.ItemGroup
	err := r.db.WithContext(ctx).Preload("ItemType").Order("id").Find(&groups).Error
	return groups, err
}

func (r *itemGroupRepository) Update(ctx context.Context, group *models.ItemGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *itemGroupRepository) ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveItemGroup, error) {
	var archived *models.ArchiveItemGroup
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := archiveItemGroup(tx, id, time.Now().UTC(), note)
		if err != nil {
			return err
		}
		archived = a
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

// archiveItemGroup moves one group and its items inside an ambient
// transaction, children first.
func archiveItemGroup(tx *gorm.DB, id uint, deleteTime time.Time, note string) (*models.ArchiveItemGroup, error) {
	var group models.ItemGroup
	if err := tx.Preload("Items.StatusHistories.Status").First(&group, id).Error; err != nil {
		return nil, err
	}

	for i := range group.Items {
		if _, err := archiveItem(tx, &group.Items[i], deleteTime, note); err != nil {
			return nil, err
		}
	}

	archive := models.ArchiveItemGroup{
		ID:             group.ID,
		ModelName:      group.ModelName,
		ItemTypeID:     group.ItemTypeID,
		Price:          group.Price,
		Manufacturer:   group.Manufacturer,
		WarrantyPeriod: group.WarrantyPeriod,
		Quantity:       group.Quantity,
		DeleteTime:     deleteTime,
		ArchiveNote:    note,
	}
	if err := tx.Create(&archive).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&models.ItemGroup{}, group.ID).Error; err != nil {
		return nil, err
	}
	return &archive, nil
}
