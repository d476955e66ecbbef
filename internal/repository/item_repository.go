package repository

import (
	"context"
	"errors"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByItemGroupID(ctx context.Context, itemGroupID uint) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Count(ctx context.Context) (int64, error)
	// ArchiveByID moves the item and its status history into the archive
	// tables. Returns (nil, nil) when the item does not exist.
	ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveItem, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Preload("ItemGroup.ItemType").
		Preload("Room.Building").
		Preload("StatusHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("status_update_date DESC, id DESC")
		}).
		Preload("StatusHistories.Status").
		Preload("Loans", "return_date IS NULL").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Preload("ItemGroup").
		Preload("Room").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) GetByItemGroupID(ctx context.Context, itemGroupID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).Where("item_group_id = ?", itemGroupID).Find(&items).Error
	return items, err
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&n).Error
	return n, err
}

func (r *itemRepository) ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveItem, error) {
	var archived *models.ArchiveItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Preload("StatusHistories.Status").First(&item, id).Error; err != nil {
			return err
		}
		a, err := archiveItem(tx, &item, time.Now().UTC(), note)
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

// archiveItem performs the move for one item inside an ambient transaction:
// copy the status history into the archive, delete the live history rows (no
// cascade is configured for them), insert the archive row, delete the item.
// The item must have StatusHistories.Status preloaded.
func archiveItem(tx *gorm.DB, item *models.Item, deleteTime time.Time, note string) (*models.ArchiveItem, error) {
	archive := models.ArchiveItem{
		ID:            item.ID,
		ItemGroupID:   item.ItemGroupID,
		RoomID:        item.RoomID,
		SerialNumber:  item.SerialNumber,
		ItemImageURL:  item.ItemImageURL,
		ItemImageInfo: item.ItemImageInfo,
		DeleteTime:    deleteTime,
		ArchiveNote:   note,
	}
	for _, h := range item.StatusHistories {
		entry := models.ArchiveStatusHistory{
			ArchiveItemID:    item.ID,
			StatusID:         h.StatusID,
			StatusUpdateDate: h.StatusUpdateDate,
			Note:             h.Note,
		}
		if h.Status != nil {
			entry.StatusName = h.Status.Name
		}
		archive.StatusHistories = append(archive.StatusHistories, entry)
	}

	if err := tx.Where("item_id = ?", item.ID).Delete(&models.StatusHistory{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Create(&archive).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&models.Item{}, item.ID).Error; err != nil {
		return nil, err
	}
	return &archive, nil
}
