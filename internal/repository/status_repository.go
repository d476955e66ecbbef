package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type StatusRepository interface {
	Create(ctx context.Context, status *models.Status) error
	GetByID(ctx context.Context, id uint) (*models.Status, error)
	GetAll(ctx context.Context) ([]models.Status, error)
	// Update renames a status; the normalized name and kind follow the new name.
	Update(ctx context.Context, status *models.Status) error
	GetOrCreateByName(ctx context.Context, name string) (*models.Status, error)
	// SetItemStatus appends a StatusHistory row for the item unless its latest
	// status already matches the named one.
	SetItemStatus(ctx context.Context, itemID uint, statusName string, note *string) error
	// LatestPerItem returns each item's newest history row with the status
	// preloaded, for dashboard bucketing.
	LatestPerItem(ctx context.Context) ([]models.StatusHistory, error)
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) Create(ctx context.Context, status *models.Status) error {
	status.NormalizedName = models.NormalizeStatusName(status.Name)
	if status.Kind == "" {
		status.Kind = models.InferStatusKind(status.Name)
	}
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *statusRepository) Update(ctx context.Context, status *models.Status) error {
	status.NormalizedName = models.NormalizeStatusName(status.Name)
	status.Kind = models.InferStatusKind(status.Name)
	return r.db.WithContext(ctx).Save(status).Error
}

func (r *statusRepository) GetByID(ctx context.Context, id uint) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).First(&status, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) GetAll(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error
	return statuses, err
}

func (r *statusRepository) GetOrCreateByName(ctx context.Context, name string) (*models.Status, error) {
	return getOrCreateStatus(r.db.WithContext(ctx), name)
}

func (r *statusRepository) SetItemStatus(ctx context.Context, itemID uint, statusName string, note *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return setItemStatus(tx, itemID, statusName, note)
	})
}

func (r *statusRepository) LatestPerItem(ctx context.Context) ([]models.StatusHistory, error) {
	var histories []models.StatusHistory
	err := r.db.WithContext(ctx).
		Preload("Status").
		Order("item_id, status_update_date DESC, id DESC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}

	// Keep only the first (newest) row per item; the ordering above makes the
	// scan linear.
	latest := make([]models.StatusHistory, 0)
	seen := make(map[uint]bool)
	for _, h := range histories {
		if seen[h.ItemID] {
			continue
		}
		seen[h.ItemID] = true
		latest = append(latest, h)
	}
	return latest, nil
}

// getOrCreateStatus looks a status up by normalized name, creating it with the
// trimmed original casing if absent. Runs on whatever handle it is given, so
// callers inside a transaction stay inside it.
func getOrCreateStatus(tx *gorm.DB, name string) (*models.Status, error) {
	normalized := models.NormalizeStatusName(name)

	var status models.Status
	err := tx.Where("normalized_name = ?", normalized).First(&status).Error
	if err == nil {
		return &status, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status = models.Status{
		Name:           strings.TrimSpace(name),
		NormalizedName: normalized,
		Kind:           models.InferStatusKind(name),
	}
	if err := tx.Create(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// currentStatusID returns the id of the item's latest status by update date,
// ties broken by highest history id. Zero when the item has no history yet.
func currentStatusID(tx *gorm.DB, itemID uint) (uint, error) {
	var history models.StatusHistory
	err := tx.Where("item_id = ?", itemID).
		Order("status_update_date DESC, id DESC").
		First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return history.StatusID, nil
}

// setItemStatus appends a history row pointing the item at the named status.
// Idempotent: a no-op when the latest row already carries that status.
func setItemStatus(tx *gorm.DB, itemID uint, statusName string, note *string) error {
	status, err := getOrCreateStatus(tx, statusName)
	if err != nil {
		return err
	}

	currentID, err := currentStatusID(tx, itemID)
	if err != nil {
		return err
	}
	if currentID == status.ID {
		return nil
	}

	history := models.StatusHistory{
		ItemID:           itemID,
		StatusID:         status.ID,
		StatusUpdateDate: time.Now().UTC(),
		Note:             note,
	}
	return tx.Create(&history).Error
}
