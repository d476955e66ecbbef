package repository

import (
	"context"
	"errors"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type ComputerRepository interface {
	Create(ctx context.Context, computer *models.Computer) error
	GetByID(ctx context.Context, id uint) (*models.Computer, error)
	GetAll(ctx context.Context) ([]models.Computer, error)
	Update(ctx context.Context, computer *models.Computer) error
	// Delete releases the computer's parts back to the shelf before removing
	// the row; the underlying item is untouched.
	Delete(ctx context.Context, id uint) error
	// AssignPart ties an unassigned part to the computer.
	AssignPart(ctx context.Context, computerID, partID uint) error
	RemovePart(ctx context.Context, computerID, partID uint) error
}

type computerRepository struct {
	db *gorm.DB
}

func NewComputerRepository(db *gorm.DB) ComputerRepository {
	return &computerRepository{db: db}
}

func (r *computerRepository) Create(ctx context.Context, computer *models.Computer) error {
	return r.db.WithContext(ctx).Create(computer).Error
}

func (r *computerRepository) GetByID(ctx context.Context, id uint) (*models.Computer, error) {
	var computer models.Computer
	err := r.db.WithContext(ctx).
		Preload("Item.ItemGroup").
		Preload("Item.Room").
		Preload("Parts.PartGroup.PartType").
		First(&computer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &computer, nil
}

func (r *computerRepository) GetAll(ctx context.Context) ([]models.Computer, error) {
	var computers []models.Computer
	err := r.db.WithContext(ctx).Preload("Item").Preload("Parts").Order("id").Find(&computers).Error
	return computers, err
}

func (r *computerRepository) Update(ctx context.Context, computer *models.Computer) error {
	return r.db.WithContext(ctx).Save(computer).Error
}

func (r *computerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ComputerPart{}).
			Where("computer_id = ?", id).
			Update("computer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Computer{}, id).Error
	})
}

func (r *computerRepository) AssignPart(ctx context.Context, computerID, partID uint) error {
	result := r.db.WithContext(ctx).Model(&models.ComputerPart{}).
		Where("id = ? AND computer_id IS NULL", partID).
		Update("computer_id", computerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *computerRepository) RemovePart(ctx context.Context, computerID, partID uint) error {
	result := r.db.WithContext(ctx).Model(&models.ComputerPart{}).
		Where("id = ? AND computer_id = ?", partID, computerID).
		Update("computer_id", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
