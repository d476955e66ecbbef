package repository

import (
	"context"
	"errors"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

// Parts inventory mirrors the item/group/type shape but is not archivable;
// parts are plain-deleted.

type PartTypeRepository interface {
	Create(ctx context.Context, partType *models.PartType) error
	GetByID(ctx context.Context, id uint) (*models.PartType, error)
	GetAll(ctx context.Context) ([]models.PartType, error)
	Update(ctx context.Context, partType *models.PartType) error
	Delete(ctx context.Context, id uint) error
}

type partTypeRepository struct {
	db *gorm.DB
}

func NewPartTypeRepository(db *gorm.DB) PartTypeRepository {
	return &partTypeRepository{db: db}
}

func (r *partTypeRepository) Create(ctx context.Context, partType *models.PartType) error {
	return r.db.WithContext(ctx).Create(partType).Error
}

func (r *partTypeRepository) GetByID(ctx context.Context, id uint) (*models.PartType, error) {
	var partType models.PartType
	err := r.db.WithContext(ctx).Preload("PartGroups").First(&partType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partType, nil
}

func (r *partTypeRepository) GetAll(ctx context.Context) ([]models.PartType, error) {
	var partTypes []models.PartType
	err := r.db.WithContext(ctx).Order("id").Find(&partTypes).Error
	return partTypes, err
}

func (r *partTypeRepository) Update(ctx context.Context, partType *models.PartType) error {
	return r.db.WithContext(ctx).Save(partType).Error
}

func (r *partTypeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PartType{}, id).Error
}

type PartGroupRepository interface {
	Create(ctx context.Context, partGroup *models.PartGroup) error
	GetByID(ctx context.Context, id uint) (*models.PartGroup, error)
	GetAll(ctx context.Context) ([]models.PartGroup, error)
	Update(ctx context.Context, partGroup *models.PartGroup) error
	Delete(ctx context.Context, id uint) error
}

type partGroupRepository struct {
	db *gorm.DB
}

func NewPartGroupRepository(db *gorm.DB) PartGroupRepository {
	return &partGroupRepository{db: db}
}

func (r *partGroupRepository) Create(ctx context.Context, partGroup *models.PartGroup) error {
	return r.db.WithContext(ctx).Create(partGroup).Error
}

func (r *partGroupRepository) GetByID(ctx context.Context, id uint) (*models.PartGroup, error) {
	var partGroup models.PartGroup
	err := r.db.WithContext(ctx).Preload("PartType").Preload("Parts").First(&partGroup, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partGroup, nil
}

func (r *partGroupRepository) GetAll(ctx context.Context) ([]models.PartGroup, error) {
	var partGroups []models.PartGroup
	err := r.db.WithContext(ctx).Preload("PartType").Order("id").Find(&partGroups).Error
	return partGroups, err
}

func (r *partGroupRepository) Update(ctx context.Context, partGroup *models.PartGroup) error {
	return r.db.WithContext(ctx).Save(partGroup).Error
}

func (r *partGroupRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PartGroup{}, id).Error
}

type ComputerPartRepository interface {
	Create(ctx context.Context, part *models.ComputerPart) error
	GetByID(ctx context.Context, id uint) (*models.ComputerPart, error)
	GetAll(ctx context.Context) ([]models.ComputerPart, error)
	GetUnassigned(ctx context.Context) ([]models.ComputerPart, error)
	Update(ctx context.Context, part *models.ComputerPart) error
	Delete(ctx context.Context, id uint) error
}

type computerPartRepository struct {
	db *gorm.DB
}

func NewComputerPartRepository(db *gorm.DB) ComputerPartRepository {
	return &computerPartRepository{db: db}
}

func (r *computerPartRepository) Create(ctx context.Context, part *models.ComputerPart) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *computerPartRepository) GetByID(ctx context.Context, id uint) (*models.ComputerPart, error) {
	var part models.ComputerPart
	err := r.db.WithContext(ctx).Preload("PartGroup.PartType").First(&part, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *computerPartRepository) GetAll(ctx context.Context) ([]models.ComputerPart, error) {
	var parts []models.ComputerPart
	err := r.db.WithContext(ctx).Preload("PartGroup").Order("id").Find(&parts).Error
	return parts, err
}

func (r *computerPartRepository) GetUnassigned(ctx context.Context) ([]models.ComputerPart, error) {
	var parts []models.ComputerPart
	err := r.db.WithContext(ctx).Preload("PartGroup").Where("computer_id IS NULL").Find(&parts).Error
	return parts, err
}

func (r *computerPartRepository) Update(ctx context.Context, part *models.ComputerPart) error {
	return r.db.WithContext(ctx).Save(part).Error
}

func (r *computerPartRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ComputerPart{}, id).Error
}
