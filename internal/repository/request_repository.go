package repository

import (
	"context"
	"errors"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	GetByID(ctx context.Context, id uint) (*models.Request, error)
	GetAll(ctx context.Context) ([]models.Request, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Request, error)
	Update(ctx context.Context, request *models.Request) error
	// ArchiveByID moves the request to the archive. (nil, nil) when absent.
	ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.Request, error) {
	var request models.Request
	err := r.db.WithContext(ctx).Preload("User.Role").First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetAll(ctx context.Context) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepository) Update(ctx context.Context, request *models.Request) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *requestRepository) ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveRequest, error) {
	var archived *models.ArchiveRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request models.Request
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}
		a, err := archiveRequest(tx, &request, time.Now().UTC(), note)
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

func archiveRequest(tx *gorm.DB, request *models.Request, deleteTime time.Time, note string) (*models.ArchiveRequest, error) {
	archive := models.ArchiveRequest{
		ID:          request.ID,
		UserID:      request.UserID,
		ItemName:    request.ItemName,
		Description: request.Description,
		Status:      request.Status,
		DeleteTime:  deleteTime,
		ArchiveNote: note,
	}
	if err := tx.Create(&archive).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&models.Request{}, request.ID).Error; err != nil {
		return nil, err
	}
	return &archive, nil
}
