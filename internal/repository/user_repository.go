package repository

import (
	"context"
	"errors"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmailFingerprint(ctx context.Context, fingerprint string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	// ArchiveByID archives the user's loans and requests before the user row
	// itself, all in one transaction. (nil, nil) when absent.
	ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveUser, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Loans.Item").
		Preload("Requests").
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmailFingerprint(ctx context.Context, fingerprint string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("email_fingerprint = ?", fingerprint).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Preload("Role").Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveUser, error) {
	var archived *models.ArchiveUser
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Loans").Preload("Requests").First(&user, id).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		for i := range user.Loans {
			if _, err := archiveLoan(tx, &user.Loans[i], now, note); err != nil {
				return err
			}
		}
		for i := range user.Requests {
			if _, err := archiveRequest(tx, &user.Requests[i], now, note); err != nil {
				return err
			}
		}

		archive := models.ArchiveUser{
			ID:               user.ID,
			FirstName:        user.FirstName,
			LastName:         user.LastName,
			EncryptedEmail:   user.EncryptedEmail,
			EmailFingerprint: user.EmailFingerprint,
			RoleID:           user.RoleID,
			DeleteTime:       now,
			ArchiveNote:      note,
		}
		if err := tx.Create(&archive).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, user.ID).Error; err != nil {
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
