package repository

import (
	"context"
	"errors"
	"time"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrItemOnLoan = errors.New("item already on loan")

type LoanRepository interface {
	// Create writes the loan and flips the item's status to Borrowed in one
	// transaction. Fails with ErrItemOnLoan if an open loan exists for the item.
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	GetAll(ctx context.Context) ([]models.Loan, error)
	GetByBorrowerID(ctx context.Context, borrowerID uint) ([]models.Loan, error)
	// UpdateByID applies the changes and keeps item statuses consistent: when
	// the loan moves to a different item, the new item becomes Borrowed and
	// the previous one Available. (nil, nil) when the loan does not exist.
	UpdateByID(ctx context.Context, id uint, update *models.Loan) (*models.Loan, error)
	CountActive(ctx context.Context) (int64, error)
	// ArchiveByID moves the loan to the archive and sets the item back to
	// Available. (nil, nil) when absent.
	ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveLoan, error)
}

type loanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// lockForUpdate takes a row lock on supporting databases. sqlite, used by the
// tests, has no FOR UPDATE and runs single-writer anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := lockForUpdate(tx).First(&item, loan.ItemID).Error; err != nil {
			return err
		}

		var open int64
		if err := tx.Model(&models.Loan{}).
			Where("item_id = ? AND return_date IS NULL", loan.ItemID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrItemOnLoan
		}

		if loan.LoanDate.IsZero() {
			loan.LoanDate = time.Now().UTC()
		}
		if err := tx.Create(loan).Error; err != nil {
			return err
		}

		return setItemStatus(tx, loan.ItemID, models.StatusNameBorrowed, nil)
	})
}

func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("Item.ItemGroup").
		Preload("Borrower.Role").
		Preload("Approver.Role").
		First(&loan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) GetAll(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Borrower").
		Order("loan_date DESC").
		Find(&loans).Error
	return loans, err
}

func (r *loanRepository) GetByBorrowerID(ctx context.Context, borrowerID uint) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("borrower_id = ?", borrowerID).
		Order("loan_date DESC").
		Find(&loans).Error
	return loans, err
}

func (r *loanRepository) UpdateByID(ctx context.Context, id uint, update *models.Loan) (*models.Loan, error) {
	var result *models.Loan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var loan models.Loan
		if err := lockForUpdate(tx).First(&loan, id).Error; err != nil {
			return err
		}

		previousItemID := loan.ItemID

		loan.ItemID = update.ItemID
		loan.BorrowerID = update.BorrowerID
		loan.ApproverID = update.ApproverID
		if !update.LoanDate.IsZero() {
			loan.LoanDate = update.LoanDate
		}
		loan.ReturnDate = update.ReturnDate
		if err := tx.Save(&loan).Error; err != nil {
			return err
		}

		if err := setItemStatus(tx, loan.ItemID, models.StatusNameBorrowed, nil); err != nil {
			return err
		}
		if previousItemID != loan.ItemID {
			if err := setItemStatus(tx, previousItemID, models.StatusNameAvailable, nil); err != nil {
				return err
			}
		}

		result = &loan
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *loanRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Loan{}).
		Where("return_date IS NULL").
		Count(&n).Error
	return n, err
}

func (r *loanRepository) ArchiveByID(ctx context.Context, id uint, note string) (*models.ArchiveLoan, error) {
	var archived *models.ArchiveLoan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var loan models.Loan
		if err := lockForUpdate(tx).First(&loan, id).Error; err != nil {
			return err
		}
		a, err := archiveLoan(tx, &loan, time.Now().UTC(), note)
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

// archiveLoan moves one loan inside an ambient transaction and returns the
// item to Available, provided the item still exists (the item cascade calls
// this after the item row is already gone).
func archiveLoan(tx *gorm.DB, loan *models.Loan, deleteTime time.Time, note string) (*models.ArchiveLoan, error) {
	archive := models.ArchiveLoan{
		ID:          loan.ID,
		ItemID:      loan.ItemID,
		BorrowerID:  loan.BorrowerID,
		ApproverID:  loan.ApproverID,
		LoanDate:    loan.LoanDate,
		ReturnDate:  loan.ReturnDate,
		DeleteTime:  deleteTime,
		ArchiveNote: note,
	}
	if err := tx.Create(&archive).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&models.Loan{}, loan.ID).Error; err != nil {
		return nil, err
	}

	var itemCount int64
	if err := tx.Model(&models.Item{}).Where("id = ?", loan.ItemID).Count(&itemCount).Error; err != nil {
		return nil, err
	}
	if itemCount > 0 {
		if err := setItemStatus(tx, loan.ItemID, models.StatusNameAvailable, nil); err != nil {
			return nil, err
		}
	}
	return &archive, nil
}
