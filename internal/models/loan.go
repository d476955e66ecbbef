package models

import "time"

type Loan struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	ItemID     uint       `json:"item_id" gorm:"not null;index"`
	Item       *Item      `json:"item,omitempty"`
	BorrowerID uint       `json:"borrower_id" gorm:"not null;index"`
	Borrower   *User      `json:"borrower,omitempty" gorm:"foreignKey:BorrowerID"`
	ApproverID uint       `json:"approver_id" gorm:"not null"`
	Approver   *User      `json:"approver,omitempty" gorm:"foreignKey:ApproverID"`
	LoanDate   time.Time  `json:"loan_date" gorm:"not null"`
	ReturnDate *time.Time `json:"return_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
