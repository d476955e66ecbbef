package models

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

// Request is a user's free-text wish for equipment that is not (yet) in stock.
type Request struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	User        *User         `json:"user,omitempty"`
	ItemName    string        `json:"item_name" gorm:"not null"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
