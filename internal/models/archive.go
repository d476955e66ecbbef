package models

import "time"

// Archive rows are write-once. Archiving moves a live row here together with a
// delete timestamp and the caller's note; the live row is removed in the same
// transaction, so an id never exists on both sides at once.

type ArchiveItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ItemGroupID   uint    `json:"item_group_id" gorm:"not null"`
	RoomID        uint    `json:"room_id" gorm:"not null"`
	SerialNumber  string  `json:"serial_number" gorm:"not null"`
	ItemImageURL  *string `json:"item_image_url"`
	ItemImageInfo *string `json:"item_image_info"`

	StatusHistories []ArchiveStatusHistory `json:"status_histories,omitempty" gorm:"foreignKey:ArchiveItemID"`

	DeleteTime  time.Time `json:"delete_time" gorm:"not null"`
	ArchiveNote string    `json:"archive_note"`
}

type ArchiveStatusHistory struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ArchiveItemID    uint      `json:"archive_item_id" gorm:"not null;index"`
	StatusID         uint      `json:"status_id" gorm:"not null"`
	StatusName       string    `json:"status_name"`
	StatusUpdateDate time.Time `json:"status_update_date" gorm:"not null"`
	Note             *string   `json:"note"`
}

type ArchiveItemGroup struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	ModelName      string  `json:"model_name" gorm:"not null"`
	ItemTypeID     uint    `json:"item_type_id" gorm:"not null"`
	Price          float64 `json:"price"`
	Manufacturer   string  `json:"manufacturer"`
	WarrantyPeriod int     `json:"warranty_period"`
	Quantity       int     `json:"quantity"`

	DeleteTime  time.Time `json:"delete_time" gorm:"not null"`
	ArchiveNote string    `json:"archive_note"`
}

type ArchiveItemType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`

	DeleteTime  time.Time `json:"delete_time" gorm:"not null"`
	ArchiveNote string    `json:"archive_note"`
}

type ArchiveLoan struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	ItemID     uint       `json:"item_id" gorm:"not null"`
	BorrowerID uint       `json:"borrower_id" gorm:"not null"`
	ApproverID uint       `json:"approver_id" gorm:"not null"`
	LoanDate   time.Time  `json:"loan_date" gorm:"not null"`
	ReturnDate *time.Time `json:"return_date"`

	DeleteTime  time.Time `json:"delete_time" gorm:"not null"`
	ArchiveNote string    `json:"archive_note"`
}

type ArchiveRequest struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null"`
	ItemName    string        `json:"item_name" gorm:"not null"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status"`

	DeleteTime  time.Time `json:"delete_time" gorm:"not null"`
	ArchiveNote string    `json:"archive_note"`
}

type ArchiveUser struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	FirstName        string `json:"first_name" gorm:"not null"`
	LastName         string `json:"last_name" gorm:"not null"`
	EncryptedEmail   string `json:"-" gorm:"not null"`
	EmailFingerprint string `json:"-" gorm:"not null"`
	RoleID           uint   `json:"role_id" gorm:"not null"`

	DeleteTime  time.Time `json:"delete_time" gorm:"not null"`
	ArchiveNote string    `json:"archive_note"`
}
