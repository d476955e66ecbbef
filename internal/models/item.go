package models

import "time"

type ItemType struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"not null"`
	ItemGroups []ItemGroup `json:"item_groups,omitempty"`
	Presets    []Preset    `json:"presets,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type ItemGroup struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ModelName      string    `json:"model_name" gorm:"not null"`
	ItemTypeID     uint      `json:"item_type_id" gorm:"not null"`
	ItemType       *ItemType `json:"item_type,omitempty"`
	Price          float64   `json:"price"`
	Manufacturer   string    `json:"manufacturer"`
	WarrantyPeriod int       `json:"warranty_period"` // months
	Quantity       int       `json:"quantity"`
	Items          []Item    `json:"items,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Item struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	ItemGroupID     uint            `json:"item_group_id" gorm:"not null"`
	ItemGroup       *ItemGroup      `json:"item_group,omitempty"`
	RoomID          uint            `json:"room_id" gorm:"not null"`
	Room            *Room           `json:"room,omitempty"`
	SerialNumber    string          `json:"serial_number" gorm:"not null"`
	ItemImageURL    *string         `json:"item_image_url"`
	ItemImageInfo   *string         `json:"item_image_info"`
	StatusHistories []StatusHistory `json:"status_histories,omitempty"`
	// At most one loan with a null return date exists per item.
	Loans     []Loan    `json:"loans,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
