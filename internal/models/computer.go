package models

import "time"

type PartType struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"not null"`
	PartGroups []PartGroup `json:"part_groups,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type PartGroup struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	PartTypeID   uint           `json:"part_type_id" gorm:"not null"`
	PartType     *PartType      `json:"part_type,omitempty"`
	ModelName    string         `json:"model_name" gorm:"not null"`
	Manufacturer string         `json:"manufacturer"`
	Price        float64        `json:"price"`
	Quantity     int            `json:"quantity"`
	Parts        []ComputerPart `json:"parts,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type ComputerPart struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	PartGroupID  uint       `json:"part_group_id" gorm:"not null"`
	PartGroup    *PartGroup `json:"part_group,omitempty"`
	SerialNumber string     `json:"serial_number" gorm:"not null"`
	// Nil while the part sits on the shelf.
	ComputerID *uint     `json:"computer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Computer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ItemID    uint           `json:"item_id" gorm:"not null;uniqueIndex"`
	Item      *Item          `json:"item,omitempty"`
	Parts     []ComputerPart `json:"parts,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
