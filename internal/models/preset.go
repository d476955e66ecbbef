package models

import "time"

// Preset names a bundle of part groups that make up a standard build for an
// item type, e.g. the default part list for a classroom workstation.
type Preset struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"not null"`
	ItemTypeID uint        `json:"item_type_id" gorm:"not null"`
	ItemType   *ItemType   `json:"item_type,omitempty"`
	PartGroups []PartGroup `json:"part_groups,omitempty" gorm:"many2many:preset_part_groups;"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
