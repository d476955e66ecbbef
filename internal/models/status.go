package models

import (
	"strings"
	"time"
	"unicode"
)

// StatusKind classifies a status for loan transitions and dashboard buckets,
// replacing keyword matching on display names.
type StatusKind string

const (
	StatusKindAvailable StatusKind = "available"
	StatusKindBorrowed  StatusKind = "borrowed"
	StatusKindDefect    StatusKind = "defect"
	StatusKindOther     StatusKind = "other"
)

// Canonical status names used by the loan lifecycle.
const (
	StatusNameAvailable = "Virker"
	StatusNameBorrowed  = "Udlånt"
)

type Status struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	// NormalizedName is the lookup key: lowercased, all whitespace stripped.
	NormalizedName string     `json:"-" gorm:"uniqueIndex;not null"`
	Kind           StatusKind `json:"kind" gorm:"not null;default:'other'"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type StatusHistory struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ItemID           uint      `json:"item_id" gorm:"not null;index"`
	StatusID         uint      `json:"status_id" gorm:"not null"`
	Status           *Status   `json:"status,omitempty"`
	StatusUpdateDate time.Time `json:"status_update_date" gorm:"not null;index"`
	Note             *string   `json:"note"`
	CreatedAt        time.Time `json:"created_at"`
}

// NormalizeStatusName lowercases a status name and strips all whitespace so
// "Udlånt", "udlånt" and " UDLÅNT " resolve to the same row.
func NormalizeStatusName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var defectKeywords = []string{"defekt", "virkerikke", "istykker", "broken", "damaged"}

// InferStatusKind maps a status name onto a kind once, at creation time.
func InferStatusKind(name string) StatusKind {
	normalized := NormalizeStatusName(name)
	switch normalized {
	case NormalizeStatusName(StatusNameAvailable):
		return StatusKindAvailable
	case NormalizeStatusName(StatusNameBorrowed):
		return StatusKindBorrowed
	}
	for _, kw := range defectKeywords {
		if strings.Contains(normalized, kw) {
			return StatusKindDefect
		}
	}
	return StatusKindOther
}
