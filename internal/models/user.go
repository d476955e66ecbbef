package models

import "time"

type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role names understood by the authorization middleware.
const (
	RoleAdmin      = "Admin"
	RoleInstructor = "Instruktør"
	RoleOperations = "Drift"
	RoleStudent    = "Elev"
)

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	// EncryptedEmail holds the AES-GCM ciphertext; plaintext never hits the
	// database. EmailFingerprint is a deterministic digest used for lookups.
	EncryptedEmail   string    `json:"-" gorm:"not null"`
	EmailFingerprint string    `json:"-" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"`
	RoleID           uint      `json:"role_id" gorm:"not null"`
	Role             *Role     `json:"role,omitempty"`
	TwoFactorSecret  *string   `json:"-"`
	TwoFactorEnabled bool      `json:"two_factor_enabled" gorm:"default:false"`
	Loans            []Loan    `json:"loans,omitempty" gorm:"foreignKey:BorrowerID"`
	Requests         []Request `json:"requests,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
