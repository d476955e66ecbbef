package models

import "time"

type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Road      string    `json:"road" gorm:"not null"`
	Number    string    `json:"number" gorm:"not null"`
	City      string    `json:"city" gorm:"not null"`
	ZipCode   string    `json:"zip_code" gorm:"not null"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Building struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	AddressID uint      `json:"address_id" gorm:"not null"`
	Address   *Address  `json:"address,omitempty"`
	Rooms     []Room    `json:"rooms,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomNumber string    `json:"room_number" gorm:"not null"`
	BuildingID uint      `json:"building_id" gorm:"not null"`
	Building   *Building `json:"building,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
