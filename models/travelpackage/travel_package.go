package travelpackage

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelPackage is a purchasable travel offering with a fixed date range,
// price and capacity. AvailableSlots is the only shared mutable counter in
// the system and must stay within [0, MaxCapacity]; it is only mutated
// through the conditional updates in the repository layer.
type TravelPackage struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string          `gorm:"type:varchar(255);not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Destination    string          `gorm:"type:varchar(255);not null" json:"destination"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration       int             `gorm:"type:int;not null" json:"duration"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        time.Time       `gorm:"not null" json:"end_date"`
	MaxCapacity    int             `gorm:"type:int;not null" json:"max_capacity"`
	AvailableSlots int             `gorm:"type:int;not null" json:"available_slots"`
	ImageUrl       *string         `gorm:"type:varchar(2048)" json:"image_url,omitempty"`
	IsActive       bool            `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
