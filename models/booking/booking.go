package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"travel-booking/models/travelpackage"
	"travel-booking/models/user"
)

// Booking represents a customer's reservation against a travel package.
// TotalPrice is computed when the booking is created and never recomputed,
// even if the package price changes later.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	TravelPackageID uint                        `gorm:"not null;index" json:"travel_package_id"`
	TravelPackage   travelpackage.TravelPackage `gorm:"foreignKey:TravelPackageID" json:"travel_package"`

	BookingDate       time.Time       `gorm:"not null" json:"booking_date"`
	NumberOfTravelers int             `gorm:"type:int;not null" json:"number_of_travelers"`
	TotalPrice        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status            Status          `gorm:"type:varchar(50);not null" json:"status"`
	SpecialRequests   *string         `gorm:"type:text" json:"special_requests,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
