package user

import (
	"time"
)

// Role values carried in the JWT and checked by the middleware.
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// User represents an account that can authenticate and own bookings.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	FirstName    string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string `gorm:"type:varchar(255);not null" json:"last_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(50);not null;default:Customer" json:"role"`
	IsActive     bool   `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// FullName returns the display name used in booking responses.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
