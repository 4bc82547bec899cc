package travelpackage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PackageCreateRequest is the admin payload for creating a travel package.
type PackageCreateRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"omitempty"`
	Destination string          `json:"destination" validate:"required,min=1,max=255"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Duration    int             `json:"duration" validate:"required,min=1"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
	MaxCapacity int             `json:"max_capacity" validate:"required,min=1"`
	ImageUrl    string          `json:"image_url" validate:"omitempty,max=2048"`
}

func (p PackageCreateRequest) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if p.MaxCapacity < 1 {
		return fmt.Errorf("maxCapacity must be at least 1")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("endDate must not be before startDate")
	}
	return nil
}

// PackageUpdateRequest is the admin payload for updating a travel package.
type PackageUpdateRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"omitempty"`
	Destination string          `json:"destination" validate:"required,min=1,max=255"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Duration    int             `json:"duration" validate:"required,min=1"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
	MaxCapacity int             `json:"max_capacity" validate:"required,min=1"`
	ImageUrl    string          `json:"image_url" validate:"omitempty,max=2048"`
	IsActive    bool            `json:"is_active"`
}

func (p PackageUpdateRequest) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if p.MaxCapacity < 1 {
		return fmt.Errorf("maxCapacity must be at least 1")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("endDate must not be before startDate")
	}
	return nil
}

// SearchQuery carries the optional package search filters.
type SearchQuery struct {
	Destination string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}
