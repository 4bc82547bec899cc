package booking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	bookingModel "travel-booking/models/booking"
)

// BookingCreateRequest is the payload for creating a booking.
type BookingCreateRequest struct {
	TravelPackageID   uint   `json:"travel_package_id" validate:"required"`
	NumberOfTravelers int    `json:"number_of_travelers" validate:"required,min=1"`
	SpecialRequests   string `json:"special_requests" validate:"omitempty"`
}

func (b BookingCreateRequest) Validate() error {
	if b.TravelPackageID == 0 {
		return fmt.Errorf("travelPackageId is required")
	}
	if b.NumberOfTravelers < 1 {
		return fmt.Errorf("numberOfTravelers must be at least 1")
	}
	return nil
}

// UpdateStatusRequest is the admin payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r UpdateStatusRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}

// BookingResponse is the denormalized booking shape returned to clients.
type BookingResponse struct {
	ID                uint            `json:"id"`
	UserID            uint            `json:"user_id"`
	UserName          string          `json:"user_name"`
	TravelPackageID   uint            `json:"travel_package_id"`
	PackageTitle      string          `json:"package_title"`
	BookingDate       time.Time       `json:"booking_date"`
	NumberOfTravelers int             `json:"number_of_travelers"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	Status            string          `json:"status"`
	SpecialRequests   *string         `json:"special_requests,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ToResponse maps a booking model, with its preloaded associations, to the
// response shape.
func ToResponse(b *bookingModel.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		UserID:            b.UserID,
		UserName:          b.User.FullName(),
		TravelPackageID:   b.TravelPackageID,
		PackageTitle:      b.TravelPackage.Title,
		BookingDate:       b.BookingDate,
		NumberOfTravelers: b.NumberOfTravelers,
		TotalPrice:        b.TotalPrice,
		Status:            b.Status.String(),
		SpecialRequests:   b.SpecialRequests,
		CreatedAt:         b.CreatedAt,
	}
}

// ToResponseList maps a slice of bookings.
func ToResponseList(bookings []bookingModel.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, ToResponse(&bookings[i]))
	}
	return responses
}
