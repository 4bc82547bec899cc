// Package booking implements the booking allocation core: it validates
// availability, reserves and restores package slots, freezes the total price
// at creation time, and gates status transitions. Slot arithmetic is never a
// plain read-then-write; the repositories apply it as conditional updates so
// concurrent requests cannot oversell a package or restore slots twice.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	bookingModel "travel-booking/models/booking"
	"travel-booking/models/travelpackage"
)

var (
	ErrPackageNotFound      = errors.New("travel package not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInsufficientCapacity = errors.New("not enough available slots")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrStatusConflict       = errors.New("booking status changed concurrently")
	ErrInvalidTravelers     = errors.New("number of travelers must be at least 1")
)

// PackageReader resolves travel packages for availability checks.
// A missing package is reported as (nil, nil).
type PackageReader interface {
	ByID(ctx context.Context, id uint) (*travelpackage.TravelPackage, error)
}

// BookingRepository is the persistence contract for bookings. Reserve and
// Cancel must be atomic: the booking write and the slot adjustment either
// both happen or neither does, and the slot guard is re-checked at write
// time. Missing rows are reported as (nil, nil).
type BookingRepository interface {
	ByID(ctx context.Context, id uint) (*bookingModel.Booking, error)
	ByIDForUser(ctx context.Context, id, userID uint) (*bookingModel.Booking, error)
	All(ctx context.Context) ([]bookingModel.Booking, error)
	AllForUser(ctx context.Context, userID uint) ([]bookingModel.Booking, error)

	// Reserve inserts b and decrements the package's available slots by
	// b.NumberOfTravelers in one transaction. It reports false, without
	// inserting, when the package no longer has enough slots.
	Reserve(ctx context.Context, b *bookingModel.Booking) (bool, error)

	// Cancel flips the booking to Cancelled and restores its traveler count
	// to the package in one transaction, provided the booking is not already
	// Cancelled. It reports whether the cancellation was applied.
	Cancel(ctx context.Context, b *bookingModel.Booking) (bool, error)

	// SetStatus updates the booking status without touching inventory. The
	// write is guarded on b.Status, the status the caller read; it reports
	// false when a concurrent transition changed the booking first.
	SetStatus(ctx context.Context, b *bookingModel.Booking, status bookingModel.Status) (bool, error)
}

// Service is the allocation service.
type Service struct {
	bookings BookingRepository
	packages PackageReader
}

func NewService(bookings BookingRepository, packages PackageReader) *Service {
	return &Service{bookings: bookings, packages: packages}
}

// CreateInput carries a customer's reservation request.
type CreateInput struct {
	TravelPackageID   uint
	NumberOfTravelers int
	SpecialRequests   string
}

// Create reserves slots on the package and persists a Pending booking. The
// total price is package price times traveler count, computed here and never
// recomputed. The availability check runs twice: a fast read-time check for
// an early failure, and the authoritative write-time guard inside Reserve.
func (s *Service) Create(ctx context.Context, userID uint, in CreateInput) (*bookingModel.Booking, error) {
	if in.NumberOfTravelers < 1 {
		return nil, ErrInvalidTravelers
	}

	pkg, err := s.packages.ByID(ctx, in.TravelPackageID)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	if pkg.AvailableSlots < in.NumberOfTravelers {
		return nil, ErrInsufficientCapacity
	}

	b := &bookingModel.Booking{
		UserID:            userID,
		TravelPackageID:   pkg.ID,
		BookingDate:       time.Now().UTC(),
		NumberOfTravelers: in.NumberOfTravelers,
		TotalPrice:        pkg.Price.Mul(decimal.NewFromInt(int64(in.NumberOfTravelers))),
		Status:            bookingModel.StatusPending,
	}
	if in.SpecialRequests != "" {
		requests := in.SpecialRequests
		b.SpecialRequests = &requests
	}

	applied, err := s.bookings.Reserve(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("reserve slots: %w", err)
	}
	if !applied {
		// Another request won the remaining slots between the read and the
		// write. Rejected at write time, inventory untouched.
		return nil, ErrInsufficientCapacity
	}

	created, err := s.bookings.ByID(ctx, b.ID)
	if err != nil {
		// The reservation is already persisted; the caller gets the read
		// failure rather than a booking with half its associations missing.
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	if created == nil {
		return b, nil
	}
	return created, nil
}

// Cancel is the customer self-cancel path. The booking must belong to
// userID. Cancelling an already-Cancelled booking returns ErrAlreadyCancelled
// and restores nothing; the guard runs under the same conditional write that
// flips the status, so two racing cancels restore the slots exactly once.
func (s *Service) Cancel(ctx context.Context, bookingID, userID uint) error {
	b, err := s.bookings.ByIDForUser(ctx, bookingID, userID)
	if err != nil {
		return fmt.Errorf("load booking: %w", err)
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if b.Status == bookingModel.StatusCancelled {
		return ErrAlreadyCancelled
	}

	applied, err := s.bookings.Cancel(ctx, b)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !applied {
		return ErrAlreadyCancelled
	}
	return nil
}

// UpdateStatus is the administrative transition path. Unknown status strings
// are rejected, the transition table is enforced, and setting the current
// status is a no-op success. A transition into Cancelled restores the
// package slots exactly once, same as the customer path. Every status write
// is guarded on the status this method read, so a concurrent transition
// fails the write instead of being overwritten.
func (s *Service) UpdateStatus(ctx context.Context, bookingID uint, rawStatus string) (*bookingModel.Booking, error) {
	target, err := bookingModel.ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.Status == target {
		return b, nil
	}
	if !b.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, target)
	}

	if target == bookingModel.StatusCancelled {
		applied, err := s.bookings.Cancel(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("cancel booking: %w", err)
		}
		if !applied {
			return nil, ErrAlreadyCancelled
		}
	} else {
		applied, err := s.bookings.SetStatus(ctx, b, target)
		if err != nil {
			return nil, fmt.Errorf("set status: %w", err)
		}
		if !applied {
			// The status moved between our read and the guarded write, so
			// the transition check no longer holds. Cancelled is terminal
			// and must not be overwritten.
			return nil, ErrStatusConflict
		}
	}

	updated, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}
	return updated, nil
}

// Get returns a single booking with its associations.
func (s *Service) Get(ctx context.Context, bookingID uint) (*bookingModel.Booking, error) {
	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// ListForUser returns the bookings owned by userID.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]bookingModel.Booking, error) {
	return s.bookings.AllForUser(ctx, userID)
}

// ListAll returns every booking. Admin only; the route layer enforces that.
func (s *Service) ListAll(ctx context.Context) ([]bookingModel.Booking, error) {
	return s.bookings.All(ctx)
}
