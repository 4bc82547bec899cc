// Package repository contains the GORM-backed persistence layer. All slot
// arithmetic lives here as conditional UPDATEs so the check and the write
// happen in one statement; callers learn about a lost race from the affected
// row count, not from a stale read.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travel-booking/models/booking"
	"travel-booking/models/travelpackage"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ByID returns the booking with its user and package preloaded, or (nil, nil)
// when no such booking exists.
func (r *BookingRepository) ByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TravelPackage").
		First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ByIDForUser returns the booking only when it is owned by userID.
func (r *BookingRepository) ByIDForUser(ctx context.Context, id, userID uint) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TravelPackage").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) All(ctx context.Context) ([]booking.Booking, error) {
	var bookings []booking.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TravelPackage").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) AllForUser(ctx context.Context, userID uint) ([]booking.Booking, error) {
	var bookings []booking.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TravelPackage").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// Reserve decrements the package's available slots and inserts the booking
// in one transaction. The decrement only applies while enough slots remain;
// when the guard fails nothing is written and Reserve reports false.
func (r *BookingRepository) Reserve(ctx context.Context, b *booking.Booking) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&travelpackage.TravelPackage{}).
			Where("id = ? AND available_slots >= ?", b.TravelPackageID, b.NumberOfTravelers).
			UpdateColumn("available_slots", gorm.Expr("available_slots - ?", b.NumberOfTravelers))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

// Cancel flips the booking to Cancelled and restores its traveler count to
// the package. The status flip is guarded on the current status, so a
// booking can only be cancelled once; the restore is capped at the package's
// capacity in case the capacity shrank since the booking was made.
func (r *BookingRepository) Cancel(ctx context.Context, b *booking.Booking) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&booking.Booking{}).
			Where("id = ? AND status <> ?", b.ID, booking.StatusCancelled).
			Update("status", booking.StatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Model(&travelpackage.TravelPackage{}).
			Where("id = ?", b.TravelPackageID).
			UpdateColumn("available_slots",
				gorm.Expr("LEAST(available_slots + ?, max_capacity)", b.NumberOfTravelers)).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

// SetStatus updates the status column only, and only while the booking still
// holds the status the caller read; a concurrent transition makes the guard
// fail and SetStatus reports false. Inventory is untouched; the service
// routes every Cancelled transition through Cancel instead.
func (r *BookingRepository) SetStatus(ctx context.Context, b *booking.Booking, status booking.Status) (bool, error) {
	res := r.db.WithContext(ctx).Model(&booking.Booking{}).
		Where("id = ? AND status = ?", b.ID, b.Status).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
