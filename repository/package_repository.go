package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"travel-booking/models/travelpackage"
	packageTypes "travel-booking/types/travelpackage"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// ByID returns the package or (nil, nil) when it does not exist.
func (r *PackageRepository) ByID(ctx context.Context, id uint) (*travelpackage.TravelPackage, error) {
	var pkg travelpackage.TravelPackage
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) All(ctx context.Context) ([]travelpackage.TravelPackage, error) {
	var packages []travelpackage.TravelPackage
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("start_date ASC").Find(&packages).Error
	return packages, err
}

// Active returns bookable packages: active flag set and departure still in
// the future.
func (r *PackageRepository) Active(ctx context.Context) ([]travelpackage.TravelPackage, error) {
	var packages []travelpackage.TravelPackage
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date > ? AND deleted_at IS NULL", true, time.Now()).
		Order("start_date ASC").
		Find(&packages).Error
	return packages, err
}

// Search filters active packages by destination substring and price bounds.
func (r *PackageRepository) Search(ctx context.Context, q packageTypes.SearchQuery) ([]travelpackage.TravelPackage, error) {
	query := r.db.WithContext(ctx).Where("is_active = ? AND deleted_at IS NULL", true)

	if q.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+q.Destination+"%")
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", q.MaxPrice)
	}

	var packages []travelpackage.TravelPackage
	err := query.Order("start_date ASC").Find(&packages).Error
	return packages, err
}

func (r *PackageRepository) Create(ctx context.Context, pkg *travelpackage.TravelPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

// Update persists an admin edit in one statement. The slot counter is
// re-derived inside the UPDATE from the row's booked count at write time,
// clamped to [0, new capacity]; every column expression reads the pre-update
// row, so a booking landing after the caller's read is still counted.
func (r *PackageRepository) Update(ctx context.Context, pkg *travelpackage.TravelPackage) error {
	return r.db.WithContext(ctx).
		Model(&travelpackage.TravelPackage{}).
		Where("id = ? AND deleted_at IS NULL", pkg.ID).
		Updates(map[string]interface{}{
			"title":        pkg.Title,
			"description":  pkg.Description,
			"destination":  pkg.Destination,
			"price":        pkg.Price,
			"duration":     pkg.Duration,
			"start_date":   pkg.StartDate,
			"end_date":     pkg.EndDate,
			"image_url":    pkg.ImageUrl,
			"is_active":    pkg.IsActive,
			"max_capacity": pkg.MaxCapacity,
			"available_slots": gorm.Expr(
				"GREATEST(0, LEAST(?, ? - (max_capacity - available_slots)))",
				pkg.MaxCapacity, pkg.MaxCapacity),
		}).Error
}

// Delete soft-deletes the package. Reports false when it did not exist.
func (r *PackageRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&travelpackage.TravelPackage{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
