// Package travelpackage implements admin package management. Capacity edits
// re-derive the available slot counter from the booked count instead of
// trusting a client-supplied value, so the inventory invariant survives
// admin updates.
package travelpackage

import (
	"context"
	"errors"
	"fmt"

	"travel-booking/models/travelpackage"
	packageTypes "travel-booking/types/travelpackage"
)

var ErrNotFound = errors.New("travel package not found")

// Repository is the persistence contract for packages. Missing rows are
// reported as (nil, nil). Update must re-derive available_slots from the
// stored booked count and the new capacity atomically at write time; the
// counter is never written from a value the caller read earlier.
type Repository interface {
	ByID(ctx context.Context, id uint) (*travelpackage.TravelPackage, error)
	All(ctx context.Context) ([]travelpackage.TravelPackage, error)
	Active(ctx context.Context) ([]travelpackage.TravelPackage, error)
	Search(ctx context.Context, q packageTypes.SearchQuery) ([]travelpackage.TravelPackage, error)
	Create(ctx context.Context, pkg *travelpackage.TravelPackage) error
	Update(ctx context.Context, pkg *travelpackage.TravelPackage) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type Service struct {
	packages Repository
}

func NewService(packages Repository) *Service {
	return &Service{packages: packages}
}

// Create persists a new package. A new package starts fully available.
func (s *Service) Create(ctx context.Context, in packageTypes.PackageCreateRequest) (*travelpackage.TravelPackage, error) {
	pkg := &travelpackage.TravelPackage{
		Title:          in.Title,
		Description:    in.Description,
		Destination:    in.Destination,
		Price:          in.Price,
		Duration:       in.Duration,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		MaxCapacity:    in.MaxCapacity,
		AvailableSlots: in.MaxCapacity,
		IsActive:       true,
	}
	if in.ImageUrl != "" {
		url := in.ImageUrl
		pkg.ImageUrl = &url
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

// Update applies an admin edit. The available slot counter is not taken
// from the request and not computed here from the earlier read: the
// repository re-derives it at write time from the booked count and the new
// capacity, clamped to [0, max], so bookings made while the admin edits are
// never clobbered. Price edits do not touch existing bookings; their totals
// were frozen at creation.
func (s *Service) Update(ctx context.Context, id uint, in packageTypes.PackageUpdateRequest) (*travelpackage.TravelPackage, error) {
	pkg, err := s.packages.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if pkg == nil {
		return nil, ErrNotFound
	}

	pkg.Title = in.Title
	pkg.Description = in.Description
	pkg.Destination = in.Destination
	pkg.Price = in.Price
	pkg.Duration = in.Duration
	pkg.StartDate = in.StartDate
	pkg.EndDate = in.EndDate
	pkg.MaxCapacity = in.MaxCapacity
	pkg.IsActive = in.IsActive
	if in.ImageUrl != "" {
		url := in.ImageUrl
		pkg.ImageUrl = &url
	} else {
		pkg.ImageUrl = nil
	}

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}

	updated, err := s.packages.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload package: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*travelpackage.TravelPackage, error) {
	pkg, err := s.packages.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if pkg == nil {
		return nil, ErrNotFound
	}
	return pkg, nil
}

func (s *Service) List(ctx context.Context) ([]travelpackage.TravelPackage, error) {
	return s.packages.All(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]travelpackage.TravelPackage, error) {
	return s.packages.Active(ctx)
}

func (s *Service) Search(ctx context.Context, q packageTypes.SearchQuery) ([]travelpackage.TravelPackage, error) {
	return s.packages.Search(ctx, q)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.packages.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
