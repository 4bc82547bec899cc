package travelpackage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packageModel "travel-booking/models/travelpackage"
	"travel-booking/services/travelpackage"
	packageTypes "travel-booking/types/travelpackage"
)

// fakePackageRepo is a hand-written in-memory double for the package
// repository contract.
type fakePackageRepo struct {
	nextID   uint
	packages map[uint]*packageModel.TravelPackage
}

var _ travelpackage.Repository = (*fakePackageRepo)(nil)

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[uint]*packageModel.TravelPackage)}
}

func (f *fakePackageRepo) ByID(ctx context.Context, id uint) (*packageModel.TravelPackage, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, nil
	}
	copied := *pkg
	return &copied, nil
}

func (f *fakePackageRepo) All(ctx context.Context) ([]packageModel.TravelPackage, error) {
	out := make([]packageModel.TravelPackage, 0, len(f.packages))
	for _, pkg := range f.packages {
		out = append(out, *pkg)
	}
	return out, nil
}

func (f *fakePackageRepo) Active(ctx context.Context) ([]packageModel.TravelPackage, error) {
	var out []packageModel.TravelPackage
	for _, pkg := range f.packages {
		if pkg.IsActive && pkg.StartDate.After(time.Now()) {
			out = append(out, *pkg)
		}
	}
	return out, nil
}

func (f *fakePackageRepo) Search(ctx context.Context, q packageTypes.SearchQuery) ([]packageModel.TravelPackage, error) {
	var out []packageModel.TravelPackage
	for _, pkg := range f.packages {
		if !pkg.IsActive {
			continue
		}
		if q.MinPrice != nil && pkg.Price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && pkg.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		out = append(out, *pkg)
	}
	return out, nil
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *packageModel.TravelPackage) error {
	f.nextID++
	pkg.ID = f.nextID
	copied := *pkg
	f.packages[pkg.ID] = &copied
	return nil
}

// Update mirrors the single-statement write of the real repository: the slot
// counter is re-derived from the stored row's booked count at write time,
// not copied from the caller's struct.
func (f *fakePackageRepo) Update(ctx context.Context, pkg *packageModel.TravelPackage) error {
	stored, ok := f.packages[pkg.ID]
	if !ok {
		return nil
	}
	booked := stored.MaxCapacity - stored.AvailableSlots
	available := pkg.MaxCapacity - booked
	if available < 0 {
		available = 0
	}
	if available > pkg.MaxCapacity {
		available = pkg.MaxCapacity
	}
	copied := *pkg
	copied.AvailableSlots = available
	f.packages[pkg.ID] = &copied
	return nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := f.packages[id]; !ok {
		return false, nil
	}
	delete(f.packages, id)
	return true, nil
}

func createRequest() packageTypes.PackageCreateRequest {
	return packageTypes.PackageCreateRequest{
		Title:       "Alpine Trek",
		Description: "A week in the Alps",
		Destination: "Switzerland",
		Price:       decimal.RequireFromString("1499.00"),
		Duration:    7,
		StartDate:   time.Now().Add(60 * 24 * time.Hour),
		EndDate:     time.Now().Add(67 * 24 * time.Hour),
		MaxCapacity: 12,
	}
}

func updateRequestFrom(pkg *packageModel.TravelPackage) packageTypes.PackageUpdateRequest {
	return packageTypes.PackageUpdateRequest{
		Title:       pkg.Title,
		Description: pkg.Description,
		Destination: pkg.Destination,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		StartDate:   pkg.StartDate,
		EndDate:     pkg.EndDate,
		MaxCapacity: pkg.MaxCapacity,
		IsActive:    pkg.IsActive,
	}
}

func TestCreateStartsFullyAvailable(t *testing.T) {
	svc := travelpackage.NewService(newFakePackageRepo())

	pkg, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, 12, pkg.MaxCapacity)
	assert.Equal(t, 12, pkg.AvailableSlots)
	assert.True(t, pkg.IsActive)
}

func TestUpdateRederivesAvailableSlotsFromBookedCount(t *testing.T) {
	repo := newFakePackageRepo()
	svc := travelpackage.NewService(repo)
	ctx := context.Background()

	pkg, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	// Simulate 5 booked travelers.
	repo.packages[pkg.ID].AvailableSlots = 7

	// Capacity grows to 20: available must become 20 - 5 booked = 15.
	req := updateRequestFrom(repo.packages[pkg.ID])
	req.MaxCapacity = 20
	updated, err := svc.Update(ctx, pkg.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.AvailableSlots)

	// Capacity shrinks below the booked count: available clamps to zero.
	req.MaxCapacity = 3
	updated, err = svc.Update(ctx, pkg.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.AvailableSlots)
	assert.Equal(t, 3, updated.MaxCapacity)
}

// racingBookingRepo lets a booking land between the service's read and the
// repository write during an admin edit.
type racingBookingRepo struct {
	*fakePackageRepo
	beforeUpdate func()
}

func (r *racingBookingRepo) Update(ctx context.Context, pkg *packageModel.TravelPackage) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	return r.fakePackageRepo.Update(ctx, pkg)
}

func TestUpdateDoesNotClobberConcurrentBooking(t *testing.T) {
	repo := newFakePackageRepo()
	racing := &racingBookingRepo{fakePackageRepo: repo}
	svc := travelpackage.NewService(racing)
	ctx := context.Background()

	pkg, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	require.Equal(t, 12, pkg.AvailableSlots)

	// A customer books 5 travelers after the admin edit read the row but
	// before it writes.
	racing.beforeUpdate = func() {
		racing.beforeUpdate = nil
		repo.packages[pkg.ID].AvailableSlots -= 5
	}

	req := updateRequestFrom(pkg)
	req.MaxCapacity = 20
	updated, err := svc.Update(ctx, pkg.ID, req)
	require.NoError(t, err)

	// 5 booked at write time: available is 20 - 5, not a resurrected 20.
	assert.Equal(t, 15, updated.AvailableSlots)
	assert.Equal(t, 20, updated.MaxCapacity)
}

func TestUpdateUnknownPackage(t *testing.T) {
	svc := travelpackage.NewService(newFakePackageRepo())

	_, err := svc.Update(context.Background(), 99, packageTypes.PackageUpdateRequest{
		Title: "x", Destination: "y", MaxCapacity: 1,
		Price:   decimal.Zero,
		EndDate: time.Now(),
	})
	assert.ErrorIs(t, err, travelpackage.ErrNotFound)
}

func TestGetAndDelete(t *testing.T) {
	svc := travelpackage.NewService(newFakePackageRepo())
	ctx := context.Background()

	pkg, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, pkg.ID))
	assert.ErrorIs(t, svc.Delete(ctx, pkg.ID), travelpackage.ErrNotFound)

	_, err = svc.Get(ctx, pkg.ID)
	assert.ErrorIs(t, err, travelpackage.ErrNotFound)
}
