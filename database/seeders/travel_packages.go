package seeders

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"travel-booking/models/travelpackage"
)

// SeedTravelPackages loads a starter catalogue when the table is empty.
func SeedTravelPackages(db *gorm.DB) {
	log.Printf("🔍 Checking travel package catalogue...")

	var count int64
	if err := db.Model(&travelpackage.TravelPackage{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count travel packages: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Travel packages already present, nothing to seed")
		return
	}

	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)

	packages := []travelpackage.TravelPackage{
		{
			Title:          "Bali Beach Escape",
			Description:    "Seven nights across Seminyak and Ubud with guided temple visits.",
			Destination:    "Bali, Indonesia",
			Price:          decimal.NewFromFloat(1299.00),
			Duration:       8,
			StartDate:      base,
			EndDate:        base.AddDate(0, 0, 7),
			MaxCapacity:    24,
			AvailableSlots: 24,
			IsActive:       true,
		},
		{
			Title:          "Swiss Alps Trek",
			Description:    "Guided hut-to-hut trekking in the Bernese Oberland.",
			Destination:    "Interlaken, Switzerland",
			Price:          decimal.NewFromFloat(2150.50),
			Duration:       6,
			StartDate:      base.AddDate(0, 0, 14),
			EndDate:        base.AddDate(0, 0, 19),
			MaxCapacity:    12,
			AvailableSlots: 12,
			IsActive:       true,
		},
		{
			Title:          "Kyoto Autumn Tour",
			Description:    "Temples, gardens and a ryokan stay at the height of foliage season.",
			Destination:    "Kyoto, Japan",
			Price:          decimal.NewFromFloat(1875.25),
			Duration:       10,
			StartDate:      base.AddDate(0, 2, 0),
			EndDate:        base.AddDate(0, 2, 9),
			MaxCapacity:    18,
			AvailableSlots: 18,
			IsActive:       true,
		},
		{
			Title:          "Patagonia Expedition",
			Description:    "Torres del Paine circuit with camp support and park permits included.",
			Destination:    "Puerto Natales, Chile",
			Price:          decimal.NewFromFloat(3420.00),
			Duration:       12,
			StartDate:      base.AddDate(0, 3, 0),
			EndDate:        base.AddDate(0, 3, 11),
			MaxCapacity:    10,
			AvailableSlots: 10,
			IsActive:       true,
		},
	}

	if err := db.Create(&packages).Error; err != nil {
		log.Printf("❌ Failed to seed travel packages: %v", err)
		return
	}

	log.Printf("✅ Seeded %d travel packages", len(packages))
}
