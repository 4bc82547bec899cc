package seeders

import (
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travel-booking/models/user"
)

// SeedAdminUser creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD if no admin exists yet.
func SeedAdminUser(db *gorm.DB) {
	log.Printf("🔍 Checking admin account...")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("⚠️  ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&user.User{}).Where("role = ? AND deleted_at IS NULL", user.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check existing admins: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Admin account already present, nothing to seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := user.User{
		Uuid:         uuid.NewString(),
		Email:        email,
		FirstName:    "System",
		LastName:     "Administrator",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to create admin account: %v", err)
		return
	}

	log.Printf("✅ Admin account created: %s", email)
}
