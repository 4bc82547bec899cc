package routes

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travel-booking/controllers/auth"
	"travel-booking/controllers/booking"
	"travel-booking/controllers/server"
	"travel-booking/controllers/travelpackage"
	"travel-booking/controllers/user"
	"travel-booking/logger"
	"travel-booking/middleware"
	userModel "travel-booking/models/user"
	"travel-booking/repository"
	authService "travel-booking/services/auth"
	bookingService "travel-booking/services/booking"
	packageService "travel-booking/services/travelpackage"
)

func tokenExpiry() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	asyncLogger := logger.NewAsyncLogger(db)

	auths := authService.NewService(userRepo, os.Getenv("JWT_SECRET"), tokenExpiry())
	packages := packageService.NewService(packageRepo)
	bookings := bookingService.NewService(bookingRepo, packageRepo)

	authController := auth.NewAuthController(auths, asyncLogger)
	packageController := travelpackage.NewPackageController(packages, asyncLogger)
	bookingController := booking.NewBookingController(bookings, asyncLogger)
	userController := user.NewUserController(userRepo)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/health", server.Health)

	api := app.Group("/api")

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authController.Register)
	authGroup.Post("/login", authController.Login)
	authGroup.Post("/logout", middleware.Protected(), authController.Logout)
	authGroup.Get("/profile", middleware.Protected(), userController.Profile)

	/*=============================================================================
	| Travel Package Routes
	===============================================================================*/
	packageGroup := api.Group("/packages")
	packageGroup.Get("/", packageController.Index)
	packageGroup.Get("/active", packageController.Active)
	packageGroup.Get("/search", packageController.Search)
	packageGroup.Get("/:id", packageController.Show)
	packageGroup.Post("/", middleware.Protected(userModel.RoleAdmin), packageController.Store)
	packageGroup.Put("/:id", middleware.Protected(userModel.RoleAdmin), packageController.Update)
	packageGroup.Delete("/:id", middleware.Protected(userModel.RoleAdmin), packageController.Destroy)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/", middleware.Protected(), bookingController.Store)
	bookingGroup.Get("/", middleware.Protected(userModel.RoleAdmin), bookingController.Index)
	bookingGroup.Get("/my-bookings", middleware.Protected(), bookingController.MyBookings)
	bookingGroup.Get("/:id", middleware.Protected(), bookingController.Show)
	bookingGroup.Put("/:id/status", middleware.Protected(userModel.RoleAdmin), bookingController.UpdateStatus)
	bookingGroup.Put("/:id/cancel", middleware.Protected(), bookingController.Cancel)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	userGroup := api.Group("/users")
	userGroup.Get("/", middleware.Protected(userModel.RoleAdmin), userController.Index)
	userGroup.Get("/:id", middleware.Protected(), userController.Show)
	userGroup.Put("/:id", middleware.Protected(userModel.RoleAdmin), userController.Update)
	userGroup.Delete("/:id", middleware.Protected(userModel.RoleAdmin), userController.Destroy)
}
