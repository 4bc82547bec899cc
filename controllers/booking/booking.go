package booking

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"travel-booking/logger"
	"travel-booking/models/user"
	bookingService "travel-booking/services/booking"
	"travel-booking/types"
	bookingTypes "travel-booking/types/booking"
	"travel-booking/utils"
)

// BookingController handles booking-related HTTP requests and translates the
// allocation service's typed failures into response codes.
type BookingController struct {
	service        *bookingService.Service
	loggerInstance *logger.AsyncLogger
}

func NewBookingController(service *bookingService.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{service: service, loggerInstance: asyncLogger}
}

// Store creates a new booking for the authenticated customer.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	created, err := bc.service.Create(c.Context(), userID, bookingService.CreateInput{
		TravelPackageID:   req.TravelPackageID,
		NumberOfTravelers: req.NumberOfTravelers,
		SpecialRequests:   req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrPackageNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Travel package not found",
			})
		case errors.Is(err, bookingService.ErrInsufficientCapacity):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Not enough available slots for the requested travelers",
			})
		case errors.Is(err, bookingService.ErrInvalidTravelers):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Number of travelers must be at least 1",
			})
		}
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create booking",
		})
	}

	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusCreated))
	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", created.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    bookingTypes.ToResponse(created),
	})
}

// Index returns every booking. Admin only.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	bookings, err := bc.service.ListAll(c.Context())
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    bookingTypes.ToResponseList(bookings),
	})
}

// MyBookings returns the authenticated user's bookings.
func (bc *BookingController) MyBookings(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	bookings, err := bc.service.ListForUser(c.Context(), userID)
	if err != nil {
		logger.Error("Failed to list user bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    bookingTypes.ToResponseList(bookings),
	})
}

// Show returns a single booking. Customers may only see their own bookings;
// admins may see any.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	b, err := bc.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		}
		logger.Error("Failed to load booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load booking",
		})
	}

	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}
	if b.UserID != userID && utils.RoleFromContext(c) != user.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "You may only view your own bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking fetched successfully",
		Data:    bookingTypes.ToResponse(b),
	})
}

// UpdateStatus applies an administrative status transition.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	var req bookingTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	updated, err := bc.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		case errors.Is(err, bookingService.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Unknown booking status",
			})
		case errors.Is(err, bookingService.ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Illegal status transition",
			})
		case errors.Is(err, bookingService.ErrAlreadyCancelled):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Booking is already cancelled",
			})
		case errors.Is(err, bookingService.ErrStatusConflict):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Booking status changed concurrently, reload and retry",
			})
		}
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
		})
	}

	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusOK))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated",
		Data:    bookingTypes.ToResponse(updated),
	})
}

// Cancel is the customer self-cancel path. It restores the package's slots.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	if err := bc.service.Cancel(c.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		case errors.Is(err, bookingService.ErrAlreadyCancelled):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Booking is already cancelled",
			})
		}
		logger.Error("Failed to cancel booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to cancel booking",
		})
	}

	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusOK))
	logger.Success(fmt.Sprintf("Booking %d cancelled", id))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
	})
}
