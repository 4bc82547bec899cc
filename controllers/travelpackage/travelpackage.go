package travelpackage

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"travel-booking/logger"
	packageService "travel-booking/services/travelpackage"
	"travel-booking/types"
	packageTypes "travel-booking/types/travelpackage"
	"travel-booking/utils"
)

// PackageController handles travel package browsing and admin management.
type PackageController struct {
	service        *packageService.Service
	loggerInstance *logger.AsyncLogger
}

func NewPackageController(service *packageService.Service, asyncLogger *logger.AsyncLogger) *PackageController {
	return &PackageController{service: service, loggerInstance: asyncLogger}
}

// Index returns every package, including inactive ones.
func (pc *PackageController) Index(c *fiber.Ctx) error {
	packages, err := pc.service.List(c.Context())
	if err != nil {
		logger.Error("Failed to list packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list packages",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packages fetched successfully",
		Data:    packages,
	})
}

// Active returns bookable packages with a future departure.
func (pc *PackageController) Active(c *fiber.Ctx) error {
	packages, err := pc.service.ListActive(c.Context())
	if err != nil {
		logger.Error("Failed to list active packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list packages",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packages fetched successfully",
		Data:    packages,
	})
}

// Search filters active packages by destination and price bounds.
func (pc *PackageController) Search(c *fiber.Ctx) error {
	q := packageTypes.SearchQuery{
		Destination: c.Query("destination"),
	}

	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid min_price",
			})
		}
		q.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid max_price",
			})
		}
		q.MaxPrice = &max
	}

	packages, err := pc.service.Search(c.Context(), q)
	if err != nil {
		logger.Error("Failed to search packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to search packages",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packages fetched successfully",
		Data:    packages,
	})
}

// Show returns a single package.
func (pc *PackageController) Show(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid package id",
		})
	}

	pkg, err := pc.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, packageService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Travel package not found",
			})
		}
		logger.Error("Failed to load package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load package",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Package fetched successfully",
		Data:    pkg,
	})
}

// Store creates a new package. Admin only.
func (pc *PackageController) Store(c *fiber.Ctx) error {
	var req packageTypes.PackageCreateRequest
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

	pkg, err := pc.service.Create(c.Context(), req)
	if err != nil {
		logger.Error("Failed to create package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create package",
		})
	}

	pc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusCreated))
	logger.Success(fmt.Sprintf("Package created successfully with ID: %d", pkg.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Package created successfully",
		Data:    pkg,
	})
}

// Update applies an admin edit. Admin only.
func (pc *PackageController) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid package id",
		})
	}

	var req packageTypes.PackageUpdateRequest
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

	pkg, err := pc.service.Update(c.Context(), id, req)
	if err != nil {
		if errors.Is(err, packageService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Travel package not found",
			})
		}
		logger.Error("Failed to update package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update package",
		})
	}

	pc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusOK))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Package updated successfully",
		Data:    pkg,
	})
}

// Destroy soft-deletes a package. Admin only.
func (pc *PackageController) Destroy(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid package id",
		})
	}

	if err := pc.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, packageService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Travel package not found",
			})
		}
		logger.Error("Failed to delete package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete package",
		})
	}

	pc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusOK))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Package deleted successfully",
	})
}
