package auth

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"travel-booking/logger"
	authService "travel-booking/services/auth"
	"travel-booking/types"
	authTypes "travel-booking/types/auth"
	"travel-booking/utils"
)

// AuthController handles registration and login.
type AuthController struct {
	service        *authService.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(service *authService.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{service: service, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a customer account and returns a token.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	created, token, err := h.service.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "An account with this email already exists",
				Status:  fiber.StatusBadRequest,
			})
		}
		logger.Error("Failed to register user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, 24*60*60)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusCreated))
	logger.Success("User registered: " + created.Email)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful",
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    created,
	})
}

// Login exchanges credentials for a token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	u, token, err := h.service.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to log in user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, 24*60*60)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, fiber.StatusOK))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    u,
	})
}

// Logout clears the access cookie.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out",
		Status:  fiber.StatusOK,
	})
}
