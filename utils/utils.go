package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"travel-booking/types"
)

// UserIDFromContext returns the numeric user id from the verified claims the
// auth middleware attached to the request.
func UserIDFromContext(c *fiber.Ctx) (uint, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("no verified claims in request context")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, fmt.Errorf("sub claim missing")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sub claim is not a user id: %w", err)
	}
	return uint(id), nil
}

// RoleFromContext returns the role claim, or an empty string when absent.
func RoleFromContext(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// ParseIDParam parses a positive numeric path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s parameter %q", name, raw)
	}
	return uint(id), nil
}

// sanitizeBody redacts credential fields from a JSON body before it is
// written to the request log.
func sanitizeBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	for key := range parsed {
		if strings.Contains(strings.ToLower(key), "password") {
			parsed[key] = "[REDACTED]"
		}
	}

	sanitized, err := json.Marshal(parsed)
	if err != nil {
		return string(body)
	}
	return string(sanitized)
}

// sanitizeHeaders flattens request headers, masking the Authorization value.
func sanitizeHeaders(c *fiber.Ctx) string {
	headers := make(map[string]string)
	for key, values := range c.GetReqHeaders() {
		if strings.EqualFold(key, "Authorization") {
			headers[key] = "[REDACTED]"
			continue
		}
		headers[key] = strings.Join(values, ", ")
	}
	encoded, err := json.Marshal(headers)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// CreateSanitizedLogEntry builds an audit log entry for the current request
// with credentials stripped out.
func CreateSanitizedLogEntry(c *fiber.Ctx, statusCode int) types.LogEntry {
	return types.LogEntry{
		Method:         c.Method(),
		URL:            c.OriginalURL(),
		RequestBody:    sanitizeBody(c.Body()),
		RequestHeaders: sanitizeHeaders(c),
		StatusCode:     statusCode,
		CreatedAt:      time.Now(),
	}
}
