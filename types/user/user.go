package user

import (
	"fmt"

	userModel "travel-booking/models/user"
)

// UserUpdateRequest is the admin payload for editing an account.
type UserUpdateRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name" validate:"required,min=1,max=255"`
	Role      string `json:"role" validate:"required,oneof=Admin Customer"`
	IsActive  bool   `json:"is_active"`
}

func (r UserUpdateRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if r.Role != userModel.RoleAdmin && r.Role != userModel.RoleCustomer {
		return fmt.Errorf("role must be %s or %s", userModel.RoleAdmin, userModel.RoleCustomer)
	}
	return nil
}
