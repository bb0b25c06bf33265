package auth

import "github.com/hraxis/hr-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	IsStaff    bool    `json:"is_staff"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	IsStaff     bool   `json:"is_staff"`
}
