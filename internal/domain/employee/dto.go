package employee

import (
	"time"

	"github.com/hraxis/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	DateOfBirth   string  `json:"date_of_birth"`
	PlaceOfBirth  *string `json:"place_of_birth,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"marital_status"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email"`
	Address       *string `json:"address,omitempty"`
	JoiningDate   string  `json:"joining_date"`
	Designation   string  `json:"designation"`
	Department    string  `json:"department"`
	Qualification *string `json:"qualification,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
	}
	if r.Gender != string(GenderMale) && r.Gender != string(GenderFemale) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be Male or Female"})
	}
	if r.MaritalStatus != string(MaritalStatusMarried) && r.MaritalStatus != string(MaritalStatusUnmarried) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be Married or Unmarried"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}

	validDepartment := false
	for _, d := range Departments {
		if r.Department == string(d) {
			validDepartment = true
		}
	}
	if !validDepartment {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "unknown department"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	Department    *string `json:"department,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	DateOfBirth   string  `json:"date_of_birth"`
	PlaceOfBirth  *string `json:"place_of_birth,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"marital_status"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email"`
	Address       *string `json:"address,omitempty"`
	JoiningDate   string  `json:"joining_date"`
	Designation   string  `json:"designation"`
	Department    string  `json:"department"`
	Qualification *string `json:"qualification,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		DateOfBirth:   e.DateOfBirth.Format("2006-01-02"),
		PlaceOfBirth:  e.PlaceOfBirth,
		Nationality:   e.Nationality,
		Gender:        string(e.Gender),
		MaritalStatus: string(e.MaritalStatus),
		PhoneNumber:   e.PhoneNumber,
		Email:         e.Email,
		Address:       e.Address,
		JoiningDate:   e.JoiningDate.Format("2006-01-02"),
		Designation:   e.Designation,
		Department:    string(e.Department),
		Qualification: e.Qualification,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
