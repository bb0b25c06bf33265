package employee

import "time"

type Employee struct {
	ID            string
	UserID        *string
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	PlaceOfBirth  *string
	Nationality   *string
	Gender        Gender
	MaritalStatus MaritalStatus
	PhoneNumber   string
	Email         string
	Address       *string
	JoiningDate   time.Time
	Designation   string
	Department    Department
	Qualification *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type MaritalStatus string

const (
	MaritalStatusMarried   MaritalStatus = "Married"
	MaritalStatusUnmarried MaritalStatus = "Unmarried"
)

type Department string

const (
	DepartmentAccounts   Department = "Accounts"
	DepartmentOperations Department = "Operations"
	DepartmentIT         Department = "IT"
)

var Departments = []Department{DepartmentAccounts, DepartmentOperations, DepartmentIT}

// MonthsOfService counts whole calendar months between the joining date and
// today, clamped at zero. Used to seed leave balances pro-rated by tenure.
func (e Employee) MonthsOfService(today time.Time) int {
	months := (today.Year()-e.JoiningDate.Year())*12 + int(today.Month()) - int(e.JoiningDate.Month())
	if months < 0 {
		return 0
	}
	return months
}
