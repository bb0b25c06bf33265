package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeID *string
}

// Actor is the current acting user passed explicitly into every state-machine
// entry point. The core never reads authorization state from the request
// context itself.
type Actor struct {
	UserID     string
	EmployeeID *string
	IsStaff    bool
}

// IsSelf reports whether the actor is the employee with the given ID.
func (a Actor) IsSelf(employeeID string) bool {
	return a.EmployeeID != nil && *a.EmployeeID == employeeID
}
