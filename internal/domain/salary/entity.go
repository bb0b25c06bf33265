package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Components holds an employee's current salary breakdown. Gross is always
// derived from the four allowance figures; it is recomputed on every write
// and never accepted as input.
type Components struct {
	ID                 string
	EmployeeID         string
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowance     decimal.Decimal
	GrossSalary        decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ComponentInput is the writable subset of Components.
type ComponentInput struct {
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowance     decimal.Decimal
}

// Gross derives the gross salary: basic + housing + transport + other.
func (in ComponentInput) Gross() decimal.Decimal {
	return in.BasicSalary.
		Add(in.HousingAllowance).
		Add(in.TransportAllowance).
		Add(in.OtherAllowance)
}

// Revision is an immutable snapshot of a salary change: the new components,
// the previous ones, and both gross figures. Revisions are an append-only
// log; a correction is a new revision.
type Revision struct {
	ID                         string
	EmployeeID                 string
	RevisedBasicSalary         decimal.Decimal
	RevisedHousingAllowance    decimal.Decimal
	RevisedTransportAllowance  decimal.Decimal
	RevisedOtherAllowance      decimal.Decimal
	RevisedGrossSalary         decimal.Decimal
	PreviousBasicSalary        decimal.Decimal
	PreviousHousingAllowance   decimal.Decimal
	PreviousTransportAllowance decimal.Decimal
	PreviousOtherAllowance     decimal.Decimal
	PreviousGrossSalary        decimal.Decimal
	EffectiveFrom              time.Time
	RevisionReason             string
	CreatedAt                  time.Time
}
