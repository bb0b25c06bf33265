package salary

import (
	"time"

	"github.com/hraxis/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SetComponentsRequest struct {
	EmployeeID         string          `json:"-"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
}

func (r *SetComponentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsNonNegativeAmount(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.HousingAllowance) {
		errs = append(errs, validator.ValidationError{Field: "housing_allowance", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.TransportAllowance) {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.OtherAllowance) {
		errs = append(errs, validator.ValidationError{Field: "other_allowance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SetComponentsRequest) Input() ComponentInput {
	return ComponentInput{
		BasicSalary:        r.BasicSalary,
		HousingAllowance:   r.HousingAllowance,
		TransportAllowance: r.TransportAllowance,
		OtherAllowance:     r.OtherAllowance,
	}
}

type ComponentsResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	UpdatedAt          string          `json:"updated_at"`
}

func ToComponentsResponse(c Components) ComponentsResponse {
	return ComponentsResponse{
		ID:                 c.ID,
		EmployeeID:         c.EmployeeID,
		BasicSalary:        c.BasicSalary,
		HousingAllowance:   c.HousingAllowance,
		TransportAllowance: c.TransportAllowance,
		OtherAllowance:     c.OtherAllowance,
		GrossSalary:        c.GrossSalary,
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
	}
}

type ApplyRevisionRequest struct {
	EmployeeID         string          `json:"-"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	EffectiveFrom      string          `json:"effective_from"`
	Reason             string          `json:"reason"`
}

func (r *ApplyRevisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsNonNegativeAmount(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.HousingAllowance) {
		errs = append(errs, validator.ValidationError{Field: "housing_allowance", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.TransportAllowance) {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.OtherAllowance) {
		errs = append(errs, validator.ValidationError{Field: "other_allowance", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ApplyRevisionRequest) Input() ComponentInput {
	return ComponentInput{
		BasicSalary:        r.BasicSalary,
		HousingAllowance:   r.HousingAllowance,
		TransportAllowance: r.TransportAllowance,
		OtherAllowance:     r.OtherAllowance,
	}
}

type RevisionResponse struct {
	ID                         string          `json:"id"`
	EmployeeID                 string          `json:"employee_id"`
	RevisedBasicSalary         decimal.Decimal `json:"revised_basic_salary"`
	RevisedHousingAllowance    decimal.Decimal `json:"revised_housing_allowance"`
	RevisedTransportAllowance  decimal.Decimal `json:"revised_transport_allowance"`
	RevisedOtherAllowance      decimal.Decimal `json:"revised_other_allowance"`
	RevisedGrossSalary         decimal.Decimal `json:"revised_gross_salary"`
	PreviousBasicSalary        decimal.Decimal `json:"previous_basic_salary"`
	PreviousHousingAllowance   decimal.Decimal `json:"previous_housing_allowance"`
	PreviousTransportAllowance decimal.Decimal `json:"previous_transport_allowance"`
	PreviousOtherAllowance     decimal.Decimal `json:"previous_other_allowance"`
	PreviousGrossSalary        decimal.Decimal `json:"previous_gross_salary"`
	EffectiveFrom              string          `json:"effective_from"`
	RevisionReason             string          `json:"revision_reason"`
	CreatedAt                  string          `json:"created_at"`
}

func ToRevisionResponse(rev Revision) RevisionResponse {
	return RevisionResponse{
		ID:                         rev.ID,
		EmployeeID:                 rev.EmployeeID,
		RevisedBasicSalary:         rev.RevisedBasicSalary,
		RevisedHousingAllowance:    rev.RevisedHousingAllowance,
		RevisedTransportAllowance:  rev.RevisedTransportAllowance,
		RevisedOtherAllowance:      rev.RevisedOtherAllowance,
		RevisedGrossSalary:         rev.RevisedGrossSalary,
		PreviousBasicSalary:        rev.PreviousBasicSalary,
		PreviousHousingAllowance:   rev.PreviousHousingAllowance,
		PreviousTransportAllowance: rev.PreviousTransportAllowance,
		PreviousOtherAllowance:     rev.PreviousOtherAllowance,
		PreviousGrossSalary:        rev.PreviousGrossSalary,
		EffectiveFrom:              rev.EffectiveFrom.Format("2006-01-02"),
		RevisionReason:             rev.RevisionReason,
		CreatedAt:                  rev.CreatedAt.Format(time.RFC3339),
	}
}
