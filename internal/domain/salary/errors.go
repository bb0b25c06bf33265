package salary

import "errors"

var ErrSalaryDetailsNotFound = errors.New("salary details not found")
