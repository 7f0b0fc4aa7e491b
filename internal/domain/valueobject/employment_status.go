package valueobject

import "fmt"

// EmploymentStatus is an immutable value object for the applicant's
// employment situation.
type EmploymentStatus struct {
	value string
}

var (
	EmploymentFullTime   = EmploymentStatus{value: "Full-time"}
	EmploymentPartTime   = EmploymentStatus{value: "Part-time"}
	EmploymentUnemployed = EmploymentStatus{value: "Unemployed"}
)

// EmploymentStatusFromString reconstructs an EmploymentStatus from its
// string representation.
func EmploymentStatusFromString(s string) (EmploymentStatus, error) {
	switch s {
	case "Full-time":
		return EmploymentFullTime, nil
	case "Part-time":
		return EmploymentPartTime, nil
	case "Unemployed":
		return EmploymentUnemployed, nil
	default:
		return EmploymentStatus{}, fmt.Errorf("invalid employment status: %q", s)
	}
}

// String returns the string representation.
func (e EmploymentStatus) String() string {
	return e.value
}

// IsZero returns true if the EmploymentStatus has not been set.
func (e EmploymentStatus) IsZero() bool {
	return e.value == ""
}

// Equal checks equality with another EmploymentStatus.
func (e EmploymentStatus) Equal(other EmploymentStatus) bool {
	return e.value == other.value
}
