package valueobject

import "fmt"

// PaymentHistory is an immutable value object for the applicant's bureau
// payment record.
type PaymentHistory struct {
	value string
}

var (
	PaymentOnTime      = PaymentHistory{value: "On Time"}
	PaymentLateUnder30 = PaymentHistory{value: "Late <30"}
	PaymentLate30To60  = PaymentHistory{value: "Late 30-60"}
	PaymentLateOver60  = PaymentHistory{value: "Late >60"}
)

// PaymentHistoryFromString reconstructs a PaymentHistory from its string
// representation.
func PaymentHistoryFromString(s string) (PaymentHistory, error) {
	switch s {
	case "On Time":
		return PaymentOnTime, nil
	case "Late <30":
		return PaymentLateUnder30, nil
	case "Late 30-60":
		return PaymentLate30To60, nil
	case "Late >60":
		return PaymentLateOver60, nil
	default:
		return PaymentHistory{}, fmt.Errorf("invalid payment history: %q", s)
	}
}

// String returns the string representation.
func (p PaymentHistory) String() string {
	return p.value
}

// Severity returns the delinquency ordinal: On Time=0, Late <30=1,
// Late 30-60=2, Late >60=3.
func (p PaymentHistory) Severity() int {
	switch p.value {
	case "On Time":
		return 0
	case "Late <30":
		return 1
	case "Late 30-60":
		return 2
	case "Late >60":
		return 3
	default:
		return 0
	}
}

// IsZero returns true if the PaymentHistory has not been set.
func (p PaymentHistory) IsZero() bool {
	return p.value == ""
}

// Equal checks equality with another PaymentHistory.
func (p PaymentHistory) Equal(other PaymentHistory) bool {
	return p.value == other.value
}
