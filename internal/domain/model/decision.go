package model

// Decision is the outcome of evaluating one application.
//
// The fields are coupled: a denial carries zero limit, zero rate and a
// non-empty reason; an approval carries the scored limit and rate and an
// empty reason. NewApprovedDecision and NewDeniedDecision are the only
// constructors, so a Decision obtained through them always satisfies that
// coupling.
type Decision struct {
	approvalStatus bool
	creditLimit    float64
	interestRate   float64
	reason         string
}

// NewApprovedDecision builds an approval with the scored limit and rate.
func NewApprovedDecision(creditLimit, interestRate float64) Decision {
	return Decision{
		approvalStatus: true,
		creditLimit:    creditLimit,
		interestRate:   interestRate,
	}
}

// NewDeniedDecision builds a denial. The limit and rate are forced to zero
// regardless of anything the scorers produced.
func NewDeniedDecision(reason string) Decision {
	return Decision{reason: reason}
}

func (d Decision) ApprovalStatus() bool  { return d.approvalStatus }
func (d Decision) CreditLimit() float64  { return d.creditLimit }
func (d Decision) InterestRate() float64 { return d.interestRate }
func (d Decision) Reason() string        { return d.reason }
