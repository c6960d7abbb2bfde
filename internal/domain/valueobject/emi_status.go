package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// EMIStatus – immutable value object
// ---------------------------------------------------------------------------

// EMIStatus represents the lifecycle stage of a single EMI schedule entry.
type EMIStatus struct {
	value string
}

const (
	emiStatusPending = "PENDING"
	emiStatusPaid    = "PAID"
	emiStatusOverdue = "OVERDUE"
)

var (
	EMIStatusPending = EMIStatus{value: emiStatusPending}
	EMIStatusPaid    = EMIStatus{value: emiStatusPaid}
	EMIStatusOverdue = EMIStatus{value: emiStatusOverdue}
)

var validEMIStatuses = map[string]EMIStatus{
	emiStatusPending: EMIStatusPending,
	emiStatusPaid:    EMIStatusPaid,
	emiStatusOverdue: EMIStatusOverdue,
}

// NewEMIStatus creates an EMIStatus from a raw string.
func NewEMIStatus(s string) (EMIStatus, error) {
	v, ok := validEMIStatuses[s]
	if !ok {
		return EMIStatus{}, fmt.Errorf("invalid EMI status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s EMIStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s EMIStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s EMIStatus) Equal(other EMIStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// PrepaymentType – immutable value object
// ---------------------------------------------------------------------------

// PrepaymentType selects between full foreclosure and partial prepayment.
type PrepaymentType struct {
	value string
}

const (
	prepaymentFull    = "FULL"
	prepaymentPartial = "PARTIAL"
)

var (
	PrepaymentTypeFull    = PrepaymentType{value: prepaymentFull}
	PrepaymentTypePartial = PrepaymentType{value: prepaymentPartial}
)

var validPrepaymentTypes = map[string]PrepaymentType{
	prepaymentFull:    PrepaymentTypeFull,
	prepaymentPartial: PrepaymentTypePartial,
}

// NewPrepaymentType creates a PrepaymentType from a raw string.
func NewPrepaymentType(s string) (PrepaymentType, error) {
	v, ok := validPrepaymentTypes[s]
	if !ok {
		return PrepaymentType{}, fmt.Errorf("invalid prepayment type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (t PrepaymentType) String() string { return t.value }

// IsZero returns true when not initialised.
func (t PrepaymentType) IsZero() bool { return t.value == "" }

// Equal returns true when both types match.
func (t PrepaymentType) Equal(other PrepaymentType) bool { return t.value == other.value }
