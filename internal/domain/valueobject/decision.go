package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Decision – immutable value object
// ---------------------------------------------------------------------------

// Decision represents the outcome of an eligibility evaluation.
type Decision struct {
	value string
}

const (
	decisionApproved       = "APPROVED"
	decisionReviewRequired = "REVIEW_REQUIRED"
	decisionRejected       = "REJECTED"
)

var (
	DecisionApproved       = Decision{value: decisionApproved}
	DecisionReviewRequired = Decision{value: decisionReviewRequired}
	DecisionRejected       = Decision{value: decisionRejected}
)

var validDecisions = map[string]Decision{
	decisionApproved:       DecisionApproved,
	decisionReviewRequired: DecisionReviewRequired,
	decisionRejected:       DecisionRejected,
}

// NewDecision creates a Decision from a raw string.
func NewDecision(s string) (Decision, error) {
	v, ok := validDecisions[s]
	if !ok {
		return Decision{}, fmt.Errorf("invalid decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d Decision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d Decision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d Decision) Equal(other Decision) bool { return d.value == other.value }

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel classifies projected repayment behaviour.
type RiskLevel struct {
	value string
}

const (
	riskLow    = "LOW"
	riskMedium = "MEDIUM"
	riskHigh   = "HIGH"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLow}
	RiskLevelMedium = RiskLevel{value: riskMedium}
	RiskLevelHigh   = RiskLevel{value: riskHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLow:    RiskLevelLow,
	riskMedium: RiskLevelMedium,
	riskHigh:   RiskLevelHigh,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (r RiskLevel) String() string { return r.value }

// IsZero returns true when not initialised.
func (r RiskLevel) IsZero() bool { return r.value == "" }

// Equal returns true when both levels match.
func (r RiskLevel) Equal(other RiskLevel) bool { return r.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
