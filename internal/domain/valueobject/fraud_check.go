package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FraudCheck is a snapshot supplied by the external fraud-detection
// collaborator. The engine never computes fraud scores itself; it consumes
// this value as an opaque input.
type FraudCheck struct {
	score        decimal.Decimal // 0 (clean) .. 1 (certain fraud)
	reasons      []string
	isFraudulent bool
	present      bool
}

// NewFraudCheck creates a validated fraud-check snapshot.
func NewFraudCheck(score decimal.Decimal, isFraudulent bool, reasons []string) (FraudCheck, error) {
	if score.LessThan(decimal.Zero) || score.GreaterThan(decimal.NewFromInt(1)) {
		return FraudCheck{}, fmt.Errorf("fraud score must be between 0 and 1, got %s", score)
	}
	out := make([]string, len(reasons))
	copy(out, reasons)
	return FraudCheck{
		score:        score,
		isFraudulent: isFraudulent,
		reasons:      out,
		present:      true,
	}, nil
}

// Score returns the fraud score in [0,1].
func (f FraudCheck) Score() decimal.Decimal { return f.score }

// IsFraudulent reports the collaborator's boolean verdict.
func (f FraudCheck) IsFraudulent() bool { return f.isFraudulent }

// IsZero returns true when no fraud check was supplied.
func (f FraudCheck) IsZero() bool { return !f.present }

// Reasons returns a defensive copy of the collaborator's reason strings.
func (f FraudCheck) Reasons() []string {
	if f.reasons == nil {
		return nil
	}
	out := make([]string, len(f.reasons))
	copy(out, f.reasons)
	return out
}

// MarketConditions carries the macro inputs used by dynamic pricing.
// A zero value means "not supplied"; pricing then skips the market
// adjustment and records the substitution.
type MarketConditions struct {
	inflationRate decimal.Decimal // annual percentage, e.g. 6.2
	present       bool
}

// NewMarketConditions creates a market snapshot.
func NewMarketConditions(inflationRate decimal.Decimal) MarketConditions {
	return MarketConditions{inflationRate: inflationRate, present: true}
}

// InflationRate returns the annual inflation percentage.
func (m MarketConditions) InflationRate() decimal.Decimal { return m.inflationRate }

// IsZero returns true when market data was not supplied.
func (m MarketConditions) IsZero() bool { return !m.present }
