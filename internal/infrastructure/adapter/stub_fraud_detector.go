package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// StubFraudDetector is a development/test adapter that derives a
// deterministic fraud score from the tenant and applicant IDs.
// It implements port.FraudDetector.
type StubFraudDetector struct{}

// NewStubFraudDetector creates a new stub adapter.
func NewStubFraudDetector() *StubFraudDetector {
	return &StubFraudDetector{}
}

// CheckApplicant returns a deterministic score in [0, 1). Scores at or above
// 0.5 are flagged with a synthetic reason so review paths stay exercisable.
func (d *StubFraudDetector) CheckApplicant(_ context.Context, tenantID, applicantID string) (valueobject.FraudCheck, error) {
	if applicantID == "" {
		return valueobject.FraudCheck{}, fmt.Errorf("applicant ID is required")
	}

	h := sha256.Sum256([]byte(tenantID + ":" + applicantID))
	num := binary.BigEndian.Uint32(h[:4])
	score := decimal.NewFromInt(int64(num % 1000)).Div(decimal.NewFromInt(1000))

	var reasons []string
	fraudulent := false
	if score.GreaterThanOrEqual(decimal.NewFromFloat(0.5)) {
		reasons = append(reasons, "velocity pattern match")
		fraudulent = score.GreaterThanOrEqual(decimal.NewFromFloat(0.8))
	}

	return valueobject.NewFraudCheck(score, fraudulent, reasons)
}
