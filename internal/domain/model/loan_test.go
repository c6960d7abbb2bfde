package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
)

func TestLoanTerms_Validate(t *testing.T) {
	valid := model.LoanTerms{
		Principal:         decimal.NewFromInt(500_000),
		AnnualRatePercent: decimal.NewFromFloat(12.5),
		TenureMonths:      36,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		terms model.LoanTerms
	}{
		{"zero principal", model.LoanTerms{AnnualRatePercent: decimal.NewFromInt(10), TenureMonths: 12}},
		{"negative principal", model.LoanTerms{Principal: decimal.NewFromInt(-1), AnnualRatePercent: decimal.NewFromInt(10), TenureMonths: 12}},
		{"zero tenure", model.LoanTerms{Principal: decimal.NewFromInt(1000), AnnualRatePercent: decimal.NewFromInt(10)}},
		{"negative rate", model.LoanTerms{Principal: decimal.NewFromInt(1000), AnnualRatePercent: decimal.NewFromInt(-1), TenureMonths: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.terms.Validate())
		})
	}
}

func TestLoanTerms_MonthlyRate(t *testing.T) {
	terms := model.LoanTerms{AnnualRatePercent: decimal.NewFromInt(12)}
	assert.True(t, terms.MonthlyRate().Equal(decimal.NewFromFloat(0.01)),
		"12%% annual is 1%% monthly, got %s", terms.MonthlyRate())
}

func TestProduct_AmountInRange(t *testing.T) {
	product := model.Product{
		MinAmount: decimal.NewFromInt(50_000),
		MaxAmount: decimal.NewFromInt(2_000_000),
	}

	assert.True(t, product.AmountInRange(decimal.NewFromInt(500_000)))
	assert.True(t, product.AmountInRange(decimal.NewFromInt(50_000)))
	assert.True(t, product.AmountInRange(decimal.NewFromInt(2_000_000)))
	assert.False(t, product.AmountInRange(decimal.NewFromInt(49_999)))
	assert.False(t, product.AmountInRange(decimal.NewFromInt(2_000_001)))

	open := model.Product{}
	assert.True(t, open.AmountInRange(decimal.NewFromInt(1)), "open bounds accept any amount")
}

func TestProduct_TenureInRange(t *testing.T) {
	product := model.Product{MinTenure: 6, MaxTenure: 60}

	assert.True(t, product.TenureInRange(6))
	assert.True(t, product.TenureInRange(60))
	assert.False(t, product.TenureInRange(5))
	assert.False(t, product.TenureInRange(61))

	open := model.Product{}
	assert.True(t, open.TenureInRange(240), "open bounds accept any tenure")
}

func TestEligibilityCriteria_AcceptsEmployment(t *testing.T) {
	criteria := model.EligibilityCriteria{
		EmploymentTypes: []string{model.EmploymentSalaried, model.EmploymentSelfEmployed},
	}

	assert.True(t, criteria.AcceptsEmployment(model.EmploymentSalaried))
	assert.False(t, criteria.AcceptsEmployment(model.EmploymentRetired))

	open := model.EligibilityCriteria{}
	assert.True(t, open.AcceptsEmployment("ANYTHING"), "an empty set accepts every type")
}

func TestApplicant_Accessors(t *testing.T) {
	applicant := model.Applicant{
		CreditScore: 720,
		Documents:   map[string]bool{"PAN": true, "AADHAAR": false},
	}

	assert.True(t, applicant.HasCreditScore())
	assert.True(t, applicant.DocumentVerified("PAN"))
	assert.False(t, applicant.DocumentVerified("AADHAAR"), "present but unverified")
	assert.False(t, applicant.DocumentVerified("PASSPORT"))

	noScore := model.Applicant{}
	assert.False(t, noScore.HasCreditScore())
}
