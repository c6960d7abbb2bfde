package model

import (
	"github.com/shopspring/decimal"
)

// Employment type labels accepted by product eligibility criteria.
const (
	EmploymentSalaried     = "SALARIED"
	EmploymentSelfEmployed = "SELF_EMPLOYED"
	EmploymentBusiness     = "BUSINESS"
	EmploymentRetired      = "RETIRED"
)

// Applicant is a point-in-time snapshot of the attributes the engine needs
// for eligibility and pricing. It is a plain value record owned by the
// caller; the engine never mutates or retains it.
type Applicant struct {
	ID                  string
	Age                 int
	AccountActive       bool
	KYCVerified         bool
	CreditScore         int // 300-900; 0 means no bureau score was supplied
	MonthlyIncome       decimal.Decimal
	EmploymentType      string
	WorkExperienceYears int
	ExistingEMI         decimal.Decimal // sum of current monthly obligations
	Documents           map[string]bool // document type -> verified
	HasBankAccount      bool
	IsExistingCustomer  bool
}

// HasCreditScore reports whether a bureau score was supplied.
func (a Applicant) HasCreditScore() bool { return a.CreditScore > 0 }

// DocumentVerified reports whether the named document is present and verified.
func (a Applicant) DocumentVerified(docType string) bool {
	return a.Documents[docType]
}
