package entities

// ClaimStatus represents the status of an insurance claim
type ClaimStatus string

const (
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Valid reports whether s is one of the known claim statuses
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusApproved, ClaimStatusPending, ClaimStatusRejected:
		return true
	}
	return false
}

// InsuranceClaim represents a hospital claim filed against the active plan.
// ApprovedAmount is only meaningful when Status is approved.
type InsuranceClaim struct {
	ID             string      `json:"id" yaml:"id" db:"id"`
	HospitalName   string      `json:"hospital_name" yaml:"hospital_name" db:"hospital_name"`
	ClaimAmount    float64     `json:"claim_amount" yaml:"claim_amount" db:"claim_amount"`
	ApprovedAmount float64     `json:"approved_amount" yaml:"approved_amount" db:"approved_amount"`
	Date           string      `json:"date" yaml:"date" db:"date"`
	Status         ClaimStatus `json:"status" yaml:"status" db:"status"`
}

// PlanStatus represents the lifecycle of an insurance plan
type PlanStatus string

const (
	PlanStatusActive  PlanStatus = "active"
	PlanStatusPending PlanStatus = "pending"
	PlanStatusExpired PlanStatus = "expired"
)

// InsurancePlan represents a health insurance policy
type InsurancePlan struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Provider   string     `json:"provider" yaml:"provider"`
	Type       string     `json:"type" yaml:"type"`
	Coverage   string     `json:"coverage" yaml:"coverage"`
	Premium    float64    `json:"premium" yaml:"premium"`
	ValidUntil string     `json:"valid_until" yaml:"valid_until"`
	Status     PlanStatus `json:"status" yaml:"status"`
}

// CoverageBenefit is one line of the plan's benefit grid
type CoverageBenefit struct {
	Label   string `json:"label" yaml:"label"`
	Icon    string `json:"icon" yaml:"icon"`
	Covered bool   `json:"covered" yaml:"covered"`
}
