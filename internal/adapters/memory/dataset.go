// Package memory serves every repository from the embedded demo dataset.
// Carts, document uploads and health card edits are kept per session in
// process memory.
package memory

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

//go:embed data/seed.yaml
var seedYAML []byte

// Dataset is the full demo dataset
type Dataset struct {
	DeliveryFee  float64                `yaml:"delivery_fee"`
	Cart         []entities.CartItem    `yaml:"cart"`
	Orders       []entities.Order       `yaml:"orders"`
	Insurance    InsuranceData          `yaml:"insurance"`
	Appointments []entities.Appointment `yaml:"appointments"`
	Health       HealthData             `yaml:"health"`
	Documents    []entities.Document    `yaml:"documents"`
	Locations    LocationData           `yaml:"locations"`
	Catalog      CatalogData            `yaml:"catalog"`
	Profile      ProfileData            `yaml:"profile"`
}

type InsuranceData struct {
	Plan     entities.InsurancePlan     `yaml:"plan"`
	Benefits []entities.CoverageBenefit `yaml:"benefits"`
	Claims   []entities.InsuranceClaim  `yaml:"claims"`
}

type HealthData struct {
	Metrics  []entities.HealthMetric                      `yaml:"metrics"`
	Activity map[entities.Period][]entities.ActivityPoint `yaml:"activity"`
	Goals    []entities.HealthGoal                        `yaml:"goals"`
	Today    entities.DailySummary                        `yaml:"today"`
}

type LocationData struct {
	Nearby []entities.Location `yaml:"nearby"`
	Recent []entities.Location `yaml:"recent"`
}

type CatalogData struct {
	Products      []entities.Product          `yaml:"products"`
	LabPackages   []entities.LabPackage       `yaml:"lab_packages"`
	Subscriptions []entities.SubscriptionPlan `yaml:"subscriptions"`
	Languages     []entities.Language         `yaml:"languages"`
}

type ProfileData struct {
	HealthCard entities.HealthCard      `yaml:"health_card"`
	Family     []entities.FamilyMember  `yaml:"family"`
	Payments   []entities.PaymentOption `yaml:"payments"`
}

// LoadDataset parses the embedded dataset
func LoadDataset() (*Dataset, error) {
	return ParseDataset(seedYAML)
}

// ParseDataset parses and validates a dataset document
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, apperrors.NewInternalError("failed to parse dataset", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks every closed enumeration and the cart quantity floor
func (ds *Dataset) Validate() error {
	for _, item := range ds.Cart {
		if item.Quantity < viewstate.MinQuantity || item.Quantity > viewstate.MaxQuantity {
			return apperrors.NewValidationError(fmt.Sprintf("cart item %s has quantity %d", item.ID, item.Quantity))
		}
	}
	for _, o := range ds.Orders {
		if !o.Status.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("order %s has unknown status %q", o.ID, o.Status))
		}
	}
	for _, c := range ds.Insurance.Claims {
		if !c.Status.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("claim %s has unknown status %q", c.ID, c.Status))
		}
		if c.ApprovedAmount > c.ClaimAmount {
			return apperrors.NewValidationError(fmt.Sprintf("claim %s approves more than was claimed", c.ID))
		}
	}
	for _, a := range ds.Appointments {
		if !a.Status.Valid() || !a.Type.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("appointment %s has unknown status or type", a.ID))
		}
	}
	for _, d := range ds.Documents {
		if !d.Type.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("document %s has unknown type %q", d.ID, d.Type))
		}
	}
	for period := range ds.Health.Activity {
		if !period.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("unknown activity period %q", period))
		}
	}
	return nil
}
