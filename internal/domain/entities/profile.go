package entities

// EmergencyContact is printed on the back of the health card
type EmergencyContact struct {
	Name         string `json:"name" yaml:"name"`
	Relationship string `json:"relationship" yaml:"relationship"`
	Phone        string `json:"phone" yaml:"phone"`
}

// HealthCard is the digital health card shown on the My Card tab
type HealthCard struct {
	Name             string           `json:"name" yaml:"name"`
	PatientID        string           `json:"patient_id" yaml:"patient_id"`
	DateOfBirth      string           `json:"dob" yaml:"dob"`
	BloodGroup       string           `json:"blood_group" yaml:"blood_group"`
	Email            string           `json:"email" yaml:"email"`
	Phone            string           `json:"phone" yaml:"phone"`
	Address          string           `json:"address" yaml:"address"`
	PlanName         string           `json:"plan_name" yaml:"plan_name"`
	PlanType         string           `json:"plan_type" yaml:"plan_type"`
	ValidUntil       string           `json:"valid_until" yaml:"valid_until"`
	EmergencyContact EmergencyContact `json:"emergency_contact" yaml:"emergency_contact"`
}

// PersonalDetails are the contact fields of the health card the holder may edit
type PersonalDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// WithPersonalDetails returns a copy of the card carrying d
func (c HealthCard) WithPersonalDetails(d PersonalDetails) HealthCard {
	c.Name = d.Name
	c.Email = d.Email
	c.Phone = d.Phone
	c.Address = d.Address
	return c
}

// FamilyMember is a dependant linked to the account
type FamilyMember struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Relationship string `json:"relationship" yaml:"relationship"`
	Age          int    `json:"age" yaml:"age"`
	BloodGroup   string `json:"blood_group" yaml:"blood_group"`
	Phone        string `json:"phone" yaml:"phone"`
}

// PaymentOption is a saved or available payment method
type PaymentOption struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle"`
	Section  string `json:"section" yaml:"section"`
}

// LocationKind separates nearby suggestions from recently used addresses
type LocationKind string

const (
	LocationKindNearby LocationKind = "nearby"
	LocationKindRecent LocationKind = "recent"
)

// Valid reports whether k is a known location kind
func (k LocationKind) Valid() bool {
	return k == LocationKindNearby || k == LocationKindRecent
}

// Location is a delivery address candidate
type Location struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Address  string `json:"address" yaml:"address"`
	Distance string `json:"distance,omitempty" yaml:"distance"`
}
