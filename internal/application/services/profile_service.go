package services

import (
	"context"
	"sort"
	"strings"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// FamilyMemberCard is a family member with an avatar monogram
type FamilyMemberCard struct {
	entities.FamilyMember
	Initials string `json:"initials"`
}

// ProfileView is the health card, family and payments screens
type ProfileView struct {
	Card     *entities.HealthCard     `json:"card"`
	Family   []FamilyMemberCard       `json:"family"`
	Payments []entities.PaymentOption `json:"payments"`
}

// ProfileService serves the profile screens. Health card edits are kept per
// session.
type ProfileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(repo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetProfile returns the health card, family members and payment options
func (s *ProfileService) GetProfile(ctx context.Context, sessionID string) (*ProfileView, error) {
	card, err := s.repo.GetHealthCard(ctx, normalizeSession(sessionID))
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListFamilyMembers(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.ListPaymentOptions(ctx)
	if err != nil {
		return nil, err
	}

	family := make([]FamilyMemberCard, 0, len(members))
	for _, m := range members {
		family = append(family, FamilyMemberCard{FamilyMember: m, Initials: viewstate.Initials(m.Name)})
	}

	return &ProfileView{
		Card:     card,
		Family:   family,
		Payments: payments,
	}, nil
}

// UpdatePersonalDetails replaces the card holder's name, email, phone and
// address. Every field is required.
func (s *ProfileService) UpdatePersonalDetails(ctx context.Context, sessionID string, details entities.PersonalDetails) (*entities.HealthCard, error) {
	details = entities.PersonalDetails{
		Name:    strings.TrimSpace(details.Name),
		Email:   strings.TrimSpace(details.Email),
		Phone:   strings.TrimSpace(details.Phone),
		Address: strings.TrimSpace(details.Address),
	}
	if err := requireFields(map[string]string{
		"name":    details.Name,
		"email":   details.Email,
		"phone":   details.Phone,
		"address": details.Address,
	}); err != nil {
		return nil, err
	}
	if !strings.Contains(details.Email, "@") {
		return nil, apperrors.NewValidationError("please enter a valid email address")
	}

	return s.repo.UpdateHealthCard(ctx, normalizeSession(sessionID), func(card entities.HealthCard) entities.HealthCard {
		return card.WithPersonalDetails(details)
	})
}

// UpdateEmergencyContact replaces the emergency contact on the card
func (s *ProfileService) UpdateEmergencyContact(ctx context.Context, sessionID string, contact entities.EmergencyContact) (*entities.HealthCard, error) {
	contact = entities.EmergencyContact{
		Name:         strings.TrimSpace(contact.Name),
		Relationship: strings.TrimSpace(contact.Relationship),
		Phone:        strings.TrimSpace(contact.Phone),
	}
	if err := requireFields(map[string]string{
		"name":         contact.Name,
		"relationship": contact.Relationship,
		"phone":        contact.Phone,
	}); err != nil {
		return nil, err
	}

	return s.repo.UpdateHealthCard(ctx, normalizeSession(sessionID), func(card entities.HealthCard) entities.HealthCard {
		card.EmergencyContact = contact
		return card
	})
}

// requireFields reports the blank fields, in name order
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
}
