package memory

import (
	"context"
	"fmt"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// OrderAdapter implements repositories.OrderRepository
type OrderAdapter struct {
	store *Store
}

// NewOrderAdapter creates a new in-memory order repository
func NewOrderAdapter(store *Store) repositories.OrderRepository {
	return &OrderAdapter{store: store}
}

// Create appends an order
func (a *OrderAdapter) Create(ctx context.Context, order *entities.Order) error {
	var err error
	a.store.write(func(ds *Dataset) {
		if containsID(ds.Orders, order.ID, func(o entities.Order) string { return o.ID }) {
			err = apperrors.NewConflictError(fmt.Sprintf("order %s already exists", order.ID))
			return
		}
		ds.Orders = append(clone(ds.Orders), *order)
	})
	return err
}

// List retrieves every order
func (a *OrderAdapter) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	a.store.read(func(ds *Dataset) { orders = clone(ds.Orders) })
	return orders, nil
}

// ClaimAdapter implements repositories.ClaimRepository
type ClaimAdapter struct {
	store *Store
}

// NewClaimAdapter creates a new in-memory claim repository
func NewClaimAdapter(store *Store) repositories.ClaimRepository {
	return &ClaimAdapter{store: store}
}

// Create appends a claim
func (a *ClaimAdapter) Create(ctx context.Context, claim *entities.InsuranceClaim) error {
	var err error
	a.store.write(func(ds *Dataset) {
		if containsID(ds.Insurance.Claims, claim.ID, func(c entities.InsuranceClaim) string { return c.ID }) {
			err = apperrors.NewConflictError(fmt.Sprintf("claim %s already exists", claim.ID))
			return
		}
		ds.Insurance.Claims = append(clone(ds.Insurance.Claims), *claim)
	})
	return err
}

// List retrieves every claim
func (a *ClaimAdapter) List(ctx context.Context) ([]entities.InsuranceClaim, error) {
	var claims []entities.InsuranceClaim
	a.store.read(func(ds *Dataset) { claims = clone(ds.Insurance.Claims) })
	return claims, nil
}

// InsurancePlanAdapter implements repositories.InsurancePlanRepository
type InsurancePlanAdapter struct {
	store *Store
}

// NewInsurancePlanAdapter creates a new in-memory plan repository
func NewInsurancePlanAdapter(store *Store) repositories.InsurancePlanRepository {
	return &InsurancePlanAdapter{store: store}
}

// GetPlan retrieves the active plan
func (a *InsurancePlanAdapter) GetPlan(ctx context.Context) (*entities.InsurancePlan, error) {
	var plan entities.InsurancePlan
	a.store.read(func(ds *Dataset) { plan = ds.Insurance.Plan })
	if plan.ID == "" {
		return nil, apperrors.NewNotFoundError("insurance plan not found")
	}
	return &plan, nil
}

// ListBenefits retrieves the coverage checklist
func (a *InsurancePlanAdapter) ListBenefits(ctx context.Context) ([]entities.CoverageBenefit, error) {
	var benefits []entities.CoverageBenefit
	a.store.read(func(ds *Dataset) { benefits = clone(ds.Insurance.Benefits) })
	return benefits, nil
}

// AppointmentAdapter implements repositories.AppointmentRepository
type AppointmentAdapter struct {
	store *Store
}

// NewAppointmentAdapter creates a new in-memory appointment repository
func NewAppointmentAdapter(store *Store) repositories.AppointmentRepository {
	return &AppointmentAdapter{store: store}
}

// Create appends an appointment
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	var err error
	a.store.write(func(ds *Dataset) {
		if containsID(ds.Appointments, appointment.ID, func(ap entities.Appointment) string { return ap.ID }) {
			err = apperrors.NewConflictError(fmt.Sprintf("appointment %s already exists", appointment.ID))
			return
		}
		ds.Appointments = append(clone(ds.Appointments), *appointment)
	})
	return err
}

// List retrieves every appointment
func (a *AppointmentAdapter) List(ctx context.Context) ([]entities.Appointment, error) {
	var appointments []entities.Appointment
	a.store.read(func(ds *Dataset) { appointments = clone(ds.Appointments) })
	return appointments, nil
}

// DocumentAdapter implements repositories.DocumentRepository. Uploads are
// listed before the shared seed documents, newest first.
type DocumentAdapter struct {
	store *Store
}

// NewDocumentAdapter creates a new in-memory document repository
func NewDocumentAdapter(store *Store) repositories.DocumentRepository {
	return &DocumentAdapter{store: store}
}

// List retrieves the documents visible to a session
func (a *DocumentAdapter) List(ctx context.Context, sessionID string) ([]entities.Document, error) {
	var docs []entities.Document
	a.store.readSession(sessionID, func(state sessionState, ds *Dataset) {
		docs = make([]entities.Document, 0, len(state.uploads)+len(ds.Documents))
		docs = append(docs, state.uploads...)
		docs = append(docs, ds.Documents...)
	})
	return docs, nil
}

// Add prepends a document to the session's uploads
func (a *DocumentAdapter) Add(ctx context.Context, sessionID string, doc *entities.Document) error {
	a.store.updateSession(sessionID, func(state sessionState, _ *Dataset) sessionState {
		uploads := make([]entities.Document, 0, len(state.uploads)+1)
		uploads = append(uploads, *doc)
		state.uploads = append(uploads, state.uploads...)
		return state
	})
	return nil
}
