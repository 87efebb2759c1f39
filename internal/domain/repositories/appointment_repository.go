package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// Create stores a new appointment
	Create(ctx context.Context, appointment *entities.Appointment) error

	// List retrieves every appointment in schedule order
	List(ctx context.Context) ([]entities.Appointment, error)
}
