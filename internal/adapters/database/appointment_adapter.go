package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// AppointmentAdapter implements the AppointmentRepository interface
type AppointmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *postgres.Client) repositories.AppointmentRepository {
	return &AppointmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new appointment
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	record := goqu.Record{
		"id":          appointment.ID,
		"doctor_name": appointment.DoctorName,
		"specialty":   appointment.Specialty,
		"date":        appointment.Date,
		"time":        appointment.Time,
		"type":        appointment.Type,
		"location":    sql.NullString{String: appointment.Location, Valid: appointment.Location != ""},
		"status":      appointment.Status,
	}

	query, args, err := a.db.Insert(appointmentsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("appointment %s already exists", appointment.ID))
		}
		return apperrors.NewInternalError("failed to create appointment", err)
	}
	return nil
}

// List retrieves all appointments
func (a *AppointmentAdapter) List(ctx context.Context) ([]entities.Appointment, error) {
	query, args, err := a.db.Select(
		"id", "doctor_name", "specialty", "date", "time", "type", "status",
		goqu.COALESCE(goqu.C("location"), "").As("location"),
	).From(appointmentsTable).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	appointments := make([]entities.Appointment, 0)
	if err := a.client.DBx().SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list appointments", err)
	}
	return appointments, nil
}
