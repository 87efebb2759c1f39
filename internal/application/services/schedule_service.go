package services

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
)

// AppointmentCard is one appointment on the schedule screen
type AppointmentCard struct {
	entities.Appointment
	Initials string                `json:"initials"`
	Badge    viewstate.StatusStyle `json:"badge"`
}

// ScheduleView is the schedule screen for one tab
type ScheduleView struct {
	Tab          string            `json:"tab"`
	Appointments []AppointmentCard `json:"appointments"`
	Upcoming     int               `json:"upcoming_count"`
	Completed    int               `json:"completed_count"`
}

// ScheduleService builds the appointments screen
type ScheduleService struct {
	repo repositories.AppointmentRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo repositories.AppointmentRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// ListAppointments returns the appointments whose status equals tab.
// An empty tab defaults to upcoming.
func (s *ScheduleService) ListAppointments(ctx context.Context, tab string) (*ScheduleView, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if tab == "" {
		tab = string(entities.AppointmentStatusUpcoming)
	}

	filtered := viewstate.FilterAppointments(appointments, tab)
	cards := make([]AppointmentCard, 0, len(filtered))
	for _, a := range filtered {
		cards = append(cards, AppointmentCard{
			Appointment: a,
			Initials:    viewstate.Initials(a.DoctorName),
			Badge:       viewstate.AppointmentBadge(a.Type),
		})
	}

	partition := viewstate.PartitionAppointments(appointments)
	return &ScheduleView{
		Tab:          tab,
		Appointments: cards,
		Upcoming:     len(partition.Upcoming),
		Completed:    len(partition.Completed),
	}, nil
}
