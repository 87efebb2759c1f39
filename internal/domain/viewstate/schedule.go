package viewstate

import "github.com/zatekoja/healthapp/backend/internal/domain/entities"

// FilterAppointments keeps appointments whose status equals tag exactly.
// Unlike the orders screen, no statuses are folded together.
func FilterAppointments(appointments []entities.Appointment, tag string) []entities.Appointment {
	return FilterByStatus(appointments, tag, func(a entities.Appointment) entities.AppointmentStatus { return a.Status })
}

// AppointmentPartition splits appointments into the two schedule tabs
type AppointmentPartition struct {
	Upcoming  []entities.Appointment `json:"upcoming"`
	Completed []entities.Appointment `json:"completed"`
}

// PartitionAppointments builds the upcoming and completed lists.
// Cancelled appointments appear in neither.
func PartitionAppointments(appointments []entities.Appointment) AppointmentPartition {
	return AppointmentPartition{
		Upcoming:  FilterAppointments(appointments, string(entities.AppointmentStatusUpcoming)),
		Completed: FilterAppointments(appointments, string(entities.AppointmentStatusCompleted)),
	}
}

// AppointmentBadge is the in-person / video badge
func AppointmentBadge(t entities.AppointmentType) StatusStyle {
	if t == entities.AppointmentTypeVideo {
		return StatusStyle{Label: "Video", Color: "#2563EB", Icon: "Video"}
	}
	return StatusStyle{Label: "In-person", Color: "#16A34A", Icon: "MapPin"}
}
