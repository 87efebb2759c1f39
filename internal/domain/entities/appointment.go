package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known appointment statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusUpcoming, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// AppointmentType distinguishes visits at a location from video consultations
type AppointmentType string

const (
	AppointmentTypeInPerson AppointmentType = "in-person"
	AppointmentTypeVideo    AppointmentType = "video"
)

// Valid reports whether t is a known appointment type
func (t AppointmentType) Valid() bool {
	return t == AppointmentTypeInPerson || t == AppointmentTypeVideo
}

// Appointment represents a scheduled doctor visit
type Appointment struct {
	ID         string            `json:"id" yaml:"id" db:"id"`
	DoctorName string            `json:"doctor_name" yaml:"doctor_name" db:"doctor_name"`
	Specialty  string            `json:"specialty" yaml:"specialty" db:"specialty"`
	Date       string            `json:"date" yaml:"date" db:"date"`
	Time       string            `json:"time" yaml:"time" db:"time"`
	Type       AppointmentType   `json:"type" yaml:"type" db:"type"`
	Location   string            `json:"location,omitempty" yaml:"location" db:"location"`
	Status     AppointmentStatus `json:"status" yaml:"status" db:"status"`
}
