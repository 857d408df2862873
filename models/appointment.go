package models

// Appointment is a confirmed booking kept in the patient's appointment list.
type Appointment struct {
	ID     int64  `json:"id"`
	Doctor Doctor `json:"doctor"`
	Time   string `json:"time"`           // slot label, e.g. "10:00 AM"
	Date   string `json:"date,omitempty"` // 2006-01-02
}

type AppointmentListResponse struct {
	Appointments []Appointment `json:"appointments"`
	Saved        *bool         `json:"saved,omitempty"`
}
