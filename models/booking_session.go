package models

// DateOption is one of the seven bookable dates offered by a session.
type DateOption struct {
	Date  string `json:"date"`  // 2006-01-02
	Label string `json:"label"` // Mon, Jan 2
}

// BookingSessionResponse is what the booking endpoints return while a session
// is open.
type BookingSessionResponse struct {
	SessionID      string       `json:"sessionId"`
	Doctor         DoctorCard   `json:"doctor"`
	CandidateDates []DateOption `json:"candidateDates"`
	SelectedDate   string       `json:"selectedDate,omitempty"`
	SelectedTime   string       `json:"selectedTime,omitempty"`
	Status         string       `json:"status"`
	TimeSlots      []string     `json:"timeSlots"`
	Message        string       `json:"message,omitempty"`
}

type CreateSessionRequest struct {
	DoctorID int `json:"doctorId" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

// BookingConfirmationResponse is returned once a session is confirmed and
// committed to the appointment list.
type BookingConfirmationResponse struct {
	Appointment  Appointment `json:"appointment"`
	Confirmation string      `json:"confirmation"`
	Saved        bool        `json:"saved"`
}
