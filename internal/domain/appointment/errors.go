package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrContactNotBookable  = errors.New("this person cannot be booked")
)
