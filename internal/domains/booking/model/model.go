package model

import (
	"labdesk/shared/model"
	"time"
)

const (
	TableName  = "seat_bookings"
	EntityName = "seat_booking"

	FieldID          = "id"
	FieldRequestID   = "request_id"
	FieldLabID       = "lab_id"
	FieldFloorID     = "floor_id"
	FieldLabName     = "lab_name"
	FieldSeatNumber  = "seat_number"
	FieldDivision    = "division"
	FieldStatus      = "status"
	FieldBookingDate = "booking_date"
	FieldRemark      = "remark"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ActiveStatuses are the booking states that occupy a physical seat. At
// most one booking per (lab_id, floor_id, seat_number) may be in one of
// these states.
var ActiveStatuses = []string{StatusPending, StatusApproved}

// SeatBooking reserves one physical workstation for one request.
type SeatBooking struct {
	ID          string    `db:"id"`
	RequestID   string    `db:"request_id"`
	LabID       string    `db:"lab_id"`
	FloorID     string    `db:"floor_id"`
	LabName     string    `db:"lab_name"`
	SeatNumber  int       `db:"seat_number"`
	Division    string    `db:"division"`
	Status      string    `db:"status"`
	BookingDate time.Time `db:"booking_date"`
	Remark      string    `db:"remark"`
	model.Metadata
}
