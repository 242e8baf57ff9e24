package model

import (
	"labdesk/shared/model"
	"time"
)

const (
	TableName  = "requests"
	EntityName = "request"

	FieldID                      = "id"
	FieldRequestNumber           = "request_number"
	FieldRequestorID             = "requestor_id"
	FieldRequestorEmail          = "requestor_email"
	FieldDivision                = "division"
	FieldNumWorkstations         = "num_workstations"
	FieldLabID                   = "lab_id"
	FieldFloorID                 = "floor_id"
	FieldLabName                 = "lab_name"
	FieldStatus                  = "status"
	FieldAdminNotes              = "admin_notes"
	FieldRequestedAllocationDate = "requested_allocation_date"
)

const (
	StatusPending            = "pending"
	StatusApproved           = "approved"
	StatusRejected           = "rejected"
	StatusPartiallyAllocated = "partially_allocated"
)

// Request is a division's ask for workstations, owning zero or more seat
// bookings. The lab fields are the requestor's preferred target and may
// be empty; the allocation engine can spread the request across labs.
type Request struct {
	ID                      string    `db:"id"`
	RequestNumber           string    `db:"request_number"`
	RequestorID             string    `db:"requestor_id"`
	RequestorEmail          string    `db:"requestor_email"`
	Division                string    `db:"division"`
	NumWorkstations         int       `db:"num_workstations"`
	LabID                   string    `db:"lab_id"`
	FloorID                 string    `db:"floor_id"`
	LabName                 string    `db:"lab_name"`
	Status                  string    `db:"status"`
	AdminNotes              string    `db:"admin_notes"`
	RequestedAllocationDate time.Time `db:"requested_allocation_date"`
	model.Metadata
}

// IsTerminal reports whether the request reached a final state. A
// partially allocated request can still be finalized or rejected.
func (r *Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
