package model

import (
	"labdesk/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldRequestID = "request_id"
	FieldEvent     = "event"
	FieldRecipient = "recipient"
	FieldPayload   = "payload"
)

const (
	EventRequestApproved           = "request_approved"
	EventRequestRejected           = "request_rejected"
	EventRequestPartiallyAllocated = "request_partially_allocated"
)

// Notification records one outbound message about a request outcome. The
// payload column keeps the serialized event body for audit; delivery
// itself goes through the message broker.
type Notification struct {
	ID        string `db:"id"`
	RequestID string `db:"request_id"`
	Event     string `db:"event"`
	Recipient string `db:"recipient"`
	Payload   string `db:"payload"`
	model.Metadata
}
