package dto

import (
	"encoding/json"
	"labdesk/internal/domains/notification/model"
	"labdesk/shared"
	gDto "labdesk/shared/dto"
	gModel "labdesk/shared/model"
	"labdesk/shared/timezone"

	"github.com/google/uuid"
)

// SendNotificationRequest is the structured event body published to the
// broker and persisted for audit. Optional fields stay empty for events
// they do not apply to (a rejection carries no approval notes).
type SendNotificationRequest struct {
	Event           string `json:"event"`
	RequestID       string `json:"request_id"`
	RequestNumber   string `json:"request_number"`
	RequestorEmail  string `json:"requestor_email"`
	Division        string `json:"division"`
	NumWorkstations int    `json:"num_workstations"`
	Location        string `json:"location,omitempty"`
	Floor           string `json:"floor,omitempty"`
	LabName         string `json:"lab_name,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	ApprovalNotes   string `json:"approval_notes,omitempty"`
}

func (s *SendNotificationRequest) ToModel(recipient, user string) model.Notification {
	payload, err := json.Marshal(s)
	if err != nil {
		payload = []byte("{}")
	}

	return model.Notification{
		ID:        uuid.NewString(),
		RequestID: s.RequestID,
		Event:     s.Event,
		Recipient: recipient,
		Payload:   string(payload),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type NotificationResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id"`
	Event     string `json:"event"`
	Recipient string `json:"recipient"`
	Payload   string `json:"payload"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.RequestID = model.RequestID
	r.Event = model.Event
	r.Recipient = model.Recipient
	r.Payload = model.Payload
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
