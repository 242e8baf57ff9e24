package dto

import (
	"fmt"
	"labdesk/internal/domains/request/model"
	"labdesk/shared"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	gModel "labdesk/shared/model"
	"labdesk/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubmitRequestRequest struct {
	Division                string `json:"division"                  validate:"required,max=100"`
	NumWorkstations         int    `json:"num_workstations"          validate:"required,gt=0"`
	LabID                   string `json:"lab_id"                    validate:"omitempty"`
	FloorID                 string `json:"floor_id"                  validate:"omitempty"`
	LabName                 string `json:"lab_name"                  validate:"omitempty,max=100"`
	SeatNumbers             []int  `json:"seat_numbers"              validate:"omitempty,dive,gt=0"`
	RequestedAllocationDate string `json:"requested_allocation_date" validate:"omitempty"`
}

func (s *SubmitRequestRequest) ToModel(requestorID, requestorEmail string) (model.Request, error) {
	allocationDate := timezone.Now()

	if s.RequestedAllocationDate != "" {
		parsed, err := time.Parse(constant.DayFormat, s.RequestedAllocationDate)
		if err != nil {
			return model.Request{}, err //nolint:wrapcheck
		}

		allocationDate = parsed
	}

	id := uuid.NewString()

	return model.Request{
		ID:                      id,
		RequestNumber:           buildRequestNumber(id),
		RequestorID:             requestorID,
		RequestorEmail:          requestorEmail,
		Division:                s.Division,
		NumWorkstations:         s.NumWorkstations,
		LabID:                   s.LabID,
		FloorID:                 s.FloorID,
		LabName:                 s.LabName,
		Status:                  model.StatusPending,
		RequestedAllocationDate: allocationDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  requestorID,
			ModifiedBy: requestorID,
		},
	}, nil
}

// buildRequestNumber derives the human-facing reference from the row ID,
// e.g. REQ-20260830-1A2B3C4D.
func buildRequestNumber(id string) string {
	fragment := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}

	return fmt.Sprintf("REQ-%s-%s", timezone.Now().Format("20060102"), fragment)
}

type ApproveRequestRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type RequestResponse struct {
	ID                      string `json:"id"`
	RequestNumber           string `json:"request_number"`
	RequestorID             string `json:"requestor_id"`
	RequestorEmail          string `json:"requestor_email"`
	Division                string `json:"division"`
	NumWorkstations         int    `json:"num_workstations"`
	LabID                   string `json:"lab_id,omitempty"`
	FloorID                 string `json:"floor_id,omitempty"`
	LabName                 string `json:"lab_name,omitempty"`
	Status                  string `json:"status"`
	AdminNotes              string `json:"admin_notes,omitempty"`
	RequestedAllocationDate string `json:"requested_allocation_date"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(model model.Request) {
	r.ID = model.ID
	r.RequestNumber = model.RequestNumber
	r.RequestorID = model.RequestorID
	r.RequestorEmail = model.RequestorEmail
	r.Division = model.Division
	r.NumWorkstations = model.NumWorkstations
	r.LabID = model.LabID
	r.FloorID = model.FloorID
	r.LabName = model.LabName
	r.Status = model.Status
	r.AdminNotes = model.AdminNotes
	r.RequestedAllocationDate = model.RequestedAllocationDate.Format(constant.DayFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
