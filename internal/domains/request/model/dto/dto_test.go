package dto_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"labdesk/internal/domains/request/model"
	"labdesk/internal/domains/request/model/dto"
)

func TestSubmitRequestToModel(t *testing.T) {
	req := dto.SubmitRequestRequest{
		Division:                "platform",
		NumWorkstations:         6,
		LabID:                   "lab-1",
		FloorID:                 "floor-1",
		LabName:                 "Lab A",
		RequestedAllocationDate: "2026-09-14",
	}

	request, err := req.ToModel("employee-1", "requestor@example.com")
	assert.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, "employee-1", request.RequestorID)
	assert.Equal(t, "requestor@example.com", request.RequestorEmail)
	assert.Equal(t, model.StatusPending, request.Status)
	assert.Equal(t, time.September, request.RequestedAllocationDate.Month())
	assert.Equal(t, 14, request.RequestedAllocationDate.Day())

	assert.Regexp(t, regexp.MustCompile(`^REQ-\d{8}-[0-9A-F]{8}$`), request.RequestNumber)
}

func TestSubmitRequestToModelDefaultsAllocationDate(t *testing.T) {
	req := dto.SubmitRequestRequest{
		Division:        "platform",
		NumWorkstations: 2,
	}

	request, err := req.ToModel("employee-1", "requestor@example.com")
	assert.NoError(t, err)
	assert.False(t, request.RequestedAllocationDate.IsZero())
}

func TestSubmitRequestToModelRejectsBadDate(t *testing.T) {
	req := dto.SubmitRequestRequest{
		Division:                "platform",
		NumWorkstations:         2,
		RequestedAllocationDate: "14/09/2026",
	}

	_, err := req.ToModel("employee-1", "requestor@example.com")
	assert.Error(t, err)
}
