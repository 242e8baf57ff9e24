package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"labdesk/config"
	"labdesk/infras/otel/mocks"
	"labdesk/internal/domains/allocation/model/dto"
	"labdesk/internal/domains/allocation/service"
	bookingServiceMocks "labdesk/internal/domains/booking/service/mocks"
	labMocks "labdesk/internal/domains/lab/mocks"
	labModel "labdesk/internal/domains/lab/model"
	requestModel "labdesk/internal/domains/request/model"
	requestDto "labdesk/internal/domains/request/model/dto"
	requestServiceMocks "labdesk/internal/domains/request/service/mocks"
	"labdesk/shared/constant"
	"labdesk/shared/failure"
)

func TestGroupAllocations(t *testing.T) {
	tests := []struct {
		name        string
		allocations []dto.Allocation
		expected    []service.AllocationGroup
	}{
		{
			name:        "empty input",
			allocations: []dto.Allocation{},
			expected:    []service.AllocationGroup{},
		},
		{
			name: "single line",
			allocations: []dto.Allocation{
				{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform", NumSeats: 4, AssetIDRange: "1-4"},
			},
			expected: []service.AllocationGroup{
				{
					Key:          labModel.UsageKey{FloorID: "floor-1", LabName: "Lab A", Division: "platform"},
					SeatCount:    4,
					AssetIDRange: "1-4",
				},
			},
		},
		{
			name: "same lab and division merges",
			allocations: []dto.Allocation{
				{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform", NumSeats: 4, AssetIDRange: "1-4"},
				{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform", NumSeats: 2, AssetIDRange: "7-8"},
			},
			expected: []service.AllocationGroup{
				{
					Key:          labModel.UsageKey{FloorID: "floor-1", LabName: "Lab A", Division: "platform"},
					SeatCount:    6,
					AssetIDRange: "1-4, 7-8",
				},
			},
		},
		{
			name: "explicit seat numbers win over num_seats",
			allocations: []dto.Allocation{
				{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform", SeatNumbers: []int{4, 5, 6}, NumSeats: 1},
			},
			expected: []service.AllocationGroup{
				{
					Key:       labModel.UsageKey{FloorID: "floor-1", LabName: "Lab A", Division: "platform"},
					SeatCount: 3,
				},
			},
		},
		{
			name: "distinct divisions keep input order",
			allocations: []dto.Allocation{
				{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "payments", NumSeats: 2},
				{LabID: "lab-2", FloorID: "floor-1", LabName: "Lab B", Division: "platform", NumSeats: 3},
				{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "payments", NumSeats: 1},
			},
			expected: []service.AllocationGroup{
				{
					Key:       labModel.UsageKey{FloorID: "floor-1", LabName: "Lab A", Division: "payments"},
					SeatCount: 3,
				},
				{
					Key:       labModel.UsageKey{FloorID: "floor-1", LabName: "Lab B", Division: "platform"},
					SeatCount: 3,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.GroupAllocations(tt.allocations))
		})
	}
}

func TestAllocationService_FinalizeGuards(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.FinalizeAllocationRequest
		setupMock func(request *requestServiceMocks.MockRequest)
		wantCode  int
	}{
		{
			name: "finalizing a terminal request",
			req: dto.FinalizeAllocationRequest{
				Allocations: []dto.Allocation{
					{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform", NumSeats: 4},
				},
			},
			setupMock: func(request *requestServiceMocks.MockRequest) {
				request.EXPECT().
					Get(gomock.Any(), "request-1").
					Return(requestDto.RequestResponse{
						ID:            "request-1",
						RequestNumber: "REQ-20260830-1a2b3c4d",
						Status:        requestModel.StatusApproved,
					}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "allocation line without seats",
			req: dto.FinalizeAllocationRequest{
				Allocations: []dto.Allocation{
					{LabID: "lab-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform"},
				},
			},
			setupMock: func(request *requestServiceMocks.MockRequest) {
				request.EXPECT().
					Get(gomock.Any(), "request-1").
					Return(requestDto.RequestResponse{
						ID:            "request-1",
						RequestNumber: "REQ-20260830-1a2b3c4d",
						Status:        requestModel.StatusPending,
					}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLabRepo := labMocks.NewMockLab(ctrl)
			mockBooking := bookingServiceMocks.NewMockBooking(ctrl)
			mockRequest := requestServiceMocks.NewMockRequest(ctrl)

			cfg := &config.Config{}

			svc := service.New(mockLabRepo, mockBooking, mockRequest, nil, cfg, mocks.NewOtel())
			tt.setupMock(mockRequest)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Finalize(ctx, "request-1", tt.req)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
