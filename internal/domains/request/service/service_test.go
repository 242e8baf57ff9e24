package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"labdesk/config"
	"labdesk/infras/otel/mocks"
	bookingServiceMocks "labdesk/internal/domains/booking/service/mocks"
	labMocks "labdesk/internal/domains/lab/mocks"
	notificationServiceMocks "labdesk/internal/domains/notification/service/mocks"
	requestMocks "labdesk/internal/domains/request/mocks"
	"labdesk/internal/domains/request/model"
	"labdesk/internal/domains/request/model/dto"
	"labdesk/internal/domains/request/service"
	cacheMocks "labdesk/shared/cache/mocks"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"
	"labdesk/shared/timezone"
)

type requestServiceMocks struct {
	repo     *requestMocks.MockRequest
	booking  *bookingServiceMocks.MockBooking
	labRepo  *labMocks.MockLab
	notifier *notificationServiceMocks.MockNotification
	cache    *cacheMocks.MockRedisCache
}

func newRequestService(ctrl *gomock.Controller) (service.Request, requestServiceMocks) {
	m := requestServiceMocks{
		repo:     requestMocks.NewMockRequest(ctrl),
		booking:  bookingServiceMocks.NewMockBooking(ctrl),
		labRepo:  labMocks.NewMockLab(ctrl),
		notifier: notificationServiceMocks.NewMockNotification(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.booking, m.labRepo, m.notifier, nil, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func pendingRequest() model.Request {
	return model.Request{
		ID:                      "request-1",
		RequestNumber:           "REQ-20260830-1a2b3c4d",
		RequestorID:             "employee-1",
		RequestorEmail:          "requestor@example.com",
		Division:                "platform",
		NumWorkstations:         6,
		FloorID:                 "floor-1",
		LabName:                 "Lab A",
		Status:                  model.StatusPending,
		RequestedAllocationDate: timezone.Now(),
	}
}

func TestRequestService_Approve(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m requestServiceMocks)
		req       dto.ApproveRequestRequest
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful approval after allocation",
			req:  dto.ApproveRequestRequest{Notes: "allocated by engine"},
			setupMock: func(m requestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRequest(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusApproved, fields[model.FieldStatus])
						assert.Equal(t, "allocated by engine", fields[model.FieldAdminNotes])

						return nil
					})

				m.booking.EXPECT().
					ApproveByRequest(gomock.Any(), "request-1").
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "request not found",
			req:  dto.ApproveRequestRequest{},
			setupMock: func(m requestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Request{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "request already approved",
			req:  dto.ApproveRequestRequest{},
			setupMock: func(m requestServiceMocks) {
				approved := pendingRequest()
				approved.Status = model.StatusApproved

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approved, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "update error",
			req:  dto.ApproveRequestRequest{},
			setupMock: func(m requestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRequest(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
		{
			name: "booking transition error",
			req:  dto.ApproveRequestRequest{},
			setupMock: func(m requestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRequest(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.booking.EXPECT().
					ApproveByRequest(gomock.Any(), "request-1").
					Return(errors.New("booking error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRequestService(ctrl)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Approve(ctx, "request-1", tt.req, true)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestService_ApproveDirectNeedsTargetLab(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRequestService(ctrl)

	request := pendingRequest()
	request.FloorID = ""
	request.LabName = ""

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(request, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	err := svc.Approve(ctx, "request-1", dto.ApproveRequestRequest{}, false)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRequestService_Reject(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m requestServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful rejection",
			setupMock: func(m requestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRequest(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])
						assert.Equal(t, "no capacity this quarter", fields[model.FieldAdminNotes])

						return nil
					})

				m.booking.EXPECT().
					RejectByRequest(gomock.Any(), "request-1", "no capacity this quarter").
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "rejecting a terminal request",
			setupMock: func(m requestServiceMocks) {
				rejected := pendingRequest()
				rejected.Status = model.StatusRejected

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rejected, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "partially allocated request can still be rejected",
			setupMock: func(m requestServiceMocks) {
				partial := pendingRequest()
				partial.Status = model.StatusPartiallyAllocated

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(partial, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.booking.EXPECT().
					RejectByRequest(gomock.Any(), "request-1", "no capacity this quarter").
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "update error",
			setupMock: func(m requestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRequest(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRequestService(ctrl)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Reject(ctx, "request-1", dto.RejectRequestRequest{Reason: "no capacity this quarter"})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestService_MarkPartiallyAllocated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRequestService(ctrl)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(pendingRequest(), nil)

	m.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusPartiallyAllocated, fields[model.FieldStatus])
			assert.Equal(t, "4 of 6 seats placed", fields[model.FieldAdminNotes])

			return nil
		})

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	err := svc.MarkPartiallyAllocated(ctx, "request-1", "4 of 6 seats placed")

	assert.NoError(t, err)
}

func TestRequestService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(m requestServiceMocks)
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "request-1",
			setupMock: func(m requestServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "request-1",
			setupMock: func(m requestServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRequest(), nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "request-1",
		},
		{
			name: "request not found",
			id:   "nonexistent-id",
			setupMock: func(m requestServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Request{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "request-1",
			setupMock: func(m requestServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Request{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRequestService(ctrl)
			tt.setupMock(m)

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestRequestService_GetAll(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m requestServiceMocks)
		wantErr    bool
		wantResult dto.GetRequestsResponse
	}{
		{
			name: "cache miss, successful get from db",
			setupMock: func(m requestServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(11, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Request{pendingRequest()}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetRequestsResponse{
				TotalData: 11,
				TotalPage: 2,
			},
		},
		{
			name: "count error",
			setupMock: func(m requestServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRequestService(ctrl)
			tt.setupMock(m)

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}
