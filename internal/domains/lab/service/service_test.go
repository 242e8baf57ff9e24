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
	labMocks "labdesk/internal/domains/lab/mocks"
	"labdesk/internal/domains/lab/model"
	"labdesk/internal/domains/lab/model/dto"
	"labdesk/internal/domains/lab/service"
	cacheMocks "labdesk/shared/cache/mocks"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"
	gModel "labdesk/shared/model"
	"labdesk/shared/timezone"
)

func TestLabService_CreateAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateLabAllocationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateLabAllocationRequest{
				FloorID:           "floor-1",
				LabName:           "Lab A",
				TotalWorkstations: 40,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertAllocation(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "lab already provisioned on floor",
			req: dto.CreateLabAllocationRequest{
				FloorID:           "floor-1",
				LabName:           "Lab A",
				TotalWorkstations: 40,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "exist check error",
			req: dto.CreateLabAllocationRequest{
				FloorID:           "floor-1",
				LabName:           "Lab A",
				TotalWorkstations: 40,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.CreateLabAllocationRequest{
				FloorID:           "floor-1",
				LabName:           "Lab A",
				TotalWorkstations: 40,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertAllocation(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.CreateAllocation(ctx, tt.req)

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

func TestLabService_GetAllocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetLabAllocationsResponse
	}{
		{
			name: "cache hit",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					CountAllocations(gomock.Any(), gomock.Any()).
					Return(1, nil)

				allocations := []model.LabAllocation{
					{
						ID:                "test-id",
						FloorID:           "floor-1",
						LabName:           "Lab A",
						TotalWorkstations: 40,
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
							CreatedBy:  "test-user",
							ModifiedBy: "test-user",
						},
					},
				}

				mockRepo.EXPECT().
					GetAllocations(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(allocations, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetLabAllocationsResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					CountAllocations(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get allocations error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					CountAllocations(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAllocations(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAllocations(ctx, tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantResult.TotalData != 0 {
					assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
					assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
				}
			}
		})
	}
}

func TestLabService_GetCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	allocation := model.LabAllocation{
		ID:                "test-id",
		FloorID:           "floor-1",
		LabName:           "Lab A",
		TotalWorkstations: 40,
	}

	usages := []model.DivisionUsage{
		{
			ID:           "usage-1",
			FloorID:      "floor-1",
			LabName:      "Lab A",
			Division:     "platform",
			InUse:        12,
			AssetIDRange: "1-12",
		},
		{
			ID:           "usage-2",
			FloorID:      "floor-1",
			LabName:      "Lab A",
			Division:     "payments",
			InUse:        8,
			AssetIDRange: "13-20",
		},
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantInUse     int
		wantAvailable int
	}{
		{
			name: "successful get capacity",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllocation(gomock.Any(), "floor-1", "Lab A").
					Return(allocation, nil)

				mockRepo.EXPECT().
					GetUsages(gomock.Any(), "floor-1", "Lab A").
					Return(usages, nil)
			},
			wantErr:       false,
			wantInUse:     20,
			wantAvailable: 20,
		},
		{
			name: "lab not provisioned",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllocation(gomock.Any(), "floor-1", "Lab A").
					Return(model.LabAllocation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "allocation error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllocation(gomock.Any(), "floor-1", "Lab A").
					Return(model.LabAllocation{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "usage error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllocation(gomock.Any(), "floor-1", "Lab A").
					Return(allocation, nil)

				mockRepo.EXPECT().
					GetUsages(gomock.Any(), "floor-1", "Lab A").
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetCapacity(ctx, "floor-1", "Lab A")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantInUse, result.InUse)
				assert.Equal(t, tt.wantAvailable, result.Available)
				assert.Len(t, result.Usages, len(usages))
			}
		})
	}
}

func TestLabService_UpdateAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateLabAllocationRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateLabAllocationRequest{
				TotalWorkstations: 50,
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					UpdateAllocation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "allocation not found",
			req: dto.UpdateLabAllocationRequest{
				TotalWorkstations: 50,
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req: dto.UpdateLabAllocationRequest{
				TotalWorkstations: 50,
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					UpdateAllocation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateAllocation(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLabService_DeleteAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					DeleteAllocation(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "allocation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					ExistAllocation(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					DeleteAllocation(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.DeleteAllocation(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
