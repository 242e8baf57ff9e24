package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"labdesk/config"
	"labdesk/infras/otel/mocks"
	officeMocks "labdesk/internal/domains/office/mocks"
	"labdesk/internal/domains/office/model"
	"labdesk/internal/domains/office/model/dto"
	"labdesk/internal/domains/office/service"
	cacheMocks "labdesk/shared/cache/mocks"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
)

func newOfficeService(t *testing.T) (service.Office, *officeMocks.MockOffice, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := officeMocks.NewMockOffice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestOfficeService_CreateOffice(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					InsertOffice(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "insert error",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					InsertOffice(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newOfficeService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.CreateOffice(ctx, dto.CreateOfficeRequest{Name: "HQ", City: "Jakarta"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOfficeService_GetOffices(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					CountOffices(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetOffices(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Office{{ID: "office-1", Name: "HQ", City: "Jakarta"}}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					CountOffices(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newOfficeService(t)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.GetOffices(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTotal != 0 {
					assert.Equal(t, tt.wantTotal, result.TotalData)
				}
			}
		})
	}
}

func TestOfficeService_UpdateOffice(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					ExistOffice(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					UpdateOffice(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "office not found",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					ExistOffice(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newOfficeService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.UpdateOffice(ctx, dto.UpdateOfficeRequest{Name: "HQ South"}, "office-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOfficeService_CreateFloor(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					ExistOffice(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					InsertFloor(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "parent office missing",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					ExistOffice(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newOfficeService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.CreateFloor(ctx, dto.CreateFloorRequest{OfficeID: "office-1", Name: "3rd Floor", Level: 3})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOfficeService_DeleteFloor(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					ExistFloor(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					DeleteFloor(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "floor not found",
			setupMock: func(repo *officeMocks.MockOffice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					ExistFloor(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newOfficeService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.DeleteFloor(context.Background(), "floor-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
