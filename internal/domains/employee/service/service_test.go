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
	employeeMocks "labdesk/internal/domains/employee/mocks"
	"labdesk/internal/domains/employee/model"
	"labdesk/internal/domains/employee/model/dto"
	"labdesk/internal/domains/employee/service"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"
)

func newEmployeeService(t *testing.T) (service.Employee, *employeeMocks.MockEmployee) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := employeeMocks.NewMockEmployee(ctrl)

	cfg := &config.Config{}

	return service.New(mockRepo, cfg, mocks.NewOtel()), mockRepo
}

func TestEmployeeService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *employeeMocks.MockEmployee)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			setupMock: func(repo *employeeMocks.MockEmployee) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Employee{ID: "employee-1", Email: "worker@example.com", Role: "employee"}, nil)
			},
			wantErr: false,
		},
		{
			name: "employee not found",
			setupMock: func(repo *employeeMocks.MockEmployee) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Employee{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *employeeMocks.MockEmployee) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Employee{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newEmployeeService(t)
			tt.setupMock(mockRepo)

			result, err := svc.Get(context.Background(), "employee-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "employee-1", result.ID)
			}
		})
	}
}

func TestEmployeeService_GetAll(t *testing.T) {
	svc, mockRepo := newEmployeeService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Employee{{ID: "employee-1"}}, nil)

	result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)
	assert.Equal(t, 1, result.TotalPage)
}

func TestEmployeeService_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *employeeMocks.MockEmployee)
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func(repo *employeeMocks.MockEmployee) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "employee not found",
			setupMock: func(repo *employeeMocks.MockEmployee) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newEmployeeService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Update(ctx, dto.UpdateEmployeeRequest{Division: "payments"}, "employee-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmployeeService_Deactivate(t *testing.T) {
	svc, mockRepo := newEmployeeService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, fields[model.FieldActive])

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	err := svc.Deactivate(ctx, "employee-1")

	assert.NoError(t, err)
}
