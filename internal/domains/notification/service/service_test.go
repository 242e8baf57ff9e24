package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"labdesk/config"
	kafkaMocks "labdesk/infras/kafka/mocks"
	"labdesk/infras/otel/mocks"
	notificationMocks "labdesk/internal/domains/notification/mocks"
	"labdesk/internal/domains/notification/model"
	"labdesk/internal/domains/notification/model/dto"
	"labdesk/internal/domains/notification/service"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
)

func TestNotificationService_Send(t *testing.T) {
	payload := dto.SendNotificationRequest{
		Event:           model.EventRequestApproved,
		RequestID:       "request-1",
		RequestNumber:   "REQ-20260830-1a2b3c4d",
		RequestorEmail:  "requestor@example.com",
		Division:        "platform",
		NumWorkstations: 6,
	}

	tests := []struct {
		name           string
		adminRecipient string
		payload        dto.SendNotificationRequest
		setupMock      func(repo *notificationMocks.MockNotification, broker *kafkaMocks.MockClient)
		wantErr        bool
	}{
		{
			name:           "requestor and admin both notified",
			adminRecipient: "facilities@example.com",
			payload:        payload,
			setupMock: func(repo *notificationMocks.MockNotification, broker *kafkaMocks.MockClient) {
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rows []model.Notification) error {
						assert.Len(t, rows, 2)
						assert.Equal(t, "requestor@example.com", rows[0].Recipient)
						assert.Equal(t, "facilities@example.com", rows[1].Recipient)

						return nil
					})

				broker.EXPECT().
					SendMessages(gomock.Any(), "notifications", gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:    "no admin recipient configured",
			payload: payload,
			setupMock: func(repo *notificationMocks.MockNotification, broker *kafkaMocks.MockClient) {
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rows []model.Notification) error {
						assert.Len(t, rows, 1)

						return nil
					})

				broker.EXPECT().
					SendMessages(gomock.Any(), "notifications", gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:           "no recipients resolved",
			adminRecipient: "",
			payload: dto.SendNotificationRequest{
				Event:         model.EventRequestRejected,
				RequestNumber: "REQ-20260830-1a2b3c4d",
			},
			setupMock: func(repo *notificationMocks.MockNotification, broker *kafkaMocks.MockClient) {},
			wantErr:   false,
		},
		{
			name:           "insert error",
			adminRecipient: "facilities@example.com",
			payload:        payload,
			setupMock: func(repo *notificationMocks.MockNotification, broker *kafkaMocks.MockClient) {
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
		{
			name:           "broker publish error",
			adminRecipient: "facilities@example.com",
			payload:        payload,
			setupMock: func(repo *notificationMocks.MockNotification, broker *kafkaMocks.MockClient) {
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(nil)

				broker.EXPECT().
					SendMessages(gomock.Any(), "notifications", gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := notificationMocks.NewMockNotification(ctrl)
			mockBroker := kafkaMocks.NewMockClient(ctrl)

			cfg := &config.Config{}
			cfg.Notification.Topic = "notifications"
			cfg.Notification.AdminRecipient = tt.adminRecipient

			svc := service.New(mockRepo, cfg, mockBroker, mocks.NewOtel())
			tt.setupMock(mockRepo, mockBroker)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Send(ctx, tt.payload)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockBroker := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockBroker, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Notification{
						{ID: "notification-1", Event: model.EventRequestApproved},
						{ID: "notification-2", Event: model.EventRequestApproved},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
