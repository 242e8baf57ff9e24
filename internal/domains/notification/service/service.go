package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"labdesk/config"
	"labdesk/infras/kafka"
	"labdesk/infras/otel"
	"labdesk/internal/domains/notification/model"
	"labdesk/internal/domains/notification/model/dto"
	"labdesk/internal/domains/notification/repository"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

// Notification fans request outcomes out to the requestor and the
// operations mailbox: one audit row per recipient plus a broker publish.
// Callers treat delivery as fire-and-forget; a failed Send never undoes
// the allocation outcome it reports.
type Notification interface {
	Send(ctx context.Context, req dto.SendNotificationRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, req dto.SendNotificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	recipients := []string{req.RequestorEmail}
	if s.cfg.Notification.AdminRecipient != constant.Empty {
		recipients = append(recipients, s.cfg.Notification.AdminRecipient)
	}

	rows := make([]model.Notification, 0, len(recipients))

	for _, recipient := range recipients {
		if recipient == constant.Empty {
			continue
		}

		rows = append(rows, req.ToModel(recipient, user))
	}

	if len(rows) == 0 {
		log.Warn().Str("request_number", req.RequestNumber).Msg("no recipients resolved for notification")

		return nil
	}

	if err = s.repo.InsertBulk(ctx, rows); err != nil {
		log.Error().Err(err).Msg("failed to record notifications")

		return fmt.Errorf("failed to record notifications: %w", err)
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Notification.Topic, kafka.Message{
		Key:   req.RequestNumber,
		Value: req,
	}); err != nil {
		log.Error().Err(err).Str("request_number", req.RequestNumber).Msg("failed to publish notification event")

		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}
