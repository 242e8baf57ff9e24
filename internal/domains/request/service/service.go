package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"labdesk/config"
	"labdesk/infras/otel"
	"labdesk/infras/postgres"
	bookingDto "labdesk/internal/domains/booking/model/dto"
	bookingService "labdesk/internal/domains/booking/service"
	labModel "labdesk/internal/domains/lab/model"
	labRepository "labdesk/internal/domains/lab/repository"
	notificationModel "labdesk/internal/domains/notification/model"
	notificationDto "labdesk/internal/domains/notification/model/dto"
	notificationService "labdesk/internal/domains/notification/service"
	"labdesk/internal/domains/request/model"
	"labdesk/internal/domains/request/model/dto"
	"labdesk/internal/domains/request/repository"
	"labdesk/shared"
	"labdesk/shared/cache"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest     = "request:get"
	cacheGetAllRequests = "request:gets"
	cacheCountRequests  = "request:count"
)

// Request runs the request/approval workflow. Approve carries a
// labsAlreadyUpdated flag: the direct admin path applies the capacity
// increment itself, while the allocation engine path has already written
// capacity inside its own transaction and only needs the status flips.
type Request interface {
	Submit(ctx context.Context, req dto.SubmitRequestRequest) (dto.RequestResponse, error)
	Approve(ctx context.Context, requestID string, req dto.ApproveRequestRequest, labsAlreadyUpdated bool) error
	Reject(ctx context.Context, requestID string, req dto.RejectRequestRequest) error
	MarkPartiallyAllocated(ctx context.Context, requestID, notes string) error
	Get(ctx context.Context, id string) (dto.RequestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequestsResponse, error)
}

type serviceImpl struct {
	repo     repository.Request
	booking  bookingService.Booking
	labRepo  labRepository.Lab
	notifier notificationService.Notification
	db       *postgres.Connection
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Request,
	booking bookingService.Booking,
	labRepo labRepository.Lab,
	notifier notificationService.Notification,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Request {
	return &serviceImpl{
		repo:     repo,
		booking:  booking,
		labRepo:  labRepo,
		notifier: notifier,
		db:       db,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	requestorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	requestorEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if len(req.SeatNumbers) > 0 && (req.LabID == constant.Empty || req.FloorID == constant.Empty || req.LabName == constant.Empty) {
		return res, failure.BadRequestFromString("explicit seat numbers require lab_id, floor_id and lab_name") //nolint:wrapcheck
	}

	request, err := req.ToModel(requestorID, requestorEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse request submission")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid requested allocation date format: %v", err)) //nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, request); err != nil {
			log.Error().Err(err).Msg("failed to create request")

			return fmt.Errorf("failed to create request: %w", err)
		}

		if len(req.SeatNumbers) == 0 {
			return nil
		}

		return s.booking.CreateBookingsTx(ctx, tx, bookingDto.CreateBookingsRequest{
			RequestID:   request.ID,
			LabID:       req.LabID,
			FloorID:     req.FloorID,
			LabName:     req.LabName,
			SeatNumbers: req.SeatNumbers,
			Division:    req.Division,
			BookingDate: req.RequestedAllocationDate,
		})
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.invalidateListingCaches(ctx)

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, requestID string, req dto.ApproveRequestRequest, labsAlreadyUpdated bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	approverID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := s.getForTransition(ctx, requestID)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(struct{}{}, approverID)
	fields[model.FieldStatus] = model.StatusApproved
	if req.Notes != constant.Empty {
		fields[model.FieldAdminNotes] = req.Notes
	}

	filter := shared.FilterByID(requestID, model.FieldID, model.TableName)

	if labsAlreadyUpdated {
		if err = s.repo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Msg("failed to approve request")

			return fmt.Errorf("failed to approve request: %w", err)
		}

		if err = s.booking.ApproveByRequest(ctx, requestID); err != nil {
			return err
		}
	} else {
		if request.FloorID == constant.Empty || request.LabName == constant.Empty {
			return failure.BadRequestFromString("request has no target lab; finalize it through the allocation endpoint") //nolint:wrapcheck
		}

		err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
			key := labModel.UsageKey{
				FloorID:  request.FloorID,
				LabName:  request.LabName,
				Division: request.Division,
			}

			if err := s.labRepo.ApplyUsageDelta(ctx, tx, key, request.NumWorkstations, constant.Empty, approverID); err != nil {
				return err
			}

			if err := s.booking.ApproveByRequestTx(ctx, tx, requestID); err != nil {
				return err
			}

			return s.repo.UpdateTx(ctx, tx, fields, filter)
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	s.invalidateRequestCaches(ctx, requestID)

	s.notify(ctx, notificationDto.SendNotificationRequest{
		Event:           notificationModel.EventRequestApproved,
		RequestID:       request.ID,
		RequestNumber:   request.RequestNumber,
		RequestorEmail:  request.RequestorEmail,
		Division:        request.Division,
		NumWorkstations: request.NumWorkstations,
		Floor:           request.FloorID,
		LabName:         request.LabName,
		ApprovalNotes:   req.Notes,
	})

	return nil
}

// Reject never touches capacity. Re-rejecting a terminal request fails
// with StaleState instead of mutating anything, so retries stay safe.
func (s *serviceImpl) Reject(ctx context.Context, requestID string, req dto.RejectRequestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	approverID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := s.getForTransition(ctx, requestID)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(struct{}{}, approverID)
	fields[model.FieldStatus] = model.StatusRejected
	fields[model.FieldAdminNotes] = req.Reason

	if err = s.repo.Update(ctx, fields, shared.FilterByID(requestID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject request")

		return fmt.Errorf("failed to reject request: %w", err)
	}

	if err = s.booking.RejectByRequest(ctx, requestID, req.Reason); err != nil {
		return err
	}

	s.invalidateRequestCaches(ctx, requestID)

	s.notify(ctx, notificationDto.SendNotificationRequest{
		Event:           notificationModel.EventRequestRejected,
		RequestID:       request.ID,
		RequestNumber:   request.RequestNumber,
		RequestorEmail:  request.RequestorEmail,
		Division:        request.Division,
		NumWorkstations: request.NumWorkstations,
		RejectionReason: req.Reason,
	})

	return nil
}

func (s *serviceImpl) MarkPartiallyAllocated(ctx context.Context, requestID, notes string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPartiallyAllocated")
	defer scope.End()
	defer scope.TraceIfError(err)

	approverID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := s.getForTransition(ctx, requestID)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(struct{}{}, approverID)
	fields[model.FieldStatus] = model.StatusPartiallyAllocated
	if notes != constant.Empty {
		fields[model.FieldAdminNotes] = notes
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(requestID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark request partially allocated")

		return fmt.Errorf("failed to mark request partially allocated: %w", err)
	}

	s.invalidateRequestCaches(ctx, requestID)

	s.notify(ctx, notificationDto.SendNotificationRequest{
		Event:           notificationModel.EventRequestPartiallyAllocated,
		RequestID:       request.ID,
		RequestNumber:   request.RequestNumber,
		RequestorEmail:  request.RequestorEmail,
		Division:        request.Division,
		NumWorkstations: request.NumWorkstations,
		ApprovalNotes:   notes,
	})

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for request")

		return res, nil
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("request not found") //nolint:wrapcheck
	}

	res.FromModel(request)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRequests, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for requests")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count requests")

		return res, fmt.Errorf("failed to count requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save requests to cache")
		}
	}()

	return res, nil
}

// getForTransition loads the request and rejects transitions out of a
// terminal state.
func (s *serviceImpl) getForTransition(ctx context.Context, requestID string) (model.Request, error) {
	request, err := s.repo.Get(ctx, shared.FilterByID(requestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get request")

		return request, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == constant.Empty {
		return request, failure.NotFound("request not found") //nolint:wrapcheck
	}

	if request.IsTerminal() {
		return request, failure.StaleState(fmt.Sprintf("request %s is already %s", request.RequestNumber, request.Status)) //nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) notify(ctx context.Context, payload notificationDto.SendNotificationRequest) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.Send(c, payload); err != nil {
			log.Error().Err(err).Str("request_number", payload.RequestNumber).Msg("failed to send request notification")
		}
	}()
}

func (s *serviceImpl) invalidateRequestCaches(ctx context.Context, requestID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRequest, requestID)); err != nil {
			log.Error().Err(err).Msg("failed to delete request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequests)
		shared.InvalidateCaches(c, s.cache, cacheCountRequests)
	}()
}

func (s *serviceImpl) invalidateListingCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequests)
		shared.InvalidateCaches(c, s.cache, cacheCountRequests)
	}()
}
