package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"labdesk/config"
	"labdesk/infras/otel"
	"labdesk/internal/domains/booking/model"
	"labdesk/internal/domains/booking/model/dto"
	"labdesk/internal/domains/booking/repository"
	"labdesk/shared"
	"labdesk/shared/cache"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBookings = "booking:gets"
	cacheCountBookings  = "booking:count"
)

// Booking is the seat-booking ledger: pending rows are created per seat,
// then flipped approved or rejected per request. The ledger checks for
// an existing active booking on each target seat before creating a new
// one; the partial unique index in the store backs the check under
// concurrency.
type Booking interface {
	CreateBookings(ctx context.Context, req dto.CreateBookingsRequest) error
	CreateBookingsTx(ctx context.Context, tx *sqlx.Tx, req dto.CreateBookingsRequest) error
	ApproveByRequest(ctx context.Context, requestID string) error
	ApproveByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID string) error
	RejectByRequest(ctx context.Context, requestID, reason string) error
	QueryActiveByLab(ctx context.Context, labID, floorID string) ([]dto.BookingResponse, error)
	GetByRequest(ctx context.Context, requestID string) ([]dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CreateBookings(ctx context.Context, req dto.CreateBookingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.createBookings(ctx, nil, req)
}

func (s *serviceImpl) CreateBookingsTx(ctx context.Context, tx *sqlx.Tx, req dto.CreateBookingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBookingsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.createBookings(ctx, tx, req)
}

func (s *serviceImpl) createBookings(ctx context.Context, tx *sqlx.Tx, req dto.CreateBookingsRequest) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for _, seat := range req.SeatNumbers {
		occupied, err := s.repo.Exist(ctx, activeSeatFilter(req.LabID, req.FloorID, seat))
		if err != nil {
			log.Error().Err(err).Msg("failed to check for active booking on seat")

			return fmt.Errorf("failed to check for active booking on seat: %w", err)
		}

		if occupied {
			return failure.SeatConflict(fmt.Sprintf("seat %d in lab %s is already booked", seat, req.LabName)) //nolint:wrapcheck
		}
	}

	bookings, err := req.ToModels(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid booking date format: %v", err)) //nolint:wrapcheck
	}

	if tx != nil {
		err = s.repo.InsertBulkTx(ctx, tx, bookings)
	} else {
		err = s.repo.InsertBulk(ctx, bookings)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create seat bookings")

		return fmt.Errorf("failed to create seat bookings: %w", err)
	}

	s.invalidateListingCaches(ctx)

	return nil
}

func (s *serviceImpl) ApproveByRequest(ctx context.Context, requestID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApproveByRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transitionByRequest(ctx, nil, requestID, model.StatusApproved, constant.Empty)
}

func (s *serviceImpl) ApproveByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApproveByRequestTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transitionByRequest(ctx, tx, requestID, model.StatusApproved, constant.Empty)
}

func (s *serviceImpl) RejectByRequest(ctx context.Context, requestID, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectByRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transitionByRequest(ctx, nil, requestID, model.StatusRejected, reason)
}

// transitionByRequest flips the request's pending bookings to the target
// status. Only pending rows move: already-terminal bookings stay put.
func (s *serviceImpl) transitionByRequest(ctx context.Context, tx *sqlx.Tx, requestID, status, remark string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus: status,
	}
	if remark != "" {
		fields[model.FieldRemark] = remark
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRequestID, Operator: gDto.FilterOperatorEq, Value: requestID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusPending, Table: model.TableName, ArgName: "status_pending"},
		},
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	for col, val := range fields {
		updatedFields[col] = val
	}

	var err error
	if tx != nil {
		err = s.repo.UpdateTx(ctx, tx, updatedFields, filter)
	} else {
		err = s.repo.Update(ctx, updatedFields, filter)
	}

	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("failed to transition seat bookings")

		return fmt.Errorf("failed to transition seat bookings: %w", err)
	}

	s.invalidateListingCaches(ctx)

	return nil
}

func (s *serviceImpl) QueryActiveByLab(ctx context.Context, labID, floorID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueryActiveByLab")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldLabID, Operator: gDto.FilterOperatorEq, Value: labID, Table: model.TableName},
			gDto.Filter{Field: model.FieldFloorID, Operator: gDto.FilterOperatorEq, Value: floorID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: model.ActiveStatuses, Table: model.TableName},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSeatNumber, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings for lab")

		return nil, fmt.Errorf("failed to get active bookings for lab: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetByRequest(ctx context.Context, requestID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRequestID, Operator: gDto.FilterOperatorEq, Value: requestID, Table: model.TableName},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSeatNumber, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for request")

		return nil, fmt.Errorf("failed to get bookings for request: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for seat bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seat bookings")

		return res, fmt.Errorf("failed to count seat bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seat bookings")

		return res, fmt.Errorf("failed to get seat bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seat bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateListingCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
		shared.InvalidateCaches(c, s.cache, cacheCountBookings)
	}()
}

func activeSeatFilter(labID, floorID string, seatNumber int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldLabID, Operator: gDto.FilterOperatorEq, Value: labID, Table: model.TableName},
			gDto.Filter{Field: model.FieldFloorID, Operator: gDto.FilterOperatorEq, Value: floorID, Table: model.TableName},
			gDto.Filter{Field: model.FieldSeatNumber, Operator: gDto.FilterOperatorEq, Value: seatNumber, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: model.ActiveStatuses, Table: model.TableName},
		},
	}
}
