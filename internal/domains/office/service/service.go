package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"labdesk/config"
	"labdesk/infras/otel"
	"labdesk/internal/domains/office/model"
	"labdesk/internal/domains/office/model/dto"
	"labdesk/internal/domains/office/repository"
	"labdesk/shared"
	"labdesk/shared/cache"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllOffices = "office:gets"
	cacheGetAllFloors  = "floor:gets"
)

// Office manages the location data sources the allocation screens and
// the reporter read: offices and the floors inside them.
type Office interface {
	CreateOffice(ctx context.Context, req dto.CreateOfficeRequest) error
	GetOffices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOfficesResponse, error)
	UpdateOffice(ctx context.Context, req dto.UpdateOfficeRequest, id string) error
	DeleteOffice(ctx context.Context, id string) error

	CreateFloor(ctx context.Context, req dto.CreateFloorRequest) error
	GetFloors(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFloorsResponse, error)
	UpdateFloor(ctx context.Context, req dto.UpdateFloorRequest, id string) error
	DeleteFloor(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Office
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Office, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Office {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CreateOffice(ctx context.Context, req dto.CreateOfficeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOffice")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertOffice(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create office")

		return fmt.Errorf("failed to create office: %w", err)
	}

	s.invalidate(ctx, cacheGetAllOffices)

	return nil
}

func (s *serviceImpl) GetOffices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOfficesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOffices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOffices, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountOffices(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count offices")

		return res, fmt.Errorf("failed to count offices: %w", err)
	}

	models, err := s.repo.GetOffices(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offices")

		return res, fmt.Errorf("failed to get offices: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save offices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateOffice(ctx context.Context, req dto.UpdateOfficeRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateOffice")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.OfficeTableName)

	exist, err := s.repo.ExistOffice(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if office exists")

		return fmt.Errorf("failed to check if office exists: %w", err)
	}

	if !exist {
		return failure.NotFound("office not found") //nolint:wrapcheck
	}

	if err := s.repo.UpdateOffice(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update office")

		return fmt.Errorf("failed to update office: %w", err)
	}

	s.invalidate(ctx, cacheGetAllOffices)

	return nil
}

func (s *serviceImpl) DeleteOffice(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteOffice")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.OfficeTableName)

	exist, err := s.repo.ExistOffice(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if office exists")

		return fmt.Errorf("failed to check if office exists: %w", err)
	}

	if !exist {
		return failure.NotFound("office not found") //nolint:wrapcheck
	}

	if err := s.repo.DeleteOffice(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete office")

		return fmt.Errorf("failed to delete office: %w", err)
	}

	s.invalidate(ctx, cacheGetAllOffices)

	return nil
}

func (s *serviceImpl) CreateFloor(ctx context.Context, req dto.CreateFloorRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFloor")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.ExistOffice(ctx, shared.FilterByID(req.OfficeID, model.FieldID, model.OfficeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if office exists")

		return fmt.Errorf("failed to check if office exists: %w", err)
	}

	if !exist {
		return failure.NotFound("office not found") //nolint:wrapcheck
	}

	if err = s.repo.InsertFloor(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create floor")

		return fmt.Errorf("failed to create floor: %w", err)
	}

	s.invalidate(ctx, cacheGetAllFloors)

	return nil
}

func (s *serviceImpl) GetFloors(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFloorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFloors")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFloors, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountFloors(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count floors")

		return res, fmt.Errorf("failed to count floors: %w", err)
	}

	models, err := s.repo.GetFloors(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floors")

		return res, fmt.Errorf("failed to get floors: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save floors to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateFloor(ctx context.Context, req dto.UpdateFloorRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateFloor")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.FloorTableName)

	exist, err := s.repo.ExistFloor(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if floor exists")

		return fmt.Errorf("failed to check if floor exists: %w", err)
	}

	if !exist {
		return failure.NotFound("floor not found") //nolint:wrapcheck
	}

	if err := s.repo.UpdateFloor(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update floor")

		return fmt.Errorf("failed to update floor: %w", err)
	}

	s.invalidate(ctx, cacheGetAllFloors)

	return nil
}

func (s *serviceImpl) DeleteFloor(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteFloor")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.FloorTableName)

	exist, err := s.repo.ExistFloor(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if floor exists")

		return fmt.Errorf("failed to check if floor exists: %w", err)
	}

	if !exist {
		return failure.NotFound("floor not found") //nolint:wrapcheck
	}

	if err := s.repo.DeleteFloor(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete floor")

		return fmt.Errorf("failed to delete floor: %w", err)
	}

	s.invalidate(ctx, cacheGetAllFloors)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, prefix string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, prefix)
	}()
}
