package service

import (
	"context"
	"fmt"
	"labdesk/config"
	"labdesk/infras/otel"
	"labdesk/internal/domains/lab/model"
	"labdesk/internal/domains/lab/model/dto"
	"labdesk/internal/domains/lab/repository"
	"labdesk/shared"
	"labdesk/shared/cache"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetLab     = "lab:get"
	cacheGetAllLabs = "lab:gets"
	cacheCountLabs  = "lab:count"
)

// Lab is the capacity-store service: admin CRUD for lab capacity records
// plus the usage views the allocation screens read. Usage mutation goes
// through the allocation engine, never through this service.
type Lab interface {
	CreateAllocation(ctx context.Context, req dto.CreateLabAllocationRequest) error
	GetAllocations(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLabAllocationsResponse, error)
	GetCapacity(ctx context.Context, floorID, labName string) (dto.LabCapacityResponse, error)
	UpdateAllocation(ctx context.Context, req dto.UpdateLabAllocationRequest, id string) error
	DeleteAllocation(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Lab
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Lab, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Lab {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CreateAllocation(ctx context.Context, req dto.CreateLabAllocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAllocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.ExistAllocation(ctx, labKeyFilter(req.FloorID, req.LabName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lab allocation exists")

		return fmt.Errorf("failed to check if lab allocation exists: %w", err)
	}

	if exists {
		return failure.Conflict("lab is already provisioned on this floor") //nolint:wrapcheck
	}

	if err = s.repo.InsertAllocation(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create lab allocation")

		return fmt.Errorf("failed to create lab allocation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLabs)
		shared.InvalidateCaches(c, s.cache, cacheCountLabs)
	}()

	return nil
}

func (s *serviceImpl) GetAllocations(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLabAllocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllocations")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLabs, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lab allocations")

		return res, nil
	}

	total, err := s.repo.CountAllocations(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count lab allocations")

		return res, fmt.Errorf("failed to count lab allocations: %w", err)
	}

	models, err := s.repo.GetAllocations(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lab allocations")

		return res, fmt.Errorf("failed to get lab allocations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lab allocations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetCapacity(ctx context.Context, floorID, labName string) (res dto.LabCapacityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCapacity")
	defer scope.End()
	defer scope.TraceIfError(err)

	alloc, err := s.repo.GetAllocation(ctx, floorID, labName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lab allocation")

		return res, fmt.Errorf("failed to get lab allocation: %w", err)
	}

	if alloc.ID == constant.Empty {
		return res, failure.LabNotProvisioned("lab has no capacity record") //nolint:wrapcheck
	}

	usages, err := s.repo.GetUsages(ctx, floorID, labName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get division usages")

		return res, fmt.Errorf("failed to get division usages: %w", err)
	}

	res.FromModels(alloc, usages)

	return res, nil
}

func (s *serviceImpl) UpdateAllocation(ctx context.Context, req dto.UpdateLabAllocationRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAllocation")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.AllocationTableName)

	exist, err := s.repo.ExistAllocation(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lab allocation exists")

		return fmt.Errorf("failed to check if lab allocation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("lab allocation not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.UpdateAllocation(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update lab allocation")

		return fmt.Errorf("failed to update lab allocation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLab, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete lab allocation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLabs)
		shared.InvalidateCaches(c, s.cache, cacheCountLabs)
	}()

	return nil
}

func (s *serviceImpl) DeleteAllocation(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAllocation")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.AllocationTableName)

	exist, err := s.repo.ExistAllocation(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lab allocation exists")

		return fmt.Errorf("failed to check if lab allocation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("lab allocation not found") //nolint:wrapcheck
	}

	if err := s.repo.DeleteAllocation(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete lab allocation")

		return fmt.Errorf("failed to delete lab allocation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLab, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete lab allocation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLabs)
		shared.InvalidateCaches(c, s.cache, cacheCountLabs)
	}()

	return nil
}

func labKeyFilter(floorID, labName string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFloorID, Operator: gDto.FilterOperatorEq, Value: floorID, Table: model.AllocationTableName},
			gDto.Filter{Field: model.FieldLabName, Operator: gDto.FilterOperatorEq, Value: labName, Table: model.AllocationTableName},
		},
	}
}
