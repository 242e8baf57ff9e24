package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"labdesk/config"
	"labdesk/infras/otel"
	"labdesk/infras/s3"
	labModel "labdesk/internal/domains/lab/model"
	labRepository "labdesk/internal/domains/lab/repository"
	officeModel "labdesk/internal/domains/office/model"
	officeRepository "labdesk/internal/domains/office/repository"
	"labdesk/internal/domains/report/model/dto"
	"labdesk/shared"
	"labdesk/shared/cache"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/timezone"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheFloorSummary    = "report:floor"
	cacheDivisionSummary = "report:division"
	cacheOfficeSummary   = "report:office"
)

// Report recomputes utilization roll-ups on demand by summing the lab
// rows; nothing here is stored. Summaries are cached with the shared
// TTL, so a freshly committed allocation can lag in reports by at most
// that window.
type Report interface {
	FloorSummary(ctx context.Context, floorID string) (dto.FloorSummaryResponse, error)
	DivisionSummary(ctx context.Context, division string) (dto.DivisionSummaryResponse, error)
	OfficeSummary(ctx context.Context, officeID string) (dto.OfficeSummaryResponse, error)
	ExportOfficeCSV(ctx context.Context, officeID string) (dto.ExportResponse, error)
}

type serviceImpl struct {
	labRepo    labRepository.Lab
	officeRepo officeRepository.Office
	cfg        *config.Config
	cache      cache.RedisCache
	s3         s3.S3
	otel       otel.Otel
}

func New(
	labRepo labRepository.Lab,
	officeRepo officeRepository.Office,
	cfg *config.Config,
	cache cache.RedisCache,
	s3 s3.S3,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		labRepo:    labRepo,
		officeRepo: officeRepo,
		cfg:        cfg,
		cache:      cache,
		s3:         s3,
		otel:       otel,
	}
}

func (s *serviceImpl) FloorSummary(ctx context.Context, floorID string) (res dto.FloorSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FloorSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheFloorSummary, floorID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.buildFloorSummary(ctx, floorID)
	if err != nil {
		return res, err
	}

	s.saveSummary(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) DivisionSummary(ctx context.Context, division string) (res dto.DivisionSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DivisionSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDivisionSummary, division)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	usages, err := s.labRepo.GetAllUsages(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: labModel.FieldDivision, Operator: gDto.FilterOperatorEq, Value: division, Table: labModel.UsageTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get division usages")

		return res, fmt.Errorf("failed to get division usages: %w", err)
	}

	res.Division = division
	res.Labs = make([]dto.DivisionLabUsage, len(usages))

	for i, usage := range usages {
		res.Labs[i] = dto.DivisionLabUsage{
			FloorID:      usage.FloorID,
			LabName:      usage.LabName,
			InUse:        usage.InUse,
			AssetIDRange: usage.AssetIDRange,
		}
		res.InUse += usage.InUse

		alloc, err := s.labRepo.GetAllocation(ctx, usage.FloorID, usage.LabName)
		if err != nil {
			log.Error().Err(err).Msg("failed to get lab allocation")

			return res, fmt.Errorf("failed to get lab allocation: %w", err)
		}

		res.TotalWorkstations += alloc.TotalWorkstations
	}

	res.Derive()

	s.saveSummary(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) OfficeSummary(ctx context.Context, officeID string) (res dto.OfficeSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OfficeSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheOfficeSummary, officeID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.buildOfficeSummary(ctx, officeID)
	if err != nil {
		return res, err
	}

	s.saveSummary(ctx, cacheKey, res)

	return res, nil
}

// ExportOfficeCSV snapshots the office utilization into a CSV object and
// returns its URL. The export always recomputes; a stale cached summary
// would defeat the point of an audit snapshot.
func (s *serviceImpl) ExportOfficeCSV(ctx context.Context, officeID string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportOfficeCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	summary, err := s.buildOfficeSummary(ctx, officeID)
	if err != nil {
		return res, err
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	records := [][]string{{"floor_id", "lab_name", "total_workstations", "in_use", "available"}}

	for _, floor := range summary.Floors {
		for _, lab := range floor.Labs {
			records = append(records, []string{
				lab.FloorID,
				lab.LabName,
				strconv.Itoa(lab.TotalWorkstations),
				strconv.Itoa(lab.InUse),
				strconv.Itoa(lab.Available),
			})
		}
	}

	if err = writer.WriteAll(records); err != nil {
		log.Error().Err(err).Msg("failed to encode utilization CSV")

		return res, fmt.Errorf("failed to encode utilization CSV: %w", err)
	}

	objectName := fmt.Sprintf("office_%s_utilization_%s.csv", officeID, timezone.Now().Format("20060102_150405"))

	url, err := s.s3.UploadBytes(
		ctx,
		s.cfg.External.S3.BucketName,
		s.cfg.External.S3.ExportDirectory,
		objectName,
		constant.ContentTypeCSV,
		buf.Bytes(),
	)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) buildFloorSummary(ctx context.Context, floorID string) (res dto.FloorSummaryResponse, err error) {
	res.FloorID = floorID

	floorFilter := func(table string) gDto.FilterGroup {
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: labModel.FieldFloorID, Operator: gDto.FilterOperatorEq, Value: floorID, Table: table},
			},
		}
	}

	allocations, err := s.labRepo.GetAllocations(ctx, gDto.QueryParams{}, floorFilter(labModel.AllocationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lab allocations")

		return res, fmt.Errorf("failed to get lab allocations: %w", err)
	}

	usages, err := s.labRepo.GetAllUsages(ctx, gDto.QueryParams{}, floorFilter(labModel.UsageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get division usages")

		return res, fmt.Errorf("failed to get division usages: %w", err)
	}

	inUseByLab := map[string]int{}
	for _, usage := range usages {
		inUseByLab[usage.LabName] += usage.InUse
	}

	res.Labs = make([]dto.LabUtilization, len(allocations))

	for i, alloc := range allocations {
		lab := dto.LabUtilization{
			FloorID: alloc.FloorID,
			LabName: alloc.LabName,
		}
		lab.TotalWorkstations = alloc.TotalWorkstations
		lab.InUse = inUseByLab[alloc.LabName]
		lab.Derive()

		res.Labs[i] = lab
		res.TotalWorkstations += lab.TotalWorkstations
		res.InUse += lab.InUse
	}

	res.Derive()

	return res, nil
}

func (s *serviceImpl) buildOfficeSummary(ctx context.Context, officeID string) (res dto.OfficeSummaryResponse, err error) {
	res.OfficeID = officeID

	floors, err := s.officeRepo.GetFloors(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: officeModel.FieldOfficeID, Operator: gDto.FilterOperatorEq, Value: officeID, Table: officeModel.FloorTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get office floors")

		return res, fmt.Errorf("failed to get office floors: %w", err)
	}

	res.Floors = make([]dto.FloorSummaryResponse, len(floors))

	for i, floor := range floors {
		summary, err := s.buildFloorSummary(ctx, floor.ID)
		if err != nil {
			return res, err
		}

		res.Floors[i] = summary
		res.TotalWorkstations += summary.TotalWorkstations
		res.InUse += summary.InUse
	}

	res.Derive()

	return res, nil
}

func (s *serviceImpl) saveSummary(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save report summary to cache")
		}
	}()
}
