package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"labdesk/config"
	"labdesk/infras/otel/mocks"
	s3Mocks "labdesk/infras/s3/mocks"
	labMocks "labdesk/internal/domains/lab/mocks"
	labModel "labdesk/internal/domains/lab/model"
	officeMocks "labdesk/internal/domains/office/mocks"
	officeModel "labdesk/internal/domains/office/model"
	"labdesk/internal/domains/report/service"
	cacheMocks "labdesk/shared/cache/mocks"
	"labdesk/shared/constant"
)

type reportServiceMocks struct {
	labRepo    *labMocks.MockLab
	officeRepo *officeMocks.MockOffice
	cache      *cacheMocks.MockRedisCache
	s3         *s3Mocks.MockS3
}

func newReportService(t *testing.T) (service.Report, reportServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := reportServiceMocks{
		labRepo:    labMocks.NewMockLab(ctrl),
		officeRepo: officeMocks.NewMockOffice(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		s3:         s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "labdesk-exports"
	cfg.External.S3.ExportDirectory = "reports"

	svc := service.New(m.labRepo, m.officeRepo, cfg, m.cache, m.s3, mocks.NewOtel())

	return svc, m
}

func floorAllocations() []labModel.LabAllocation {
	return []labModel.LabAllocation{
		{ID: "alloc-1", FloorID: "floor-1", LabName: "Lab A", TotalWorkstations: 40},
		{ID: "alloc-2", FloorID: "floor-1", LabName: "Lab B", TotalWorkstations: 20},
	}
}

func floorUsages() []labModel.DivisionUsage {
	return []labModel.DivisionUsage{
		{ID: "usage-1", FloorID: "floor-1", LabName: "Lab A", Division: "platform", InUse: 12},
		{ID: "usage-2", FloorID: "floor-1", LabName: "Lab A", Division: "payments", InUse: 8},
		{ID: "usage-3", FloorID: "floor-1", LabName: "Lab B", Division: "platform", InUse: 5},
	}
}

func TestReportService_FloorSummary(t *testing.T) {
	t.Run("cache miss computes the roll-up", func(t *testing.T) {
		svc, m := newReportService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.labRepo.EXPECT().
			GetAllocations(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorAllocations(), nil)

		m.labRepo.EXPECT().
			GetAllUsages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorUsages(), nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.FloorSummary(context.Background(), "floor-1")

		assert.NoError(t, err)
		assert.Equal(t, "floor-1", res.FloorID)
		assert.Equal(t, 60, res.TotalWorkstations)
		assert.Equal(t, 25, res.InUse)
		assert.Equal(t, 35, res.Available)

		assert.Len(t, res.Labs, 2)
		assert.Equal(t, 20, res.Labs[0].InUse)
		assert.Equal(t, 20, res.Labs[0].Available)
		assert.Equal(t, 5, res.Labs[1].InUse)
		assert.Equal(t, 15, res.Labs[1].Available)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, m := newReportService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.FloorSummary(context.Background(), "floor-1")
		assert.NoError(t, err)
	})

	t.Run("allocation error", func(t *testing.T) {
		svc, m := newReportService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.labRepo.EXPECT().
			GetAllocations(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.FloorSummary(context.Background(), "floor-1")
		assert.Error(t, err)
	})
}

func TestReportService_DivisionSummary(t *testing.T) {
	svc, m := newReportService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.labRepo.EXPECT().
		GetAllUsages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]labModel.DivisionUsage{
			{FloorID: "floor-1", LabName: "Lab A", Division: "platform", InUse: 12, AssetIDRange: "1-12"},
			{FloorID: "floor-2", LabName: "Lab C", Division: "platform", InUse: 6},
		}, nil)

	m.labRepo.EXPECT().
		GetAllocation(gomock.Any(), "floor-1", "Lab A").
		Return(labModel.LabAllocation{TotalWorkstations: 40}, nil)

	m.labRepo.EXPECT().
		GetAllocation(gomock.Any(), "floor-2", "Lab C").
		Return(labModel.LabAllocation{TotalWorkstations: 10}, nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.DivisionSummary(context.Background(), "platform")

	assert.NoError(t, err)
	assert.Equal(t, "platform", res.Division)
	assert.Equal(t, 18, res.InUse)
	assert.Equal(t, 50, res.TotalWorkstations)
	assert.Equal(t, 32, res.Available)
	assert.Len(t, res.Labs, 2)
	assert.Equal(t, "1-12", res.Labs[0].AssetIDRange)
}

func TestReportService_ExportOfficeCSV(t *testing.T) {
	t.Run("uploads the snapshot", func(t *testing.T) {
		svc, m := newReportService(t)

		m.officeRepo.EXPECT().
			GetFloors(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]officeModel.Floor{{ID: "floor-1", OfficeID: "office-1", Name: "3rd Floor"}}, nil)

		m.labRepo.EXPECT().
			GetAllocations(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorAllocations(), nil)

		m.labRepo.EXPECT().
			GetAllUsages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(floorUsages(), nil)

		m.s3.EXPECT().
			UploadBytes(gomock.Any(), "labdesk-exports", "reports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, objectName, _ string, data []byte) (string, error) {
				assert.True(t, strings.HasPrefix(objectName, "office_office-1_utilization_"))

				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				assert.Equal(t, "floor_id,lab_name,total_workstations,in_use,available", lines[0])
				assert.Len(t, lines, 3)

				return "https://storage.example.com/reports/export.csv", nil
			})

		res, err := svc.ExportOfficeCSV(context.Background(), "office-1")

		assert.NoError(t, err)
		assert.Equal(t, "https://storage.example.com/reports/export.csv", res.URL)
	})

	t.Run("upload error", func(t *testing.T) {
		svc, m := newReportService(t)

		m.officeRepo.EXPECT().
			GetFloors(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]officeModel.Floor{}, nil)

		m.s3.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		_, err := svc.ExportOfficeCSV(context.Background(), "office-1")
		assert.Error(t, err)
	})
}
