package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"labdesk/config"
	"labdesk/infras/otel"
	"labdesk/infras/postgres"
	"labdesk/internal/domains/allocation/model/dto"
	bookingDto "labdesk/internal/domains/booking/model/dto"
	bookingService "labdesk/internal/domains/booking/service"
	labModel "labdesk/internal/domains/lab/model"
	labRepository "labdesk/internal/domains/lab/repository"
	requestModel "labdesk/internal/domains/request/model"
	requestDto "labdesk/internal/domains/request/model/dto"
	requestService "labdesk/internal/domains/request/service"
	"labdesk/shared/assetrange"
	"labdesk/shared/constant"
	"labdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Allocation finalizes approved-to-be requests against real labs. All
// capacity increments and seat bookings of one finalization commit in a
// single database transaction: a CapacityExceeded, LabNotProvisioned or
// SeatConflict on any line rolls the whole finalization back.
type Allocation interface {
	Finalize(ctx context.Context, requestID string, req dto.FinalizeAllocationRequest) error
	CommitPartial(ctx context.Context, requestID string, req dto.CommitPartialRequest) error
}

type serviceImpl struct {
	labRepo labRepository.Lab
	booking bookingService.Booking
	request requestService.Request
	db      *postgres.Connection
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	labRepo labRepository.Lab,
	booking bookingService.Booking,
	request requestService.Request,
	db *postgres.Connection,
	cfg *config.Config,
	otel otel.Otel,
) Allocation {
	return &serviceImpl{
		labRepo: labRepo,
		booking: booking,
		request: request,
		db:      db,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Finalize(ctx context.Context, requestID string, req dto.FinalizeAllocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finalize")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.commitAllocations(ctx, requestID, req.Allocations); err != nil {
		return err
	}

	return s.request.Approve(ctx, requestID, requestDto.ApproveRequestRequest{Notes: req.Notes}, true)
}

func (s *serviceImpl) CommitPartial(ctx context.Context, requestID string, req dto.CommitPartialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CommitPartial")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.commitAllocations(ctx, requestID, req.Allocations); err != nil {
		return err
	}

	return s.request.MarkPartiallyAllocated(ctx, requestID, req.Notes)
}

// commitAllocations groups the lines, then writes every capacity
// increment and every explicit-seat booking inside one transaction.
func (s *serviceImpl) commitAllocations(ctx context.Context, requestID string, allocations []dto.Allocation) (request requestDto.RequestResponse, err error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err = s.request.Get(ctx, requestID)
	if err != nil {
		return request, err //nolint:wrapcheck
	}

	if request.Status == requestModel.StatusApproved || request.Status == requestModel.StatusRejected {
		return request, failure.StaleState(fmt.Sprintf("request %s is already %s", request.RequestNumber, request.Status)) //nolint:wrapcheck
	}

	groups := GroupAllocations(allocations)

	for _, group := range groups {
		if group.SeatCount <= 0 {
			return request, failure.BadRequestFromString(fmt.Sprintf("allocation for lab %s has no seats", group.Key.LabName)) //nolint:wrapcheck
		}
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, group := range groups {
			if err := s.labRepo.ApplyUsageDelta(ctx, tx, group.Key, group.SeatCount, group.AssetIDRange, actor); err != nil {
				return err
			}
		}

		for _, allocation := range allocations {
			if len(allocation.SeatNumbers) == 0 {
				continue
			}

			err := s.booking.CreateBookingsTx(ctx, tx, bookingDto.CreateBookingsRequest{
				RequestID:   requestID,
				LabID:       allocation.LabID,
				FloorID:     allocation.FloorID,
				LabName:     allocation.LabName,
				SeatNumbers: allocation.SeatNumbers,
				Division:    allocation.Division,
				BookingDate: request.RequestedAllocationDate,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("allocation commit rolled back")

		return request, err //nolint:wrapcheck
	}

	return request, nil
}

// AllocationGroup is the per-(lab, division) merge of the admin's lines:
// seat counts summed, asset-ID fragments joined in input order.
type AllocationGroup struct {
	Key          labModel.UsageKey
	SeatCount    int
	AssetIDRange string
}

// GroupAllocations merges lines that target the same division in the
// same lab so each (lab, division) pair gets exactly one usage delta.
// Group order follows first appearance in the input.
func GroupAllocations(allocations []dto.Allocation) []AllocationGroup {
	index := map[labModel.UsageKey]int{}
	groups := []AllocationGroup{}

	for _, allocation := range allocations {
		key := labModel.UsageKey{
			FloorID:  allocation.FloorID,
			LabName:  allocation.LabName,
			Division: allocation.Division,
		}

		pos, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, AllocationGroup{Key: key})
			pos = index[key]
		}

		groups[pos].SeatCount += allocation.SeatCount()
		groups[pos].AssetIDRange = assetrange.Append(groups[pos].AssetIDRange, allocation.AssetIDRange)
	}

	return groups
}
