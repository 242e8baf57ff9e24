package dto

import (
	"labdesk/internal/domains/lab/model"
	"labdesk/shared"
	gDto "labdesk/shared/dto"
	gModel "labdesk/shared/model"
	"labdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateLabAllocationRequest struct {
	FloorID           string `json:"floor_id"           validate:"required"`
	LabName           string `json:"lab_name"           validate:"required,max=100"`
	TotalWorkstations int    `json:"total_workstations" validate:"gte=0"`
}

func (c *CreateLabAllocationRequest) ToModel(user string) model.LabAllocation {
	return model.LabAllocation{
		ID:                uuid.NewString(),
		FloorID:           c.FloorID,
		LabName:           c.LabName,
		TotalWorkstations: c.TotalWorkstations,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateLabAllocationRequest struct {
	TotalWorkstations int `db:"total_workstations" json:"total_workstations" validate:"gte=0"`
}

type LabAllocationResponse struct {
	ID                string `json:"id"`
	FloorID           string `json:"floor_id"`
	LabName           string `json:"lab_name"`
	TotalWorkstations int    `json:"total_workstations"`
	gDto.Metadata
}

func (r *LabAllocationResponse) FromModel(model model.LabAllocation) {
	r.ID = model.ID
	r.FloorID = model.FloorID
	r.LabName = model.LabName
	r.TotalWorkstations = model.TotalWorkstations
	r.Metadata.FromModel(model.Metadata)
}

type DivisionUsageResponse struct {
	ID           string `json:"id"`
	FloorID      string `json:"floor_id"`
	LabName      string `json:"lab_name"`
	Division     string `json:"division"`
	InUse        int    `json:"in_use"`
	AssetIDRange string `json:"asset_id_range"`
	gDto.Metadata
}

func (r *DivisionUsageResponse) FromModel(model model.DivisionUsage) {
	r.ID = model.ID
	r.FloorID = model.FloorID
	r.LabName = model.LabName
	r.Division = model.Division
	r.InUse = model.InUse
	r.AssetIDRange = model.AssetIDRange
	r.Metadata.FromModel(model.Metadata)
}

// LabCapacityResponse is the capacity record joined with its usage rows:
// the admin allocation screen's view of one lab.
type LabCapacityResponse struct {
	Allocation LabAllocationResponse   `json:"allocation"`
	Usages     []DivisionUsageResponse `json:"usages"`
	InUse      int                     `json:"in_use"`
	Available  int                     `json:"available"`
}

func (r *LabCapacityResponse) FromModels(alloc model.LabAllocation, usages []model.DivisionUsage) {
	r.Allocation.FromModel(alloc)

	r.Usages = make([]DivisionUsageResponse, len(usages))

	inUse := 0
	for i, usage := range usages {
		r.Usages[i].FromModel(usage)
		inUse += usage.InUse
	}

	r.InUse = inUse
	r.Available = alloc.TotalWorkstations - inUse
}

type GetLabAllocationsResponse struct {
	Allocations []LabAllocationResponse `json:"allocations"`
	TotalPage   int                     `json:"total_page"`
	TotalData   int                     `json:"total_data"`
}

func (r *GetLabAllocationsResponse) FromModels(models []model.LabAllocation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Allocations = make([]LabAllocationResponse, len(models))
	for i, mod := range models {
		r.Allocations[i].FromModel(mod)
	}
}
