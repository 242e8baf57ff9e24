package model

import (
	"labdesk/shared/model"
)

const (
	AllocationTableName  = "lab_allocations"
	AllocationEntityName = "lab_allocation"

	UsageTableName  = "division_usages"
	UsageEntityName = "division_usage"

	FieldID                = "id"
	FieldFloorID           = "floor_id"
	FieldLabName           = "lab_name"
	FieldTotalWorkstations = "total_workstations"
	FieldDivision          = "division"
	FieldInUse             = "in_use"
	FieldAssetIDRange      = "asset_id_range"
)

// LabAllocation is the capacity record for one lab: a named sub-area of
// a floor with a fixed number of workstations. Unique per
// (floor_id, lab_name).
type LabAllocation struct {
	ID                string `db:"id"`
	FloorID           string `db:"floor_id"`
	LabName           string `db:"lab_name"`
	TotalWorkstations int    `db:"total_workstations"`
	model.Metadata
}

// DivisionUsage records how many of a lab's workstations one division
// currently consumes, plus the operator-authored asset-ID range string.
// The sum of InUse across divisions never exceeds the matching
// LabAllocation's TotalWorkstations.
type DivisionUsage struct {
	ID           string `db:"id"`
	FloorID      string `db:"floor_id"`
	LabName      string `db:"lab_name"`
	Division     string `db:"division"`
	InUse        int    `db:"in_use"`
	AssetIDRange string `db:"asset_id_range"`
	model.Metadata
}

// UsageKey identifies one division's usage row within a lab.
type UsageKey struct {
	FloorID  string
	LabName  string
	Division string
}
