package dto

// Utilization is the {total, in_use, available} roll-up every report
// level shares. Available is derived, never stored.
type Utilization struct {
	TotalWorkstations int `json:"total_workstations"`
	InUse             int `json:"in_use"`
	Available         int `json:"available"`
}

func (u *Utilization) Derive() {
	u.Available = u.TotalWorkstations - u.InUse
}

// LabUtilization is one lab's line within a floor or office roll-up.
type LabUtilization struct {
	FloorID string `json:"floor_id"`
	LabName string `json:"lab_name"`
	Utilization
}

type FloorSummaryResponse struct {
	FloorID string `json:"floor_id"`
	Utilization
	Labs []LabUtilization `json:"labs"`
}

// DivisionSummaryResponse rolls up one division across every lab it
// occupies. TotalWorkstations counts the capacity of those labs, so
// Available reflects what the division's labs still hold, not a
// division-reserved pool.
type DivisionSummaryResponse struct {
	Division string `json:"division"`
	Utilization
	Labs []DivisionLabUsage `json:"labs"`
}

type DivisionLabUsage struct {
	FloorID      string `json:"floor_id"`
	LabName      string `json:"lab_name"`
	InUse        int    `json:"in_use"`
	AssetIDRange string `json:"asset_id_range,omitempty"`
}

type OfficeSummaryResponse struct {
	OfficeID string `json:"office_id"`
	Utilization
	Floors []FloorSummaryResponse `json:"floors"`
}

type ExportResponse struct {
	URL string `json:"url"`
}
