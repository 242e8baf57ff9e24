package dto

// Allocation is one admin-entered line of a finalization: seats granted
// to a division inside one lab. Seats may be explicit numbers (which
// become bookings) or a bare count.
type Allocation struct {
	LabID        string `json:"lab_id"         validate:"required"`
	FloorID      string `json:"floor_id"       validate:"required"`
	LabName      string `json:"lab_name"       validate:"required,max=100"`
	Division     string `json:"division"       validate:"required,max=100"`
	SeatNumbers  []int  `json:"seat_numbers"   validate:"omitempty,dive,gt=0"`
	NumSeats     int    `json:"num_seats"      validate:"omitempty,gt=0"`
	AssetIDRange string `json:"asset_id_range" validate:"omitempty,max=500"`
}

// SeatCount prefers the explicit seat list over the bare count.
func (a *Allocation) SeatCount() int {
	if len(a.SeatNumbers) > 0 {
		return len(a.SeatNumbers)
	}

	return a.NumSeats
}

type FinalizeAllocationRequest struct {
	Notes       string       `json:"notes"       validate:"omitempty,max=500"`
	Allocations []Allocation `json:"allocations" validate:"required,min=1,dive"`
}

type CommitPartialRequest struct {
	Notes       string       `json:"notes"       validate:"omitempty,max=500"`
	Allocations []Allocation `json:"allocations" validate:"required,min=1,dive"`
}
