package dto

import (
	"labdesk/internal/domains/booking/model"
	"labdesk/shared"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	gModel "labdesk/shared/model"
	"labdesk/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingsRequest struct {
	RequestID   string `json:"request_id"   validate:"required"`
	LabID       string `json:"lab_id"       validate:"required"`
	FloorID     string `json:"floor_id"     validate:"required"`
	LabName     string `json:"lab_name"     validate:"required,max=100"`
	SeatNumbers []int  `json:"seat_numbers" validate:"required,min=1,dive,gt=0"`
	Division    string `json:"division"     validate:"required,max=100"`
	BookingDate string `json:"booking_date" validate:"omitempty"`
}

func (c *CreateBookingsRequest) ToModels(user string) ([]model.SeatBooking, error) {
	bookingDate := timezone.Now()

	if c.BookingDate != "" {
		parsed, err := time.Parse(constant.DayFormat, c.BookingDate)
		if err != nil {
			return nil, err
		}

		bookingDate = parsed
	}

	bookings := make([]model.SeatBooking, len(c.SeatNumbers))
	for i, seat := range c.SeatNumbers {
		bookings[i] = model.SeatBooking{
			ID:          uuid.NewString(),
			RequestID:   c.RequestID,
			LabID:       c.LabID,
			FloorID:     c.FloorID,
			LabName:     c.LabName,
			SeatNumber:  seat,
			Division:    c.Division,
			Status:      model.StatusPending,
			BookingDate: bookingDate,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return bookings, nil
}

type BookingResponse struct {
	ID          string `json:"id"`
	RequestID   string `json:"request_id"`
	LabID       string `json:"lab_id"`
	FloorID     string `json:"floor_id"`
	LabName     string `json:"lab_name"`
	SeatNumber  int    `json:"seat_number"`
	Division    string `json:"division"`
	Status      string `json:"status"`
	BookingDate string `json:"booking_date"`
	Remark      string `json:"remark,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.SeatBooking) {
	r.ID = model.ID
	r.RequestID = model.RequestID
	r.LabID = model.LabID
	r.FloorID = model.FloorID
	r.LabName = model.LabName
	r.SeatNumber = model.SeatNumber
	r.Division = model.Division
	r.Status = model.Status
	r.BookingDate = model.BookingDate.Format(constant.DayFormat)
	r.Remark = model.Remark
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.SeatBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
