package dto

import (
	"labdesk/internal/domains/office/model"
	"labdesk/shared"
	gDto "labdesk/shared/dto"
	gModel "labdesk/shared/model"
	"labdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateOfficeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	City string `json:"city" validate:"required,max=100"`
}

func (c *CreateOfficeRequest) ToModel(user string) model.Office {
	return model.Office{
		ID:   uuid.NewString(),
		Name: c.Name,
		City: c.City,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOfficeRequest struct {
	Name string `json:"name" validate:"omitempty,max=100" db:"name"`
	City string `json:"city" validate:"omitempty,max=100" db:"city"`
}

type CreateFloorRequest struct {
	OfficeID string `json:"office_id" validate:"required"`
	Name     string `json:"name"      validate:"required,max=100"`
	Level    int    `json:"level"     validate:"omitempty"`
}

func (c *CreateFloorRequest) ToModel(user string) model.Floor {
	return model.Floor{
		ID:       uuid.NewString(),
		OfficeID: c.OfficeID,
		Name:     c.Name,
		Level:    c.Level,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFloorRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=100" db:"name"`
	Level int    `json:"level" validate:"omitempty"         db:"level"`
}

type OfficeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	gDto.Metadata
}

func (r *OfficeResponse) FromModel(model model.Office) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.Metadata.FromModel(model.Metadata)
}

type GetOfficesResponse struct {
	Offices   []OfficeResponse `json:"offices"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetOfficesResponse) FromModels(models []model.Office, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Offices = make([]OfficeResponse, len(models))
	for i, mod := range models {
		r.Offices[i].FromModel(mod)
	}
}

type FloorResponse struct {
	ID       string `json:"id"`
	OfficeID string `json:"office_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	gDto.Metadata
}

func (r *FloorResponse) FromModel(model model.Floor) {
	r.ID = model.ID
	r.OfficeID = model.OfficeID
	r.Name = model.Name
	r.Level = model.Level
	r.Metadata.FromModel(model.Metadata)
}

type GetFloorsResponse struct {
	Floors    []FloorResponse `json:"floors"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetFloorsResponse) FromModels(models []model.Floor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Floors = make([]FloorResponse, len(models))
	for i, mod := range models {
		r.Floors[i].FromModel(mod)
	}
}
