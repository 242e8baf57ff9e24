package dto

import (
	"labdesk/internal/domains/employee/model"
	"labdesk/shared"
	gDto "labdesk/shared/dto"
)

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"  db:"full_name"`
	Division string  `json:"division"  validate:"omitempty,max=100"  db:"division"`
	Role     string  `json:"role"      validate:"omitempty,oneof=admin employee" db:"role"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	Division  string  `json:"division"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Division = model.Division
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
