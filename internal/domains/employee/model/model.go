package model

import "labdesk/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldDivision  = "division"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// Employee is a requester or admin. Division ties the account to the
// usage rows its requests consume.
type Employee struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Role      string  `db:"role"`
	FullName  *string `db:"full_name"`
	Division  string  `db:"division"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
