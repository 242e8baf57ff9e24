package model

import (
	"labdesk/shared/model"
)

const (
	OfficeTableName  = "offices"
	OfficeEntityName = "office"
	FloorTableName   = "floors"
	FloorEntityName  = "floor"

	FieldID       = "id"
	FieldName     = "name"
	FieldCity     = "city"
	FieldOfficeID = "office_id"
	FieldLevel    = "level"
)

// Office is a physical site housing floors of labs.
type Office struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	City string `db:"city"`
	model.Metadata
}

type Floor struct {
	ID       string `db:"id"`
	OfficeID string `db:"office_id"`
	Name     string `db:"name"`
	Level    int    `db:"level"`
	model.Metadata
}
