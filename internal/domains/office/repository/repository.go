package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"labdesk/infras/otel"
	"labdesk/infras/postgres"
	"labdesk/internal/domains/office/model"
	gDto "labdesk/shared/dto"
	gRepo "labdesk/shared/repository"
)

// Office persists the location data sources: offices and their floors.
type Office interface {
	InsertOffice(ctx context.Context, office model.Office) error
	GetOffice(ctx context.Context, filter gDto.FilterGroup) (model.Office, error)
	GetOffices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Office, error)
	CountOffices(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistOffice(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateOffice(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	DeleteOffice(ctx context.Context, filter gDto.FilterGroup) error

	InsertFloor(ctx context.Context, floor model.Floor) error
	GetFloor(ctx context.Context, filter gDto.FilterGroup) (model.Floor, error)
	GetFloors(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Floor, error)
	CountFloors(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistFloor(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateFloor(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	DeleteFloor(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	office gRepo.Repository[model.Office]
	floor  gRepo.Repository[model.Floor]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Office {
	return &repositoryImpl{
		office: gRepo.NewRepository[model.Office](model.OfficeEntityName, model.OfficeTableName, model.FieldID, db, otel),
		floor:  gRepo.NewRepository[model.Floor](model.FloorEntityName, model.FloorTableName, model.FieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

func (repo *repositoryImpl) InsertOffice(ctx context.Context, office model.Office) error {
	return repo.office.Insert(ctx, office)
}

func (repo *repositoryImpl) GetOffice(ctx context.Context, filter gDto.FilterGroup) (model.Office, error) {
	return repo.office.Get(ctx, filter)
}

func (repo *repositoryImpl) GetOffices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Office, error) {
	return repo.office.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) CountOffices(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.office.Count(ctx, filter)
}

func (repo *repositoryImpl) ExistOffice(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.office.Exist(ctx, filter)
}

func (repo *repositoryImpl) UpdateOffice(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return repo.office.Update(ctx, fields, filter)
}

func (repo *repositoryImpl) DeleteOffice(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.office.Delete(ctx, filter)
}

func (repo *repositoryImpl) InsertFloor(ctx context.Context, floor model.Floor) error {
	return repo.floor.Insert(ctx, floor)
}

func (repo *repositoryImpl) GetFloor(ctx context.Context, filter gDto.FilterGroup) (model.Floor, error) {
	return repo.floor.Get(ctx, filter)
}

func (repo *repositoryImpl) GetFloors(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Floor, error) {
	return repo.floor.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) CountFloors(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.floor.Count(ctx, filter)
}

func (repo *repositoryImpl) ExistFloor(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.floor.Exist(ctx, filter)
}

func (repo *repositoryImpl) UpdateFloor(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return repo.floor.Update(ctx, fields, filter)
}

func (repo *repositoryImpl) DeleteFloor(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.floor.Delete(ctx, filter)
}
