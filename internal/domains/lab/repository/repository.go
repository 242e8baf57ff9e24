package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"labdesk/infras/otel"
	"labdesk/infras/postgres"
	"labdesk/internal/domains/lab/model"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"
	"labdesk/shared/logger"
	"labdesk/shared/timezone"
	gRepo "labdesk/shared/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Lab persists lab capacity records and per-division usage rows. The
// usage-delta path is a guarded conditional write so the capacity
// invariant holds under concurrent sessions without app-level locking.
type Lab interface {
	InsertAllocation(ctx context.Context, alloc model.LabAllocation) error
	GetAllocation(ctx context.Context, floorID, labName string) (model.LabAllocation, error)
	GetAllocations(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.LabAllocation, error)
	CountAllocations(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistAllocation(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateAllocation(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	DeleteAllocation(ctx context.Context, filter gDto.FilterGroup) error

	GetUsages(ctx context.Context, floorID, labName string) ([]model.DivisionUsage, error)
	GetAllUsages(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.DivisionUsage, error)
	ApplyUsageDelta(ctx context.Context, tx *sqlx.Tx, key model.UsageKey, seatDelta int, assetRangeAppend, actor string) error
}

type repositoryImpl struct {
	alloc gRepo.Repository[model.LabAllocation]
	usage gRepo.Repository[model.DivisionUsage]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Lab {
	return &repositoryImpl{
		alloc: gRepo.NewRepository[model.LabAllocation](model.AllocationEntityName, model.AllocationTableName, model.FieldID, db, otel),
		usage: gRepo.NewRepository[model.DivisionUsage](model.UsageEntityName, model.UsageTableName, model.FieldID, db, otel),
		db:    db,
		otel:  otel,
	}
}

func (repo *repositoryImpl) InsertAllocation(ctx context.Context, alloc model.LabAllocation) error {
	return repo.alloc.Insert(ctx, alloc)
}

func (repo *repositoryImpl) GetAllocation(ctx context.Context, floorID, labName string) (model.LabAllocation, error) {
	return repo.alloc.Get(ctx, labFilter(floorID, labName, model.AllocationTableName))
}

func (repo *repositoryImpl) GetAllocations(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.LabAllocation, error) {
	return repo.alloc.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) CountAllocations(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.alloc.Count(ctx, filter)
}

func (repo *repositoryImpl) ExistAllocation(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.alloc.Exist(ctx, filter)
}

func (repo *repositoryImpl) UpdateAllocation(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	return repo.alloc.Update(ctx, fields, filter)
}

func (repo *repositoryImpl) DeleteAllocation(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.alloc.Delete(ctx, filter)
}

func (repo *repositoryImpl) GetUsages(ctx context.Context, floorID, labName string) ([]model.DivisionUsage, error) {
	return repo.usage.GetAll(ctx, gDto.QueryParams{}, labFilter(floorID, labName, model.UsageTableName))
}

func (repo *repositoryImpl) GetAllUsages(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.DivisionUsage, error) {
	return repo.usage.GetAll(ctx, params, filter)
}

// Statements for the usage-delta path. Both the UPDATE and the INSERT
// carry the capacity invariant as a predicate, so a write that would
// push the summed usage past the lab total simply affects zero rows.
const (
	updateUsageQuery = `
		UPDATE division_usages SET
			in_use = in_use + :delta,
			asset_id_range = CASE
				WHEN :fragment = '' THEN asset_id_range
				WHEN asset_id_range = '' THEN :fragment
				ELSE asset_id_range || ', ' || :fragment
			END,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE floor_id = :floor_id AND lab_name = :lab_name AND division = :division
			AND (SELECT la.total_workstations FROM lab_allocations la
				WHERE la.floor_id = :floor_id AND la.lab_name = :lab_name)
				>= :delta + (SELECT COALESCE(SUM(du.in_use), 0) FROM division_usages du
				WHERE du.floor_id = :floor_id AND du.lab_name = :lab_name)`

	insertUsageQuery = `
		INSERT INTO division_usages
			(id, floor_id, lab_name, division, in_use, asset_id_range, created_at, modified_at, created_by, modified_by)
		SELECT :id, :floor_id, :lab_name, :division, :delta, :fragment, :modified_at, :modified_at, :modified_by, :modified_by
		FROM lab_allocations la
		WHERE la.floor_id = :floor_id AND la.lab_name = :lab_name
			AND la.total_workstations >= :delta + (SELECT COALESCE(SUM(du.in_use), 0)
				FROM division_usages du
				WHERE du.floor_id = :floor_id AND du.lab_name = :lab_name)`
)

// ApplyUsageDelta increments a division's in-use count and appends the
// asset-range fragment, creating the usage row when the division has no
// seats in the lab yet. The increment is a single atomic statement:
// concurrent callers never lose updates (the database serializes the
// `in_use = in_use + delta` writes) and never exceed the lab total.
// Returns CapacityExceeded or LabNotProvisioned failures. Runs on tx
// when given so multi-lab allocations commit all-or-nothing.
func (repo *repositoryImpl) ApplyUsageDelta(ctx context.Context, tx *sqlx.Tx, key model.UsageKey, seatDelta int, assetRangeAppend, actor string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.UsageEntityName+".ApplyUsageDelta")
	defer scope.End()
	defer scope.TraceIfError(err)

	args := map[string]any{
		"id":          uuid.NewString(),
		"floor_id":    key.FloorID,
		"lab_name":    key.LabName,
		"division":    key.Division,
		"delta":       seatDelta,
		"fragment":    assetRangeAppend,
		"modified_at": timezone.Now(),
		"modified_by": actor,
	}

	exec := repo.execer(tx)

	affected, err := repo.namedExec(ctx, exec, updateUsageQuery, args)
	if err != nil {
		return err
	}

	if affected > 0 {
		return nil
	}

	// Zero rows: either the usage row is missing, the lab is not
	// provisioned, or the guard rejected the delta. Disambiguate with
	// the same executor so the diagnosis sees in-transaction state.
	usageExists, err := repo.rowExists(ctx, exec,
		"SELECT EXISTS(SELECT 1 FROM division_usages WHERE floor_id = $1 AND lab_name = $2 AND division = $3)",
		key.FloorID, key.LabName, key.Division)
	if err != nil {
		return err
	}

	if usageExists {
		return failure.CapacityExceeded(fmt.Sprintf("allocating %d seats would exceed capacity of lab %s", seatDelta, key.LabName)) //nolint:wrapcheck
	}

	labExists, err := repo.rowExists(ctx, exec,
		"SELECT EXISTS(SELECT 1 FROM lab_allocations WHERE floor_id = $1 AND lab_name = $2)",
		key.FloorID, key.LabName)
	if err != nil {
		return err
	}

	if !labExists {
		return failure.LabNotProvisioned(fmt.Sprintf("lab %s on floor %s has no capacity record", key.LabName, key.FloorID)) //nolint:wrapcheck
	}

	affected, err = repo.namedExec(ctx, exec, insertUsageQuery, args)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		// Another session created the row between our probe and the
		// insert; fall back to the guarded update.
		affected, err = repo.namedExec(ctx, exec, updateUsageQuery, args)
	}

	if err != nil {
		return err
	}

	if affected == 0 {
		return failure.CapacityExceeded(fmt.Sprintf("allocating %d seats would exceed capacity of lab %s", seatDelta, key.LabName)) //nolint:wrapcheck
	}

	return nil
}

type namedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (repo *repositoryImpl) execer(tx *sqlx.Tx) namedExecer {
	if tx != nil {
		return tx
	}

	return repo.db.Write
}

func (repo *repositoryImpl) namedExec(ctx context.Context, exec namedExecer, query string, args map[string]any) (int64, error) {
	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return 0, err //nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to apply usage delta (%s): %w", model.UsageEntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.UsageEntityName, err)
	}

	return affected, nil
}

func (repo *repositoryImpl) rowExists(ctx context.Context, exec namedExecer, query string, args ...any) (bool, error) {
	exists := false

	if err := exec.GetContext(ctx, &exists, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check row existence (%s): %w", model.UsageEntityName, err)
	}

	return exists, nil
}

func labFilter(floorID, labName, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFloorID, Operator: gDto.FilterOperatorEq, Value: floorID, Table: table},
			gDto.Filter{Field: model.FieldLabName, Operator: gDto.FilterOperatorEq, Value: labName, Table: table, ArgName: "lab_name_eq"},
		},
	}
}
