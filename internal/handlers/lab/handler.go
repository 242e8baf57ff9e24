package lab

import (
	"labdesk/infras/otel"
	"labdesk/internal/domains/lab/model"
	"labdesk/internal/domains/lab/model/dto"
	"labdesk/internal/domains/lab/service"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"
	"labdesk/shared/validator"
	"labdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lab
	otel    otel.Otel
}

func New(service service.Lab, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/labs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLab)
		routerGroup.Get("/", handler.GetLabs)
		routerGroup.Get("/capacity", handler.GetLabCapacity)
		routerGroup.Patch("/{id}", handler.UpdateLab)
		routerGroup.Delete("/{id}", handler.DeleteLab)
	})
}

// CreateLab provisions a capacity record for a lab.
// @Summary Provision a lab
// @Description Create a capacity record for a lab on a floor.
// @Tags Lab
// @Accept json
// @Produce json
// @Param request body dto.CreateLabAllocationRequest true "Create Lab Request"
// @Success 201 {object} response.Message "Lab provisioned successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/labs [post]
// @Security BearerAuth
func (handler *Handler) CreateLab(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLab")
	defer scope.End()

	req := dto.CreateLabAllocationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateAllocation(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to provision lab")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Lab provisioned successfully")
}

// GetLabs retrieves lab capacity records.
// @Summary Get labs
// @Description Retrieve lab capacity records with optional filtering and pagination.
// @Tags Lab
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param floor_id query string false "Filter by floor ID"
// @Param lab_name query string false "Filter by lab name"
// @Success 200 {object} response.Data[dto.GetLabAllocationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/labs [get]
// @Security BearerAuth
func (handler *Handler) GetLabs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLabs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if floorID := r.URL.Query().Get(model.FieldFloorID); floorID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloorID,
			Operator: gDto.FilterOperatorEq,
			Value:    floorID,
			Table:    model.AllocationTableName,
		})
	}

	if labName := r.URL.Query().Get(model.FieldLabName); labName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLabName,
			Operator: gDto.FilterOperatorLike,
			Value:    labName,
			Table:    model.AllocationTableName,
		})
	}

	labs, err := handler.service.GetAllocations(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get labs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, labs)
}

// GetLabCapacity retrieves one lab's capacity and division usage.
// @Summary Get lab capacity
// @Description Retrieve a lab's capacity record with its per-division usage rows.
// @Tags Lab
// @Accept json
// @Produce json
// @Param floor_id query string true "Floor ID"
// @Param lab_name query string true "Lab name"
// @Success 200 {object} response.Data[dto.LabCapacityResponse]
// @Failure 422 {object} response.Error
// @Router /v1/labs/capacity [get]
// @Security BearerAuth
func (handler *Handler) GetLabCapacity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLabCapacity")
	defer scope.End()

	floorID := r.URL.Query().Get(model.FieldFloorID)
	labName := r.URL.Query().Get(model.FieldLabName)

	if floorID == "" || labName == "" {
		err := failure.BadRequestFromString("floor_id and lab_name are required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	capacity, err := handler.service.GetCapacity(ctx, floorID, labName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lab capacity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, capacity)
}

// UpdateLab updates a lab capacity record.
// @Summary Update a lab
// @Description Update a lab capacity record by its ID.
// @Tags Lab
// @Accept json
// @Produce json
// @Param id path string true "Lab ID"
// @Param request body dto.UpdateLabAllocationRequest true "Update Lab Request"
// @Success 200 {object} response.Message "Lab updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/labs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateLab(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLab")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateLabAllocationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateAllocation(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update lab")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Lab updated successfully")
}

// DeleteLab deletes a lab capacity record.
// @Summary Delete a lab
// @Description Delete a lab capacity record by its ID.
// @Tags Lab
// @Accept json
// @Produce json
// @Param id path string true "Lab ID"
// @Success 200 {object} response.Message "Lab deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/labs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteLab(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLab")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteAllocation(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete lab")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Lab deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Lab deleted successfully")
}
