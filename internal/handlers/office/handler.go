package office

import (
	"labdesk/infras/otel"
	"labdesk/internal/domains/office/model"
	"labdesk/internal/domains/office/model/dto"
	"labdesk/internal/domains/office/service"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/validator"
	"labdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Office
	otel    otel.Otel
}

func New(service service.Office, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOffice)
		routerGroup.Get("/", handler.GetOffices)
		routerGroup.Patch("/{id}", handler.UpdateOffice)
		routerGroup.Delete("/{id}", handler.DeleteOffice)
	})

	router.Route("/floors", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFloor)
		routerGroup.Get("/", handler.GetFloors)
		routerGroup.Patch("/{id}", handler.UpdateFloor)
		routerGroup.Delete("/{id}", handler.DeleteFloor)
	})
}

// CreateOffice creates an office record.
// @Summary Create an office
// @Tags Office
// @Accept json
// @Produce json
// @Param request body dto.CreateOfficeRequest true "Create Office Request"
// @Success 201 {object} response.Message "Office created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/offices [post]
// @Security BearerAuth
func (handler *Handler) CreateOffice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffice")
	defer scope.End()

	req := dto.CreateOfficeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateOffice(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create office")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Office created successfully")
}

// GetOffices retrieves office records.
// @Summary Get offices
// @Description Retrieve offices with optional filtering and pagination.
// @Tags Office
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by office name"
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetOfficesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/offices [get]
// @Security BearerAuth
func (handler *Handler) GetOffices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.OfficeTableName,
		})
	}

	if city := r.URL.Query().Get(model.FieldCity); city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    model.OfficeTableName,
		})
	}

	offices, err := handler.service.GetOffices(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offices")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, offices)
}

// UpdateOffice updates an office record.
// @Summary Update an office
// @Tags Office
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Param request body dto.UpdateOfficeRequest true "Update Office Request"
// @Success 200 {object} response.Message "Office updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/offices/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOfficeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateOffice(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update office")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Office updated successfully")
}

// DeleteOffice deletes an office record.
// @Summary Delete an office
// @Tags Office
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.Message "Office deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/offices/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteOffice(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete office")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Office deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Office deleted successfully")
}

// CreateFloor creates a floor record under an office.
// @Summary Create a floor
// @Tags Office
// @Accept json
// @Produce json
// @Param request body dto.CreateFloorRequest true "Create Floor Request"
// @Success 201 {object} response.Message "Floor created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/floors [post]
// @Security BearerAuth
func (handler *Handler) CreateFloor(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFloor")
	defer scope.End()

	req := dto.CreateFloorRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateFloor(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create floor")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Floor created successfully")
}

// GetFloors retrieves floor records.
// @Summary Get floors
// @Description Retrieve floors with optional filtering and pagination.
// @Tags Office
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param office_id query string false "Filter by office ID"
// @Success 200 {object} response.Data[dto.GetFloorsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/floors [get]
// @Security BearerAuth
func (handler *Handler) GetFloors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloors")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if officeID := r.URL.Query().Get(model.FieldOfficeID); officeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOfficeID,
			Operator: gDto.FilterOperatorEq,
			Value:    officeID,
			Table:    model.FloorTableName,
		})
	}

	floors, err := handler.service.GetFloors(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floors")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, floors)
}

// UpdateFloor updates a floor record.
// @Summary Update a floor
// @Tags Office
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Param request body dto.UpdateFloorRequest true "Update Floor Request"
// @Success 200 {object} response.Message "Floor updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/floors/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFloor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFloorRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateFloor(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update floor")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor updated successfully")
}

// DeleteFloor deletes a floor record.
// @Summary Delete a floor
// @Tags Office
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Success 200 {object} response.Message "Floor deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/floors/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFloor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteFloor(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete floor")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor deleted successfully")
}
