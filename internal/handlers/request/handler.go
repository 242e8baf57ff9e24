package request

import (
	"labdesk/infras/otel"
	allocationDto "labdesk/internal/domains/allocation/model/dto"
	allocationService "labdesk/internal/domains/allocation/service"
	bookingService "labdesk/internal/domains/booking/service"
	"labdesk/internal/domains/request/model"
	"labdesk/internal/domains/request/model/dto"
	"labdesk/internal/domains/request/service"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/validator"
	"labdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Request
	allocation allocationService.Allocation
	booking    bookingService.Booking
	otel       otel.Otel
}

func New(service service.Request, allocation allocationService.Allocation, booking bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		allocation: allocation,
		booking:    booking,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitRequest)
		routerGroup.Get("/", handler.GetRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
		routerGroup.Get("/{id}/bookings", handler.GetRequestBookings)
		routerGroup.Post("/{id}/approve", handler.ApproveRequest)
		routerGroup.Post("/{id}/reject", handler.RejectRequest)
		routerGroup.Post("/{id}/allocations", handler.FinalizeAllocation)
		routerGroup.Post("/{id}/allocations/partial", handler.CommitPartialAllocation)
	})
}

// SubmitRequest submits a new workstation request.
// @Summary Submit a workstation request
// @Description Submit a request for workstations, optionally naming a preferred lab and explicit seats.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Submit Request"
// @Success 201 {object} response.Data[dto.RequestResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/requests [post]
// @Security BearerAuth
func (handler *Handler) SubmitRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitRequest")
	defer scope.End()

	req := dto.SubmitRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit request")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Request submitted successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRequests retrieves workstation requests.
// @Summary Get workstation requests
// @Description Retrieve requests with optional filtering and pagination.
// @Tags Request
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param division query string false "Filter by division"
// @Param requestor_id query string false "Filter by requestor"
// @Success 200 {object} response.Data[dto.GetRequestsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldDivision, model.FieldRequestorID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

// GetRequestByID retrieves a request by its ID.
// @Summary Get a request by ID
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.RequestResponse]
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

// GetRequestBookings retrieves the seat bookings owned by a request.
// @Summary Get a request's bookings
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetRequestBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestBookings")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bookings, err := handler.booking.GetByRequest(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get request bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// ApproveRequest approves a pending request against its preferred lab.
// @Summary Approve a request
// @Description Approve a pending request, incrementing the preferred lab's division usage.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.ApproveRequestRequest true "Approve Request"
// @Success 200 {object} response.Message "Request approved successfully"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/requests/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ApproveRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Approve(ctx, id, req, false); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Request approved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Request approved successfully")
}

// RejectRequest rejects a pending request.
// @Summary Reject a request
// @Description Reject a pending request and its pending bookings. Capacity is never touched.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.RejectRequestRequest true "Reject Request"
// @Success 200 {object} response.Message "Request rejected successfully"
// @Failure 409 {object} response.Error
// @Router /v1/requests/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RejectRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reject(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Request rejected successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Request rejected successfully")
}

// FinalizeAllocation commits the admin's allocation lines and approves
// the request.
// @Summary Finalize a request's allocation
// @Description Commit allocation lines across labs in one transaction, then approve the request.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body allocationDto.FinalizeAllocationRequest true "Finalize Allocation Request"
// @Success 200 {object} response.Message "Allocation finalized successfully"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/requests/{id}/allocations [post]
// @Security BearerAuth
func (handler *Handler) FinalizeAllocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinalizeAllocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := allocationDto.FinalizeAllocationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.allocation.Finalize(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to finalize allocation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Allocation finalized successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Allocation finalized successfully")
}

// CommitPartialAllocation commits a subset of the request's seats.
// @Summary Commit a partial allocation
// @Description Commit a subset of the request's seats and mark it partially allocated.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body allocationDto.CommitPartialRequest true "Commit Partial Request"
// @Success 200 {object} response.Message "Partial allocation committed successfully"
// @Failure 409 {object} response.Error
// @Router /v1/requests/{id}/allocations/partial [post]
// @Security BearerAuth
func (handler *Handler) CommitPartialAllocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CommitPartialAllocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := allocationDto.CommitPartialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.allocation.CommitPartial(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to commit partial allocation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Partial allocation committed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Partial allocation committed successfully")
}
