package booking

import (
	"labdesk/infras/otel"
	"labdesk/internal/domains/booking/model"
	"labdesk/internal/domains/booking/service"
	"labdesk/shared/constant"
	gDto "labdesk/shared/dto"
	"labdesk/shared/failure"
	"labdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Bookings are created and transitioned through the request workflow and
// the allocation engine; the ledger only exposes reads over HTTP.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/active", handler.GetActiveBookings)
	})
}

// GetBookings retrieves seat bookings.
// @Summary Get seat bookings
// @Description Retrieve seat bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param request_id query string false "Filter by request ID"
// @Param division query string false "Filter by division"
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldRequestID, model.FieldDivision, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetActiveBookings retrieves the active (pending or approved) bookings
// occupying seats in one lab.
// @Summary Get active bookings for a lab
// @Description Retrieve pending and approved bookings for a lab, ordered by seat number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param lab_id query string true "Lab ID"
// @Param floor_id query string true "Floor ID"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/active [get]
// @Security BearerAuth
func (handler *Handler) GetActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveBookings")
	defer scope.End()

	labID := r.URL.Query().Get(model.FieldLabID)
	floorID := r.URL.Query().Get(model.FieldFloorID)

	if labID == "" || floorID == "" {
		err := failure.BadRequestFromString("lab_id and floor_id are required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.QueryActiveByLab(ctx, labID, floorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
