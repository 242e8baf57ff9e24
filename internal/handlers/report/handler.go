package report

import (
	"labdesk/infras/otel"
	"labdesk/internal/domains/report/service"
	"labdesk/shared/constant"
	"labdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/floors/{id}", handler.GetFloorSummary)
		routerGroup.Get("/divisions/{division}", handler.GetDivisionSummary)
		routerGroup.Get("/offices/{id}", handler.GetOfficeSummary)
		routerGroup.Post("/offices/{id}/export", handler.ExportOfficeReport)
	})
}

// GetFloorSummary retrieves per-lab utilization for one floor.
// @Summary Get floor utilization summary
// @Description Retrieve capacity, in-use, and available counts per lab on a floor.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Success 200 {object} response.Data[dto.FloorSummaryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/reports/floors/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFloorSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorSummary")
	defer scope.End()

	floorID := chi.URLParam(r, constant.RequestParamID)

	summary, err := handler.service.FloorSummary(ctx, floorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floor summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetDivisionSummary retrieves a division's seat usage across labs.
// @Summary Get division utilization summary
// @Description Retrieve the labs a division occupies and how many seats it holds in each.
// @Tags Report
// @Accept json
// @Produce json
// @Param division path string true "Division name"
// @Success 200 {object} response.Data[dto.DivisionSummaryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/reports/divisions/{division} [get]
// @Security BearerAuth
func (handler *Handler) GetDivisionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDivisionSummary")
	defer scope.End()

	division := chi.URLParam(r, constant.RequestParamDivision)

	summary, err := handler.service.DivisionSummary(ctx, division)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get division summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetOfficeSummary retrieves utilization rolled up per floor for one office.
// @Summary Get office utilization summary
// @Description Retrieve per-floor utilization summaries for an office.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.Data[dto.OfficeSummaryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/reports/offices/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOfficeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfficeSummary")
	defer scope.End()

	officeID := chi.URLParam(r, constant.RequestParamID)

	summary, err := handler.service.OfficeSummary(ctx, officeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get office summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// ExportOfficeReport exports an office utilization report as CSV to object storage.
// @Summary Export office utilization report
// @Description Generate a CSV utilization report for an office and upload it to object storage.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.Data[dto.ExportResponse]
// @Failure 500 {object} response.Error
// @Router /v1/reports/offices/{id}/export [post]
// @Security BearerAuth
func (handler *Handler) ExportOfficeReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportOfficeReport")
	defer scope.End()

	officeID := chi.URLParam(r, constant.RequestParamID)

	export, err := handler.service.ExportOfficeCSV(ctx, officeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export office report")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Office report exported by user " + user)

	response.WithJSON(w, http.StatusOK, export)
}
