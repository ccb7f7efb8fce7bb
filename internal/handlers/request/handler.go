package request

import (
	"concierge/infras/otel"
	"concierge/internal/domains/request/model"
	"concierge/internal/domains/request/model/dto"
	"concierge/internal/domains/request/service"
	submissionDto "concierge/internal/domains/submission/model/dto"
	submissionService "concierge/internal/domains/submission/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
	"concierge/transport/http/middleware"
	"concierge/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Request
	submission submissionService.Submission
	otel       otel.Otel
}

func New(service service.Request, submission submissionService.Submission, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		submission: submission,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/request-categories", func(r chi.Router) {
		r.Get("/", handler.GetCategories)
		r.Post("/", handler.CreateCategory)
		r.Patch("/{id}", handler.UpdateCategory)
		r.Delete("/{id}", handler.DeleteCategory)
	})

	r.Route("/request-items", func(r chi.Router) {
		r.Get("/", handler.GetItems)
		r.Post("/", handler.CreateItem)
		r.Patch("/{id}", handler.UpdateItem)
		r.Delete("/{id}", handler.DeleteItem)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", handler.Submit)
		r.Get("/", handler.GetRequests)
		r.Get("/mine", handler.GetMyRequests)
		r.Get("/{id}", handler.GetRequestByID)
		r.Patch("/{id}/status", handler.UpdateStatus)
		r.Delete("/{id}", handler.DeleteRequest)
	})
}

// Submit sends a guest request to the front desk.
// @Summary Submit a service request
// @Description Writes the request into the guest's chat thread and tracks it as a service request.
// @Description A tracking failure still returns 201 with partial=true.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body submissionDto.SubmitRequest true "Submit Request"
// @Success 201 {object} submissionDto.SubmitResult
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error "User ID missing"
// @Failure 500 {object} response.Error
// @Router /v1/requests [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := submissionDto.SubmitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	internal := middleware.IsInternal(ctx)

	if userID, _ := ctx.Value(constant.ContextKeyUserID).(string); userID != constant.Empty {
		req.UserID = userID
	} else if !internal {
		req.UserID = constant.Empty
	}

	res, err := handler.submission.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit request")

		response.WithError(w, err)

		return
	}

	if res.Partial {
		scope.AddEvent("Request submitted partially")
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRequests lists service requests for staff.
// @Summary Get service requests
// @Tags Request
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_number query string false "Filter by room number"
// @Param category_id query string false "Filter by category ID"
// @Param type query string false "Filter by request type"
// @Success 200 {object} dto.GetServiceRequestsResponse
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldStatus, gDto.FilterOperatorEq, query.Get(model.FieldStatus), model.TableName)
	filterGroup.AddFilter(model.FieldRoomNumber, gDto.FilterOperatorEq, query.Get(model.FieldRoomNumber), model.TableName)
	filterGroup.AddFilter(model.FieldCategoryID, gDto.FilterOperatorEq, query.Get(model.FieldCategoryID), model.TableName)
	filterGroup.AddFilter(model.FieldType, gDto.FilterOperatorEq, query.Get(model.FieldType), model.TableName)

	handler.list(ctx, w, scope, queryParams, filterGroup)
}

// GetMyRequests lists the signed-in guest's own requests.
// @Summary Get my service requests
// @Tags Request
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetServiceRequestsResponse
// @Failure 401 {object} response.Error
// @Router /v1/requests/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRequests")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	handler.list(ctx, w, scope, queryParams, shared.FilterByID(userID, model.FieldCreatedBy, model.TableName))
}

func (handler *Handler) list(ctx context.Context, w http.ResponseWriter, scope otel.Scope, params gDto.QueryParams, filter gDto.FilterGroup) {
	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRequestByID returns one service request.
// @Summary Get a service request
// @Tags Request
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} dto.ServiceRequestResponse
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStatus sets the status label of a service request.
// @Summary Update a service request status
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Service request ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service request status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service request updated successfully")
}

// DeleteRequest removes a service request.
// @Summary Delete a service request
// @Tags Request
// @Param id path string true "Service request ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRequest")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service request")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service request deleted successfully")
}
