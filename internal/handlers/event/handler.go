package event

import (
	"concierge/infras/otel"
	"concierge/internal/domains/event/model"
	"concierge/internal/domains/event/model/dto"
	"concierge/internal/domains/event/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
	"concierge/transport/http/response"
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Get("/reservations", handler.GetReservations)
		routerGroup.Get("/reservations/mine", handler.GetMyReservations)
		routerGroup.Patch("/reservations/{id}/status", handler.UpdateReservationStatus)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Patch("/{id}", handler.UpdateEvent)
		routerGroup.Patch("/{id}/featured", handler.SetFeatured)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
		routerGroup.Post("/{id}/reservations", handler.Reserve)
	})
}

// CreateEvent handles the creation of a new activity.
// @Summary Create an event
// @Tags Event
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param location formData string false "Location"
// @Param starts_at formData string true "Start (RFC3339)"
// @Param ends_at formData string false "End (RFC3339)"
// @Param capacity formData integer false "Maximum attendees, 0 for unlimited"
// @Param price formData number false "Price per attendee"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Open for reservations"
// @Param image formData file false "Event image"
// @Success 201 {object} response.Message "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CreateEventRequest{
		Title:       r.FormValue(model.FieldTitle),
		Description: r.FormValue(model.FieldDescription),
		Location:    r.FormValue(model.FieldLocation),
		StartsAt:    r.FormValue(model.FieldStartsAt),
		EndsAt:      r.FormValue(model.FieldEndsAt),
		Featured:    shared.ConvertStringToBool(r.FormValue(model.FieldFeatured)),
		Active:      shared.ConvertStringToBool(r.FormValue(model.FieldActive)),
	}

	if p, err := strconv.ParseFloat(r.FormValue(model.FieldPrice), 64); err == nil {
		req.Price = p
	}

	if c, err := shared.ConvertStringToInt(r.FormValue(model.FieldCapacity)); err == nil {
		req.Capacity = c
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event created successfully")

	response.WithMessage(w, http.StatusCreated, "Event created successfully")
}

// GetEvents lists events.
// @Summary Get events
// @Tags Event
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param location query string false "Filter by location"
// @Param from query string false "Only events starting at or after this time (RFC3339)"
// @Param featured query boolean false "Filter by featured flag"
// @Param active query boolean false "Filter by active flag (default true)"
// @Success 200 {object} dto.GetEventsResponse
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldTitle, gDto.FilterOperatorLike, query.Get(model.FieldTitle), model.TableName)
	filterGroup.AddFilter(model.FieldLocation, gDto.FilterOperatorLike, query.Get(model.FieldLocation), model.TableName)
	filterGroup.AddFilter(model.FieldStartsAt, gDto.FilterOperatorGreaterEq, query.Get("from"), model.TableName)
	filterGroup.AddBoolFilter(model.FieldFeatured, query.Get(model.FieldFeatured), model.TableName)

	active := query.Get(model.FieldActive)
	if active == constant.Empty {
		active = "true"
	}

	filterGroup.AddBoolFilter(model.FieldActive, active, model.TableName)

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventByID returns one event.
// @Summary Get an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	event, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent updates an event.
// @Summary Update an event
// @Tags Event
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param location formData string false "Location"
// @Param starts_at formData string false "Start (RFC3339)"
// @Param ends_at formData string false "End (RFC3339)"
// @Param capacity formData integer false "Maximum attendees"
// @Param price formData number false "Price per attendee"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Open for reservations"
// @Param image formData file false "Event image"
// @Success 200 {object} response.Message "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateEventRequest{
		Title:       r.FormValue(model.FieldTitle),
		Description: r.FormValue(model.FieldDescription),
		Location:    r.FormValue(model.FieldLocation),
		StartsAt:    r.FormValue(model.FieldStartsAt),
		EndsAt:      r.FormValue(model.FieldEndsAt),
		Featured:    shared.ConvertStringToBool(r.FormValue(model.FieldFeatured)),
		Active:      shared.ConvertStringToBool(r.FormValue(model.FieldActive)),
	}

	if p, err := strconv.ParseFloat(r.FormValue(model.FieldPrice), 64); err == nil {
		req.Price = &p
	}

	if c, err := shared.ConvertStringToInt(r.FormValue(model.FieldCapacity)); err == nil {
		req.Capacity = &c
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

// SetFeatured toggles whether an event is featured.
// @Summary Toggle event featured flag
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SetFeaturedRequest true "Featured flag"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/events/{id}/featured [patch]
// @Security BearerAuth
func (handler *Handler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFeatured")
	defer scope.End()

	req := dto.SetFeaturedRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.SetFeatured(ctx, chi.URLParam(r, constant.RequestParamID), *req.Featured); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event featured flag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event featured flag updated")
}

// DeleteEvent deletes an event.
// @Summary Delete an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}

// Reserve signs the caller up for an event.
// @Summary Reserve an event
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/events/{id}/reservations [post]
// @Security BearerAuth
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event reserved")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations lists event reservations for staff.
// @Summary Get event reservations
// @Tags Event
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_id query string false "Filter by event"
// @Param room_number query string false "Filter by room number"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetReservationsResponse
// @Router /v1/events/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldEventID, gDto.FilterOperatorEq, query.Get(model.FieldEventID), model.ReservationTableName)
	filterGroup.AddFilter(model.FieldRoomNumber, gDto.FilterOperatorEq, query.Get(model.FieldRoomNumber), model.ReservationTableName)
	filterGroup.AddFilter(model.FieldStatus, gDto.FilterOperatorEq, query.Get(model.FieldStatus), model.ReservationTableName)

	handler.listReservations(ctx, w, queryParams, filterGroup)
}

// GetMyReservations lists the caller's own event reservations.
// @Summary Get my event reservations
// @Tags Event
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetReservationsResponse
// @Failure 401 {object} response.Error
// @Router /v1/events/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldCreatedBy, gDto.FilterOperatorEq, userID, model.ReservationTableName)

	handler.listReservations(ctx, w, queryParams, filterGroup)
}

func (handler *Handler) listReservations(ctx context.Context, w http.ResponseWriter, params gDto.QueryParams, filter gDto.FilterGroup) {
	res, err := handler.service.GetReservations(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservationStatus sets the status label of a reservation.
// @Summary Update event reservation status
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/events/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	req := dto.UpdateReservationStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateReservationStatus(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event reservation status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation status updated")
}
