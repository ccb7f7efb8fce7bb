package spa

import (
	"concierge/infras/otel"
	"concierge/internal/domains/spa/model"
	"concierge/internal/domains/spa/model/dto"
	"concierge/internal/domains/spa/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
	"concierge/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Spa
	otel    otel.Otel
}

func New(service service.Spa, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/spa", func(routerGroup chi.Router) {
		routerGroup.Route("/treatments", func(treatments chi.Router) {
			treatments.Post("/", handler.CreateTreatment)
			treatments.Get("/", handler.GetTreatments)
			treatments.Get("/{id}", handler.GetTreatmentByID)
			treatments.Patch("/{id}", handler.UpdateTreatment)
			treatments.Patch("/{id}/featured", handler.SetFeatured)
			treatments.Delete("/{id}", handler.DeleteTreatment)
			treatments.Post("/{id}/bookings", handler.Book)
		})

		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Get("/bookings/mine", handler.GetMyBookings)
		routerGroup.Patch("/bookings/{id}/status", handler.UpdateBookingStatus)
	})
}

func (handler *Handler) parseForm(r *http.Request) (dto.UpdateTreatmentRequest, func(), error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.UpdateTreatmentRequest{}, func() {}, failure.BadRequest(err)
	}

	req := dto.UpdateTreatmentRequest{
		Name:        r.FormValue(model.FieldName),
		Description: r.FormValue(model.FieldDescription),
		Featured:    shared.ConvertStringToBool(r.FormValue(model.FieldFeatured)),
		Active:      shared.ConvertStringToBool(r.FormValue(model.FieldActive)),
	}

	if p, err := strconv.ParseFloat(r.FormValue(model.FieldPrice), 64); err == nil {
		req.Price = &p
	}

	if d, err := shared.ConvertStringToInt(r.FormValue(model.FieldDurationMinutes)); err == nil {
		req.DurationMinutes = &d
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err != nil {
		return req, func() {}, nil
	}

	req.Image = fileHeader
	req.ImageFile = file

	return req, func() { file.Close() }, nil
}

// CreateTreatment adds a spa treatment to the menu.
// @Summary Create a spa treatment
// @Tags Spa
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param duration_minutes formData integer false "Duration in minutes"
// @Param price formData number false "Price"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Bookable"
// @Param image formData file false "Treatment image"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/spa/treatments [post]
// @Security BearerAuth
func (handler *Handler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTreatment")
	defer scope.End()

	form, closeFile, err := handler.parseForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected multipart form")
		response.WithError(w, err)

		return
	}
	defer closeFile()

	req := dto.CreateTreatmentRequest{
		Name:        form.Name,
		Description: form.Description,
		Image:       form.Image,
		ImageFile:   form.ImageFile,
		Featured:    form.Featured,
		Active:      form.Active,
	}

	if form.Price != nil {
		req.Price = *form.Price
	}

	if form.DurationMinutes != nil {
		req.DurationMinutes = *form.DurationMinutes
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create spa treatment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Spa treatment created successfully")
}

// GetTreatments lists spa treatments.
// @Summary Get spa treatments
// @Tags Spa
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param featured query boolean false "Filter by featured flag"
// @Param active query boolean false "Filter by active flag (default true)"
// @Success 200 {object} dto.GetTreatmentsResponse
// @Router /v1/spa/treatments [get]
func (handler *Handler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTreatments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldName, gDto.FilterOperatorLike, query.Get(model.FieldName), model.TableName)
	filterGroup.AddBoolFilter(model.FieldFeatured, query.Get(model.FieldFeatured), model.TableName)

	active := query.Get(model.FieldActive)
	if active == constant.Empty {
		active = "true"
	}

	filterGroup.AddBoolFilter(model.FieldActive, active, model.TableName)

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa treatments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTreatmentByID returns one spa treatment.
// @Summary Get a spa treatment
// @Tags Spa
// @Produce json
// @Param id path string true "Treatment ID"
// @Success 200 {object} dto.TreatmentResponse
// @Failure 404 {object} response.Error
// @Router /v1/spa/treatments/{id} [get]
func (handler *Handler) GetTreatmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTreatmentByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTreatment edits a spa treatment.
// @Summary Update a spa treatment
// @Tags Spa
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Treatment ID"
// @Param name formData string false "Name"
// @Param description formData string false "Description"
// @Param duration_minutes formData integer false "Duration in minutes"
// @Param price formData number false "Price"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Bookable"
// @Param image formData file false "Treatment image"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/spa/treatments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTreatment")
	defer scope.End()

	req, closeFile, err := handler.parseForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected multipart form")
		response.WithError(w, err)

		return
	}
	defer closeFile()

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update spa treatment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Spa treatment updated successfully")
}

// SetFeatured toggles whether a treatment is featured.
// @Summary Toggle spa treatment featured flag
// @Tags Spa
// @Accept json
// @Produce json
// @Param id path string true "Treatment ID"
// @Param request body dto.SetFeaturedRequest true "Featured flag"
// @Success 200 {object} response.Message
// @Router /v1/spa/treatments/{id}/featured [patch]
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
		log.Error().Err(err).Msg("failed to update spa treatment featured flag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Spa treatment featured flag updated")
}

// DeleteTreatment removes a spa treatment.
// @Summary Delete a spa treatment
// @Tags Spa
// @Produce json
// @Param id path string true "Treatment ID"
// @Success 200 {object} response.Message
// @Router /v1/spa/treatments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTreatment")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete spa treatment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Spa treatment deleted successfully")
}

// Book schedules a treatment for the caller.
// @Summary Book a spa treatment
// @Tags Spa
// @Accept json
// @Produce json
// @Param id path string true "Treatment ID"
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/spa/treatments/{id}/bookings [post]
// @Security BearerAuth
func (handler *Handler) Book(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Book(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book spa treatment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings lists spa bookings for staff.
// @Summary Get spa bookings
// @Tags Spa
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param treatment_id query string false "Filter by treatment"
// @Param room_number query string false "Filter by room number"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetBookingsResponse
// @Router /v1/spa/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldTreatmentID, gDto.FilterOperatorEq, query.Get(model.FieldTreatmentID), model.BookingTableName)
	filterGroup.AddFilter(model.FieldRoomNumber, gDto.FilterOperatorEq, query.Get(model.FieldRoomNumber), model.BookingTableName)
	filterGroup.AddFilter(model.FieldStatus, gDto.FilterOperatorEq, query.Get(model.FieldStatus), model.BookingTableName)

	res, err := handler.service.GetBookings(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMyBookings lists the caller's spa bookings.
// @Summary Get my spa bookings
// @Tags Spa
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 401 {object} response.Error
// @Router /v1/spa/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
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

	filterGroup.AddFilter(model.FieldCreatedBy, gDto.FilterOperatorEq, userID, model.BookingTableName)

	res, err := handler.service.GetBookings(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateBookingStatus sets the status label of a spa booking.
// @Summary Update spa booking status
// @Tags Spa
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/spa/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	req := dto.UpdateBookingStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateBookingStatus(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update spa booking status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking status updated")
}
