package dining

import (
	"concierge/infras/otel"
	"concierge/internal/domains/dining/model"
	"concierge/internal/domains/dining/model/dto"
	"concierge/internal/domains/dining/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
	"concierge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dining
	otel    otel.Otel
}

func New(service service.Dining, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dining", func(routerGroup chi.Router) {
		routerGroup.Route("/restaurants", func(restaurants chi.Router) {
			restaurants.Post("/", handler.CreateRestaurant)
			restaurants.Get("/", handler.GetRestaurants)
			restaurants.Get("/{id}", handler.GetRestaurantByID)
			restaurants.Patch("/{id}", handler.UpdateRestaurant)
			restaurants.Patch("/{id}/featured", handler.SetFeatured)
			restaurants.Delete("/{id}", handler.DeleteRestaurant)
			restaurants.Post("/{id}/reservations", handler.Reserve)
		})

		routerGroup.Get("/reservations", handler.GetReservations)
		routerGroup.Get("/reservations/mine", handler.GetMyReservations)
		routerGroup.Patch("/reservations/{id}/status", handler.UpdateReservationStatus)
	})
}

func (handler *Handler) parseForm(r *http.Request) (dto.UpdateRestaurantRequest, func(), error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.UpdateRestaurantRequest{}, func() {}, failure.BadRequest(err)
	}

	req := dto.UpdateRestaurantRequest{
		Name:         r.FormValue(model.FieldName),
		Cuisine:      r.FormValue(model.FieldCuisine),
		Description:  r.FormValue(model.FieldDescription),
		OpeningHours: r.FormValue(model.FieldOpeningHours),
		Location:     r.FormValue(model.FieldLocation),
		Featured:     shared.ConvertStringToBool(r.FormValue(model.FieldFeatured)),
		Active:       shared.ConvertStringToBool(r.FormValue(model.FieldActive)),
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err != nil {
		return req, func() {}, nil
	}

	req.Image = fileHeader
	req.ImageFile = file

	return req, func() { file.Close() }, nil
}

// CreateRestaurant adds a dining venue.
// @Summary Create a restaurant
// @Tags Dining
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param cuisine formData string false "Cuisine"
// @Param opening_hours formData string false "Opening hours, e.g. 07:00-22:00"
// @Param location formData string false "Location in the hotel"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Taking reservations"
// @Param image formData file false "Restaurant image"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/dining/restaurants [post]
// @Security BearerAuth
func (handler *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurant")
	defer scope.End()

	form, closeFile, err := handler.parseForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected multipart form")
		response.WithError(w, err)

		return
	}
	defer closeFile()

	req := dto.CreateRestaurantRequest{
		Name:         form.Name,
		Cuisine:      form.Cuisine,
		Description:  form.Description,
		OpeningHours: form.OpeningHours,
		Location:     form.Location,
		Image:        form.Image,
		ImageFile:    form.ImageFile,
		Featured:     form.Featured,
		Active:       form.Active,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Restaurant created successfully")
}

// GetRestaurants lists the hotel's restaurants and bars.
// @Summary Get restaurants
// @Tags Dining
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param cuisine query string false "Filter by cuisine"
// @Param featured query boolean false "Filter by featured flag"
// @Param active query boolean false "Filter by active flag (default true)"
// @Success 200 {object} dto.GetRestaurantsResponse
// @Router /v1/dining/restaurants [get]
func (handler *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldName, gDto.FilterOperatorLike, query.Get(model.FieldName), model.TableName)
	filterGroup.AddFilter(model.FieldCuisine, gDto.FilterOperatorLike, query.Get(model.FieldCuisine), model.TableName)
	filterGroup.AddBoolFilter(model.FieldFeatured, query.Get(model.FieldFeatured), model.TableName)

	active := query.Get(model.FieldActive)
	if active == constant.Empty {
		active = "true"
	}

	filterGroup.AddBoolFilter(model.FieldActive, active, model.TableName)

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRestaurantByID returns one restaurant.
// @Summary Get a restaurant
// @Tags Dining
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 404 {object} response.Error
// @Router /v1/dining/restaurants/{id} [get]
func (handler *Handler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRestaurant edits a restaurant.
// @Summary Update a restaurant
// @Tags Dining
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param name formData string false "Name"
// @Param description formData string false "Description"
// @Param cuisine formData string false "Cuisine"
// @Param opening_hours formData string false "Opening hours, e.g. 07:00-22:00"
// @Param location formData string false "Location in the hotel"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Taking reservations"
// @Param image formData file false "Restaurant image"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/dining/restaurants/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRestaurant")
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
		log.Error().Err(err).Msg("failed to update restaurant")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Restaurant updated successfully")
}

// SetFeatured toggles whether a restaurant is featured.
// @Summary Toggle restaurant featured flag
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.SetFeaturedRequest true "Featured flag"
// @Success 200 {object} response.Message
// @Router /v1/dining/restaurants/{id}/featured [patch]
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
		log.Error().Err(err).Msg("failed to update restaurant featured flag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Restaurant featured flag updated")
}

// DeleteRestaurant removes a restaurant.
// @Summary Delete a restaurant
// @Tags Dining
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Message
// @Router /v1/dining/restaurants/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRestaurant")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete restaurant")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Restaurant deleted successfully")
}

// Reserve books a table for the caller.
// @Summary Reserve a table
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/dining/restaurants/{id}/reservations [post]
// @Security BearerAuth
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations lists table reservations for staff.
// @Summary Get table reservations
// @Tags Dining
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param restaurant_id query string false "Filter by restaurant"
// @Param room_number query string false "Filter by room number"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetReservationsResponse
// @Router /v1/dining/reservations [get]
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

	filterGroup.AddFilter(model.FieldRestaurantID, gDto.FilterOperatorEq, query.Get(model.FieldRestaurantID), model.ReservationTableName)
	filterGroup.AddFilter(model.FieldRoomNumber, gDto.FilterOperatorEq, query.Get(model.FieldRoomNumber), model.ReservationTableName)
	filterGroup.AddFilter(model.FieldStatus, gDto.FilterOperatorEq, query.Get(model.FieldStatus), model.ReservationTableName)

	res, err := handler.service.GetReservations(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMyReservations lists the caller's table reservations.
// @Summary Get my table reservations
// @Tags Dining
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetReservationsResponse
// @Failure 401 {object} response.Error
// @Router /v1/dining/reservations/mine [get]
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

	res, err := handler.service.GetReservations(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservationStatus sets the status label of a table reservation.
// @Summary Update table reservation status
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/dining/reservations/{id}/status [patch]
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
		log.Error().Err(err).Msg("failed to update table reservation status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation status updated")
}
