package guest

import (
	"concierge/infras/otel"
	"concierge/internal/domains/guest/model"
	"concierge/internal/domains/guest/model/dto"
	"concierge/internal/domains/guest/service"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/validator"
	"concierge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/guests", func(r chi.Router) {
		r.Get("/me", handler.GetMe)
		r.Put("/me", handler.UpdateMe)
		r.Get("/me/identity", handler.GetIdentity)

		r.Post("/", handler.CreateGuest)
		r.Get("/", handler.GetGuests)
		r.Get("/{id}", handler.GetGuestByID)
		r.Patch("/{id}", handler.UpdateGuest)
		r.Delete("/{id}", handler.DeleteGuest)
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(constant.ContextKeyUserID).(string)

	return id
}

// GetIdentity resolves the name and room used on the guest's behalf.
// @Summary Resolve my guest identity
// @Description Profile values win over the cached values passed as query parameters, which win over defaults.
// @Tags Guest
// @Produce json
// @Param guest_name query string false "Cached guest name"
// @Param room_number query string false "Cached room number"
// @Success 200 {object} dto.Identity
// @Failure 401 {object} response.Error
// @Router /v1/guests/me/identity [get]
// @Security BearerAuth
func (handler *Handler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIdentity")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.Resolve(ctx, userID(r), dto.IdentityHint{
		GuestName:  query.Get("guest_name"),
		RoomNumber: query.Get(model.FieldRoomNumber),
	})
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMe returns the signed-in guest's profile.
// @Summary Get my guest profile
// @Tags Guest
// @Produce json
// @Success 200 {object} dto.GuestResponse
// @Failure 404 {object} response.Error
// @Router /v1/guests/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	res, err := handler.service.GetMe(ctx, userID(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateMe creates or edits the signed-in guest's profile.
// @Summary Update my guest profile
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} dto.GuestResponse
// @Failure 400 {object} response.Error
// @Router /v1/guests/me [put]
// @Security BearerAuth
func (handler *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMe")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateMe(ctx, userID(r), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateGuest adds a guest profile for a user.
// @Summary Create a guest profile
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Guest created successfully")
}

// GetGuests lists guest profiles.
// @Summary Get guests
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Param guest_type query string false "Filter by guest type"
// @Param name query string false "Search first or last name"
// @Success 200 {object} dto.GetGuestsResponse
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldRoomNumber, gDto.FilterOperatorEq, query.Get(model.FieldRoomNumber), model.TableName)
	filterGroup.AddFilter(model.FieldGuestType, gDto.FilterOperatorEq, query.Get(model.FieldGuestType), model.TableName)

	if name := query.Get("name"); name != constant.Empty {
		byName := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}
		byName.AddFilter(model.FieldFirstName, gDto.FilterOperatorLike, name, model.TableName)
		byName.AddFilter(model.FieldLastName, gDto.FilterOperatorLike, name, model.TableName)

		filterGroup.Filters = append(filterGroup.Filters, byName)
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestByID returns one guest profile.
// @Summary Get a guest
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} dto.GuestResponse
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuest edits a guest profile.
// @Summary Update a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest removes a guest profile.
// @Summary Delete a guest
// @Tags Guest
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
