package room

import (
	"concierge/infras/otel"
	"concierge/internal/domains/room/model"
	"concierge/internal/domains/room/model/dto"
	"concierge/internal/domains/room/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
	"concierge/transport/http/response"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramNumber = "number"

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", handler.CreateRoom)
		r.Get("/", handler.GetRooms)
		r.Get("/number/{number}", handler.GetRoomByNumber)
		r.Get("/{id}", handler.GetRoomByID)
		r.Patch("/{id}", handler.UpdateRoom)
		r.Patch("/{id}/featured", handler.SetFeatured)
		r.Delete("/{id}", handler.DeleteRoom)
	})
}

// readForm decodes the multipart body shared by create and update. Numbers that do not
// parse are rejected rather than dropped. The returned func closes the uploaded image.
func readForm(r *http.Request) (dto.UpdateRoomRequest, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.UpdateRoomRequest{}, noop, failure.BadRequest(err)
	}

	form := dto.UpdateRoomRequest{
		RoomNumber:  r.FormValue(model.FieldRoomNumber),
		Type:        r.FormValue(model.FieldType),
		Status:      r.FormValue(model.FieldStatus),
		Description: r.FormValue(model.FieldDescription),
		Featured:    shared.ConvertStringToBool(r.FormValue(model.FieldFeatured)),
		Active:      shared.ConvertStringToBool(r.FormValue(model.FieldActive)),
	}

	if raw := r.FormValue(model.FieldPrice); raw != constant.Empty {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return form, noop, failure.BadRequestFromString(fmt.Sprintf("price %q is not a number", raw))
		}

		form.Price = &price
	}

	if raw := r.FormValue(model.FieldCapacity); raw != constant.Empty {
		capacity, err := shared.ConvertStringToInt(raw)
		if err != nil {
			return form, noop, failure.BadRequestFromString(fmt.Sprintf("capacity %q is not a whole number", raw))
		}

		form.Capacity = &capacity
	}

	file, header, err := r.FormFile(model.FieldImage)
	if err != nil {
		return form, noop, nil
	}

	form.Image, form.ImageFile = header, file

	return form, func() { file.Close() }, nil
}

func roomFilters(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}
	group.AddFilter(model.FieldType, gDto.FilterOperatorLike, query.Get(model.FieldType), model.TableName)
	group.AddFilter(model.FieldStatus, gDto.FilterOperatorEq, query.Get(model.FieldStatus), model.TableName)
	group.AddBoolFilter(model.FieldFeatured, query.Get(model.FieldFeatured), model.TableName)

	// hide retired rooms unless asked
	active := query.Get(model.FieldActive)
	if active == constant.Empty {
		active = "true"
	}

	group.AddBoolFilter(model.FieldActive, active, model.TableName)

	return group
}

// CreateRoom
// @Summary Add a room
// @Description Room numbers are unique. The image is resized and stored in object storage.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_number formData string true "Room number"
// @Param type formData string true "Room type"
// @Param status formData string false "available, occupied or maintenance"
// @Param price formData number false "Nightly price"
// @Param capacity formData integer false "Guests the room sleeps"
// @Param description formData string false "Description"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Bookable"
// @Param image formData file false "Photo"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Room number taken"
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	form, closeImage, err := readForm(r)
	defer closeImage()

	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomNumber:  form.RoomNumber,
		Type:        form.Type,
		Status:      form.Status,
		Description: form.Description,
		Image:       form.Image,
		ImageFile:   form.ImageFile,
		Featured:    form.Featured,
		Active:      form.Active,
	}

	if form.Price != nil {
		req.Price = *form.Price
	}

	if form.Capacity != nil {
		req.Capacity = *form.Capacity
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_number", req.RoomNumber).Msg("failed to add room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms
// @Summary List rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Room type contains"
// @Param status query string false "available, occupied or maintenance"
// @Param featured query boolean false "Featured only"
// @Param active query boolean false "Bookable only, defaults to true"
// @Success 200 {object} dto.GetRoomsResponse
// @Failure 400 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, params, roomFilters(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoomByNumber looks a room up by the number on its door.
// @Summary Get a room by number
// @Tags Room
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Error
// @Router /v1/rooms/number/{number} [get]
func (handler *Handler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByNumber")
	defer scope.End()

	room, err := handler.service.GetByNumber(ctx, chi.URLParam(r, paramNumber))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom
// @Summary Update a room
// @Description Only the fields sent are changed. A new image replaces the stored one.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param room_number formData string false "Room number"
// @Param type formData string false "Room type"
// @Param status formData string false "available, occupied or maintenance"
// @Param price formData number false "Nightly price"
// @Param capacity formData integer false "Guests the room sleeps"
// @Param description formData string false "Description"
// @Param featured formData boolean false "Show on the guest home page"
// @Param active formData boolean false "Bookable"
// @Param image formData file false "Photo"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room number taken"
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req, closeImage, err := readForm(r)
	defer closeImage()

	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// SetFeatured
// @Summary Feature or unfeature a room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.SetFeaturedRequest true "Featured flag"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/featured [patch]
// @Security BearerAuth
func (handler *Handler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFeatured")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetFeaturedRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.SetFeatured(ctx, id, *req.Featured); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to change featured flag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room featured flag updated")
}

// DeleteRoom
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
