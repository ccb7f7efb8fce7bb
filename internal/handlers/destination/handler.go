package destination

import (
	"concierge/infras/otel"
	"concierge/internal/domains/destination/model"
	"concierge/internal/domains/destination/model/dto"
	"concierge/internal/domains/destination/service"
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
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Get("/{id}", handler.GetDestinationByID)
		routerGroup.Patch("/{id}", handler.UpdateDestination)
		routerGroup.Patch("/{id}/featured", handler.SetFeatured)
		routerGroup.Delete("/{id}", handler.DeleteDestination)
		routerGroup.Post("/{id}/images", handler.AddImage)
		routerGroup.Delete("/{id}/images", handler.RemoveImages)
	})
}

// CreateDestination handles the creation of a new destination.
// @Summary Create a destination
// @Description Create a nearby attraction with optional image URLs.
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Create Destination Request"
// @Success 201 {object} response.Message "Destination created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.CreateDestinationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Destination created successfully")
}

// GetDestinations lists destinations.
// @Summary Get destinations
// @Tags Destination
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param featured query boolean false "Filter by featured flag"
// @Success 200 {object} dto.GetDestinationsResponse
// @Failure 500 {object} response.Error
// @Router /v1/destinations [get]
func (handler *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	filterGroup.AddFilter(model.FieldTitle, gDto.FilterOperatorLike, query.Get(model.FieldTitle), model.TableName)
	filterGroup.AddBoolFilter(model.FieldFeatured, query.Get(model.FieldFeatured), model.TableName)

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDestinationByID returns one destination.
// @Summary Get a destination
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} dto.DestinationResponse
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id} [get]
func (handler *Handler) GetDestinationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateDestination edits a destination.
// @Summary Update a destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.UpdateDestinationRequest true "Update Destination Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	req := dto.UpdateDestinationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Destination updated successfully")
}

// SetFeatured toggles whether a destination is shown on the guest home page.
// @Summary Toggle destination featured flag
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.SetFeaturedRequest true "Featured flag"
// @Success 200 {object} response.Message
// @Router /v1/destinations/{id}/featured [patch]
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
		log.Error().Err(err).Msg("failed to update destination featured flag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Destination featured flag updated")
}

// DeleteDestination removes a destination along with its stored images.
// @Summary Delete a destination
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDestination")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Destination deleted successfully")
}

// AddImage uploads an image into the destination gallery.
// @Summary Upload a destination image
// @Tags Destination
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Destination ID"
// @Param image formData file true "Image file"
// @Success 201 {object} dto.AddImageResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.AddImageRequest{}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		req.Image = fileHeader
		req.ImageFile = file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddImage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add destination image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// RemoveImages detaches images from the destination and deletes them from storage.
// @Summary Remove destination images
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.RemoveImagesRequest true "Image URLs"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/destinations/{id}/images [delete]
// @Security BearerAuth
func (handler *Handler) RemoveImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveImages")
	defer scope.End()

	req := dto.RemoveImagesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RemoveImages(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove destination images")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Images removed successfully")
}
