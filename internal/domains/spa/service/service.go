package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	guestService "concierge/internal/domains/guest/service"
	"concierge/internal/domains/spa/model"
	"concierge/internal/domains/spa/model/dto"
	"concierge/internal/domains/spa/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/media"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTreatment    = "spa:get"
	cacheGetAllTreatment = "spa:gets"
	cacheCountTreatment  = "spa:count"
)

type Spa interface {
	Create(ctx context.Context, req dto.CreateTreatmentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTreatmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TreatmentResponse, error)
	Update(ctx context.Context, req dto.UpdateTreatmentRequest, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error

	Book(ctx context.Context, treatmentID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetBookings(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	UpdateBookingStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) error
}

type serviceImpl struct {
	repo     repository.Treatment
	bookings repository.Booking
	guest    guestService.Guest
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	uploader media.Uploader
}

func New(
	repo repository.Treatment,
	bookings repository.Booking,
	guest guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	uploader media.Uploader,
) Spa {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		guest:    guest,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		uploader: uploader,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTreatmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create spa treatment")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up spa treatment image")
		}

		return fmt.Errorf("failed to create spa treatment: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTreatmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllTreatment, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetTreatmentsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count spa treatments: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get spa treatments")

			return res, fmt.Errorf("failed to get spa treatments: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountTreatment, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res int, err error) {
		res, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count spa treatments")

			return res, fmt.Errorf("failed to count spa treatments: %w", err)
		}

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TreatmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetTreatment, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.TreatmentResponse, err error) {
		treatment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get spa treatment")

			return res, fmt.Errorf("failed to get spa treatment: %w", err)
		}

		if treatment.ID == constant.Empty {
			return res, failure.NotFound("spa treatment not found") // nolint:wrapcheck
		}

		res.FromModel(treatment)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTreatmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check spa treatment existence")

		return fmt.Errorf("failed to get spa treatment: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("spa treatment not found")
	}

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update spa treatment")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up spa treatment image")
		}

		return fmt.Errorf("failed to update spa treatment: %w", err)
	}

	if imageURL != constant.Empty {
		if delErr := s.uploader.DeleteByURL(ctx, model.EntityName, current.Image); delErr != nil {
			log.Error().Err(delErr).Msg("failed to delete previous spa treatment image")
		}
	}

	s.invalidate(ctx, current.ID)

	return nil
}

func (s *serviceImpl) SetFeatured(ctx context.Context, id string, featured bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetFeatured")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if spa treatment exists: %w", err)
	}

	if !exists {
		return failure.NotFound("spa treatment not found")
	}

	fields := shared.TransformFields(dto.SetFeaturedRequest{Featured: &featured}, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update spa treatment featured flag")

		return fmt.Errorf("failed to update spa treatment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	treatment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if spa treatment exists")

		return fmt.Errorf("failed to check if spa treatment exists: %w", err)
	}

	if treatment.ID == constant.Empty {
		return failure.NotFound("spa treatment not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete spa treatment")

		return fmt.Errorf("failed to delete spa treatment: %w", err)
	}

	if delErr := s.uploader.DeleteByURL(ctx, model.EntityName, treatment.Image); delErr != nil {
		log.Error().Err(delErr).Msg("failed to delete spa treatment image")
	}

	s.invalidate(ctx, id)

	return nil
}

// Book schedules a treatment for the calling guest with a single insert.
// Identity is resolved but no guest profile is created here.
func (s *serviceImpl) Book(ctx context.Context, treatmentID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	identity, err := s.guest.Resolve(ctx, user, req.IdentityHint)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	treatment, err := s.repo.Get(ctx, shared.FilterByID(treatmentID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa treatment")

		return res, fmt.Errorf("failed to get spa treatment: %w", err)
	}

	if treatment.ID == constant.Empty || !treatment.Active {
		return res, failure.NotFound("spa treatment not found") // nolint:wrapcheck
	}

	booking, err := req.ToModel(treatment.ID, identity)
	if err != nil {
		return res, err
	}

	if err = s.bookings.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create spa booking")

		return res, fmt.Errorf("failed to create spa booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetBookings(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.bookings.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count spa bookings")

		return res, fmt.Errorf("failed to count spa bookings: %w", err)
	}

	models, err := s.bookings.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa bookings")

		return res, fmt.Errorf("failed to get spa bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateBookingStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.BookingTableName)

	current, err := s.bookings.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get spa booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.bookings.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update spa booking")

		return fmt.Errorf("failed to update spa booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTreatment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete spa treatment cache")
		}
	}

	go func() {
		shared.InvalidateCaches(c, s.cache, cacheGetAllTreatment)
		shared.InvalidateCaches(c, s.cache, cacheCountTreatment)
	}()
}
