package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/event/model"
	"concierge/internal/domains/event/model/dto"
	"concierge/internal/domains/event/repository"
	guestService "concierge/internal/domains/guest/service"
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
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error

	Reserve(ctx context.Context, eventID string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetReservations(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	UpdateReservationStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) error
}

type serviceImpl struct {
	repo         repository.Event
	reservations repository.Reservation
	guest        guestService.Guest
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	uploader     media.Uploader
}

func New(
	repo repository.Event,
	reservations repository.Reservation,
	guest guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	uploader media.Uploader,
) Event {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		guest:        guest,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		uploader:     uploader,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// Reject a bad schedule before anything is uploaded.
	if _, _, err = dto.Schedule(req.StartsAt, req.EndsAt); err != nil {
		return err
	}

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err //nolint:wrapcheck
	}

	event, err := req.ToModel(user, imageURL)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up event image")
		}

		return fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetEventsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count events: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get events")

			return res, fmt.Errorf("failed to get events: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountEvent, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res int, err error) {
		res, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count events")

			return res, fmt.Errorf("failed to count events: %w", err)
		}

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetEvent, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.EventResponse, err error) {
		event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get event")

			return res, fmt.Errorf("failed to get event: %w", err)
		}

		if event.ID == constant.Empty {
			return res, failure.NotFound("event not found") // nolint:wrapcheck
		}

		res.FromModel(event)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check event existence")

		return fmt.Errorf("failed to get event: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("event not found")
	}

	start, end, err := dto.Schedule(req.StartsAt, req.EndsAt)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	startsAt, endsAt := current.StartsAt, current.EndsAt

	if start != nil {
		startsAt = *start
		updatedFields[model.FieldStartsAt] = startsAt
	}

	if end != nil {
		endsAt = end
		updatedFields[model.FieldEndsAt] = *end
	}

	if endsAt != nil && !endsAt.After(startsAt) {
		return failure.BadRequestFromString("ends_at must be after starts_at")
	}

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up event image")
		}

		return fmt.Errorf("failed to update event: %w", err)
	}

	if imageURL != constant.Empty {
		if delErr := s.uploader.DeleteByURL(ctx, model.EntityName, current.Image); delErr != nil {
			log.Error().Err(delErr).Msg("failed to delete previous event image")
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
		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exists {
		return failure.NotFound("event not found")
	}

	fields := shared.TransformFields(dto.SetFeaturedRequest{Featured: &featured}, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event featured flag")

		return fmt.Errorf("failed to update event: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	event, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if event.ID == constant.Empty {
		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	if delErr := s.uploader.DeleteByURL(ctx, model.EntityName, event.Image); delErr != nil {
		log.Error().Err(delErr).Msg("failed to delete event image")
	}

	s.invalidate(ctx, id)

	return nil
}

// Reserve signs the calling guest up for an event with a single insert.
// Identity is resolved but no guest profile is created here.
func (s *serviceImpl) Reserve(ctx context.Context, eventID string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	identity, err := s.guest.Resolve(ctx, user, req.IdentityHint)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	event, err := s.repo.Get(ctx, shared.FilterByID(eventID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty || !event.Active {
		return res, failure.NotFound("event not found") // nolint:wrapcheck
	}

	reservation := req.ToModel(event.ID, identity)

	if event.Capacity > 0 && reservation.Attendees > event.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("event admits at most %d attendees", event.Capacity))
	}

	if err = s.reservations.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create event reservation")

		return res, fmt.Errorf("failed to create event reservation: %w", err)
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetReservations(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservations")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.reservations.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count event reservations")

		return res, fmt.Errorf("failed to count event reservations: %w", err)
	}

	models, err := s.reservations.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event reservations")

		return res, fmt.Errorf("failed to get event reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateReservationStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReservationStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ReservationTableName)

	current, err := s.reservations.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get event reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err = s.reservations.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update event reservation")

		return fmt.Errorf("failed to update event reservation: %w", err)
	}

	return nil
}

// The cached event is dropped in line. List sweeps may trail the write.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event cache")
		}
	}

	go func() {
		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()
}
