package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/dining/model"
	"concierge/internal/domains/dining/model/dto"
	"concierge/internal/domains/dining/repository"
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
	cacheGetRestaurant    = "restaurant:get"
	cacheGetAllRestaurant = "restaurant:gets"
	cacheCountRestaurant  = "restaurant:count"
)

type Dining interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRestaurantsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RestaurantResponse, error)
	Update(ctx context.Context, req dto.UpdateRestaurantRequest, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error

	Reserve(ctx context.Context, restaurantID string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetReservations(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	UpdateReservationStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) error
}

type serviceImpl struct {
	repo         repository.Restaurant
	reservations repository.Reservation
	guest        guestService.Guest
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	uploader     media.Uploader
}

func New(
	repo repository.Restaurant,
	reservations repository.Reservation,
	guest guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	uploader media.Uploader,
) Dining {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRestaurantRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create restaurant")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up restaurant image")
		}

		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllRestaurant, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetRestaurantsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count restaurants: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get restaurants")

			return res, fmt.Errorf("failed to get restaurants: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountRestaurant, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res int, err error) {
		res, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count restaurants")

			return res, fmt.Errorf("failed to count restaurants: %w", err)
		}

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetRestaurant, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.RestaurantResponse, err error) {
		restaurant, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get restaurant")

			return res, fmt.Errorf("failed to get restaurant: %w", err)
		}

		if restaurant.ID == constant.Empty {
			return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
		}

		res.FromModel(restaurant)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRestaurantRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check restaurant existence")

		return fmt.Errorf("failed to get restaurant: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("restaurant not found")
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
		log.Error().Err(err).Msg("failed to update restaurant")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up restaurant image")
		}

		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	if imageURL != constant.Empty {
		if delErr := s.uploader.DeleteByURL(ctx, model.EntityName, current.Image); delErr != nil {
			log.Error().Err(delErr).Msg("failed to delete previous restaurant image")
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
		return fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !exists {
		return failure.NotFound("restaurant not found")
	}

	fields := shared.TransformFields(dto.SetFeaturedRequest{Featured: &featured}, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update restaurant featured flag")

		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	restaurant, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete restaurant")

		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	if delErr := s.uploader.DeleteByURL(ctx, model.EntityName, restaurant.Image); delErr != nil {
		log.Error().Err(delErr).Msg("failed to delete restaurant image")
	}

	s.invalidate(ctx, id)

	return nil
}

// Reserve books a table for the calling guest with a single insert.
// Identity is resolved but no guest profile is created here.
func (s *serviceImpl) Reserve(ctx context.Context, restaurantID string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	identity, err := s.guest.Resolve(ctx, user, req.IdentityHint)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	restaurant, err := s.repo.Get(ctx, shared.FilterByID(restaurantID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty || !restaurant.Active {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	reservation, err := req.ToModel(restaurant.ID, identity)
	if err != nil {
		return res, err
	}

	if err = s.reservations.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create table reservation")

		return res, fmt.Errorf("failed to create table reservation: %w", err)
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
		log.Error().Err(err).Msg("failed to count table reservations")

		return res, fmt.Errorf("failed to count table reservations: %w", err)
	}

	models, err := s.reservations.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table reservations")

		return res, fmt.Errorf("failed to get table reservations: %w", err)
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
		return fmt.Errorf("failed to get table reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err = s.reservations.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update table reservation")

		return fmt.Errorf("failed to update table reservation: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRestaurant, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete restaurant cache")
		}
	}

	go func() {
		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurant)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurant)
	}()
}
