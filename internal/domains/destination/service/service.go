package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/destination/model"
	"concierge/internal/domains/destination/model/dto"
	"concierge/internal/domains/destination/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/media"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetDestination    = "destination:get"
	cacheGetAllDestination = "destination:gets"
	cacheCountDestination  = "destination:count"
)

var ErrDeleteImages = errors.New("failed to delete destination images")

type Destination interface {
	Create(ctx context.Context, req dto.CreateDestinationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DestinationResponse, error)
	Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, id string, req dto.AddImageRequest) (dto.AddImageResponse, error)
	RemoveImages(ctx context.Context, id string, req dto.RemoveImagesRequest) error
}

type serviceImpl struct {
	repo     repository.Destination
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	uploader media.Uploader
}

func New(repo repository.Destination, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, uploader media.Uploader) Destination {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		uploader: uploader,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDestinationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create destination")

		return fmt.Errorf("failed to create destination: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllDestination, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetDestinationsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		destinations, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get destinations")

			return res, fmt.Errorf("failed to get destinations: %w", err)
		}

		res.FromModels(destinations, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountDestination, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count destinations: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetDestination, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.DestinationResponse, err error) {
		destination, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(destination)

		return res, nil
	})
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Destination, error) {
	destination, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return destination, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return destination, failure.NotFound("destination not found")
	}

	return destination, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check destination existence")

		return fmt.Errorf("failed to check destination existence: %w", err)
	}

	if !exist {
		return failure.NotFound("destination not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update destination")

		return fmt.Errorf("failed to update destination: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) SetFeatured(ctx context.Context, id string, featured bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetFeatured")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check destination existence: %w", err)
	}

	if !exist {
		return failure.NotFound("destination not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(dto.SetFeaturedRequest{Featured: &featured}, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update destination featured flag")

		return fmt.Errorf("failed to update destination: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	destination, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete destination")

		return fmt.Errorf("failed to delete destination: %w", err)
	}

	s.invalidate(ctx, id)

	go func() {
		if err := s.deleteImages(context.WithoutCancel(ctx), destination.Images); err != nil {
			log.Error().Err(err).Str("destination", id).Msg("failed to clean up destination images")
		}
	}()

	return nil
}

// AddImage uploads one picture and appends it to the destination's gallery.
func (s *serviceImpl) AddImage(ctx context.Context, id string, req dto.AddImageRequest) (res dto.AddImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	destination, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	url, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	images := append(slices.Clone(destination.Images), url)

	fields := shared.TransformFields(dto.UpdateDestinationRequest{Images: images}, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to attach destination image")

		if delErr := s.uploader.Delete(ctx, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up destination image")
		}

		return res, fmt.Errorf("failed to attach destination image: %w", err)
	}

	s.invalidate(ctx, id)

	res.URL = url
	res.Images = images

	return res, nil
}

// RemoveImages detaches the given URLs from the gallery and deletes the stored objects.
func (s *serviceImpl) RemoveImages(ctx context.Context, id string, req dto.RemoveImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveImages")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	destination, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	kept := pq.StringArray{}
	removed := []string{}

	for _, url := range destination.Images {
		if slices.Contains(req.ImageURLs, url) {
			removed = append(removed, url)

			continue
		}

		kept = append(kept, url)
	}

	if len(removed) == 0 {
		return failure.BadRequestFromString("none of the images belong to this destination")
	}

	fields := shared.TransformFields(dto.UpdateDestinationRequest{}, user)
	fields[model.FieldImages] = kept

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to detach destination images")

		return fmt.Errorf("failed to detach destination images: %w", err)
	}

	s.invalidate(ctx, id)

	return s.deleteImages(ctx, removed)
}

func (s *serviceImpl) deleteImages(ctx context.Context, urls []string) error {
	failed := 0

	for _, url := range urls {
		if err := s.uploader.DeleteByURL(ctx, model.EntityName, url); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete destination image")

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImages, failed)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDestination, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete destination cache")
		}
	}

	go func() {
		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
		shared.InvalidateCaches(c, s.cache, cacheCountDestination)
	}()
}
