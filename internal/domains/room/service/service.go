package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/room/model"
	"concierge/internal/domains/room/model/dto"
	"concierge/internal/domains/room/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/media"
	gRepo "concierge/shared/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom         = "room:get"
	cacheGetRoomByNumber = "room:number"
	cacheGetAllRoom      = "room:gets"
	cacheCountRoom       = "room:count"
)

var (
	errRoomNotFound = failure.NotFound("room not found")
	errNumberTaken  = failure.Conflict("room number already exists")
)

// Room manages the room inventory. Rooms are cached by id and by door number; any write
// drops both along with the cached lists.
type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	GetByNumber(ctx context.Context, roomNumber string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	uploader media.Uploader
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, uploader media.Uploader) Room {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		uploader: uploader,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// checked before the upload so a duplicate never leaves an orphaned image behind
	taken, err := s.repo.Exist(ctx, shared.FilterByID(req.RoomNumber, model.FieldRoomNumber, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check room number: %w", err)
	}

	if taken {
		return errNumberTaken
	}

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err
	}

	room := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, room); err != nil {
		s.discard(ctx, objectName)

		if errors.Is(err, gRepo.ErrDuplicate) {
			return errNumberTaken
		}

		log.Error().Err(err).Str("room_number", req.RoomNumber).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	log.Info().Str("room_id", room.ID).Str("room_number", room.RoomNumber).Msg("room added")

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetRoomsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		rooms, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to get rooms: %w", err)
		}

		res.FromModels(rooms, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count rooms: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.getBy(ctx, cacheGetRoom, model.FieldID, id)
}

// GetByNumber looks a room up by the number printed on its door.
func (s *serviceImpl) GetByNumber(ctx context.Context, roomNumber string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByNumber")
	defer scope.End()
	defer scope.TraceIfError(&err)

	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == constant.Empty {
		return res, errRoomNotFound
	}

	return s.getBy(ctx, cacheGetRoomByNumber, model.FieldRoomNumber, roomNumber)
}

func (s *serviceImpl) getBy(ctx context.Context, cachePrefix, field, value string) (dto.RoomResponse, error) {
	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cachePrefix, value), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.RoomResponse, err error) {
		room, err := s.find(ctx, shared.FilterByID(value, field, model.TableName))
		if err != nil {
			return res, err
		}

		res.FromModel(room)

		return res, nil
	})
}

func (s *serviceImpl) find(ctx context.Context, filter gDto.FilterGroup) (model.Room, error) {
	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, errRoomNotFound
	}

	return room, nil
}

// discard removes an uploaded image that no row points at. Failures only leak storage.
func (s *serviceImpl) discard(ctx context.Context, objectName string) {
	if err := s.uploader.Delete(ctx, model.EntityName, objectName); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("failed to remove orphaned room image")
	}
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.find(ctx, filter)
	if err != nil {
		return err
	}

	imageURL, objectName, err := s.uploader.Upload(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		fields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		s.discard(ctx, objectName)

		if errors.Is(err, gRepo.ErrDuplicate) {
			return errNumberTaken
		}

		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	// the replaced picture is only dropped once the row points at the new one
	if imageURL != constant.Empty {
		if err := s.uploader.DeleteByURL(ctx, model.EntityName, current.Image); err != nil {
			log.Warn().Err(err).Str("room_id", id).Msg("failed to delete previous room image")
		}
	}

	s.invalidate(ctx, current.ID)

	return nil
}

// SetFeatured flips the featured flag shown on the guest home page.
func (s *serviceImpl) SetFeatured(ctx context.Context, id string, featured bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetFeatured")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exists {
		return errRoomNotFound
	}

	fields := shared.TransformFields(dto.SetFeaturedRequest{Featured: &featured}, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("room_id", id).Bool("featured", featured).Msg("failed to update room featured flag")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.find(ctx, filter)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if err := s.uploader.DeleteByURL(ctx, model.EntityName, room.Image); err != nil {
		log.Warn().Err(err).Str("room_id", id).Msg("failed to delete room image")
	}

	s.invalidate(ctx, id)

	return nil
}

// invalidate drops the entity keys before returning, so a read that follows a write
// never sees the old row. Lists and counts are swept in the background.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Warn().Err(err).Str("room_id", id).Msg("failed to drop cached room")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetRoomByNumber)

	go func() {
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
