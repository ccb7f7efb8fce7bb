package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/guest/model"
	"concierge/internal/domains/guest/model/dto"
	"concierge/internal/domains/guest/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	gRepo "concierge/shared/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"

	defaultGuestName  = "Guest"
	defaultRoomNumber = "000"
)

var ErrUserIDMissing = failure.Unauthorized("User ID missing")

type Guest interface {
	Resolve(ctx context.Context, userID string, hint dto.IdentityHint) (dto.Identity, error)
	EnsureProfile(ctx context.Context, identity dto.Identity) (dto.Identity, error)
	GetMe(ctx context.Context, userID string) (dto.GuestResponse, error)
	UpdateMe(ctx context.Context, userID string, req dto.UpdateProfileRequest) (dto.GuestResponse, error)
	Create(ctx context.Context, req dto.CreateGuestRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Resolve picks each identity field from the first source that has it. The session supplies the
// user id and email, then the stored profile, the client hint and the configured defaults are
// consulted in that order. A failed profile read degrades to the remaining sources.
func (s *serviceImpl) Resolve(ctx context.Context, userID string, hint dto.IdentityHint) (res dto.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	userID = strings.TrimSpace(userID)
	if userID == constant.Empty {
		return res, ErrUserIDMissing
	}

	res.UserID = userID
	res.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)

	if res.Email != constant.Empty {
		scope.AddEvent("identity email from session")
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to read guest profile, falling back to client identity")

		profile = model.Guest{}
	}

	if profile.ID != constant.Empty {
		res.GuestID = profile.ID

		if res.Email == constant.Empty && profile.Email != nil {
			res.Email = *profile.Email
		}

		if profile.Phone != nil {
			res.Phone = *profile.Phone
		}
	}

	res.Name, res.NameSource = firstOf(
		source{profile.FullName(), dto.SourceProfile},
		source{strings.TrimSpace(hint.GuestName), dto.SourceCache},
		source{s.defaultName(), dto.SourceDefaults},
	)

	res.RoomNumber, res.RoomSource = firstOf(
		source{strings.TrimSpace(profile.RoomNumber), dto.SourceProfile},
		source{strings.TrimSpace(hint.RoomNumber), dto.SourceCache},
		source{s.defaultRoomNumber(), dto.SourceDefaults},
	)

	return res, nil
}

// EnsureProfile creates the guest row for an identity that has none yet.
// A concurrent creation for the same user is resolved by reading the winner back.
func (s *serviceImpl) EnsureProfile(ctx context.Context, identity dto.Identity) (res dto.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureProfile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if identity.HasProfile() {
		return identity, nil
	}

	if identity.UserID == constant.Empty {
		return identity, ErrUserIDMissing
	}

	guest := identity.ToModel(identity.UserID)

	err = s.repo.Insert(ctx, guest)
	if err == nil {
		identity.GuestID = guest.ID

		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
			shared.InvalidateCaches(c, s.cache, cacheCountGuest)
		}()

		return identity, nil
	}

	if !errors.Is(err, gRepo.ErrDuplicate) {
		log.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to create guest profile")

		return identity, fmt.Errorf("failed to create guest profile: %w", err)
	}

	existing, err := s.repo.Get(ctx, shared.FilterByID(identity.UserID, model.FieldUserID, model.TableName), model.FieldID)
	if err != nil {
		return identity, fmt.Errorf("failed to read guest profile: %w", err)
	}

	identity.GuestID = existing.ID

	return identity, nil
}

func (s *serviceImpl) GetMe(ctx context.Context, userID string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMe")
	defer scope.End()
	defer scope.TraceIfError(&err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest profile")

		return res, fmt.Errorf("failed to get guest profile: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest profile not found")
	}

	res.FromModel(guest)

	return res, nil
}

// UpdateMe edits the caller's own profile, creating it when it does not exist yet.
func (s *serviceImpl) UpdateMe(ctx context.Context, userID string, req dto.UpdateProfileRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMe")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest profile")

		return res, fmt.Errorf("failed to get guest profile: %w", err)
	}

	if current.ID == constant.Empty {
		if strings.TrimSpace(req.FirstName) == constant.Empty {
			return res, failure.BadRequestFromString("first_name is required")
		}

		email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
		guest := req.ToModel(userID, email)

		if err = s.repo.Insert(ctx, guest); err != nil {
			log.Error().Err(err).Msg("failed to create guest profile")

			return res, fmt.Errorf("failed to create guest profile: %w", err)
		}

		s.invalidate(ctx, constant.Empty)
		res.FromModel(guest)

		return res, nil
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest profile")

		return res, fmt.Errorf("failed to update guest profile: %w", err)
	}

	s.invalidate(ctx, current.ID)

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get guest profile: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(req.UserID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if exists {
		return failure.Conflict("guest profile already exists for this user")
	}

	guest, err := req.ToModel(user)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return fmt.Errorf("failed to create guest: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetGuestsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count guests: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get guests")

			return res, fmt.Errorf("failed to get guests: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res int, err error) {
		res, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count guests")

			return res, fmt.Errorf("failed to count guests: %w", err)
		}

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetGuest, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GuestResponse, err error) {
		guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guest")

			return res, fmt.Errorf("failed to get guest: %w", err)
		}

		if guest.ID == constant.Empty {
			return res, failure.NotFound("guest not found")
		}

		res.FromModel(guest)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exists {
		return failure.NotFound("guest not found")
	}

	updatedFields := shared.TransformFields(req, user)

	checkIn, err := shared.ParseDate(req.CheckInDate)
	if err != nil {
		return failure.BadRequest(err)
	}

	if checkIn != nil {
		updatedFields[model.FieldCheckInDate] = *checkIn
	}

	checkOut, err := shared.ParseDate(req.CheckOutDate)
	if err != nil {
		return failure.BadRequest(err)
	}

	if checkOut != nil {
		updatedFields[model.FieldCheckOutDate] = *checkOut
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exists {
		return failure.NotFound("guest not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest cache")
		}
	}

	go func() {
		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()
}

func (s *serviceImpl) defaultName() string {
	if s.cfg.Guest.DefaultName != constant.Empty {
		return s.cfg.Guest.DefaultName
	}

	return defaultGuestName
}

func (s *serviceImpl) defaultRoomNumber() string {
	if s.cfg.Guest.DefaultRoomNumber != constant.Empty {
		return s.cfg.Guest.DefaultRoomNumber
	}

	return defaultRoomNumber
}

type source struct {
	value  string
	origin string
}

func firstOf(sources ...source) (value, origin string) {
	for _, src := range sources {
		if src.value != constant.Empty {
			return src.value, src.origin
		}
	}

	return constant.Empty, constant.Empty
}
