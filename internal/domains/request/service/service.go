package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/request/model"
	"concierge/internal/domains/request/model/dto"
	"concierge/internal/domains/request/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCategory = "request_category:gets"
	cacheCountCategory  = "request_category:count"
	cacheGetAllItem     = "request_item:gets"
	cacheCountItem      = "request_item:count"
)

type Request interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error
	GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCategoriesResponse, error)
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	DeleteCategory(ctx context.Context, id string) error

	CreateItem(ctx context.Context, req dto.CreateItemRequest) error
	GetItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) error
	DeleteItem(ctx context.Context, id string) error

	Record(ctx context.Context, req dto.RecordRequest) (dto.ServiceRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServiceRequestsResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	categoryRepo repository.Category
	itemRepo     repository.Item
	repo         repository.ServiceRequest
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(categoryRepo repository.Category, itemRepo repository.Item, repo repository.ServiceRequest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Request {
	return &serviceImpl{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		repo:         repo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

func (s *serviceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.categoryRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create request category")

		return fmt.Errorf("failed to create request category: %w", err)
	}

	s.invalidate(ctx, cacheGetAllCategory, cacheCountCategory)

	return nil
}

func (s *serviceImpl) GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldSortOrder
		req.SortDir = gDto.SortDirAsc
	}

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetCategoriesResponse, err error) {
		total, err := s.categoryRepo.Count(ctx, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count request categories: %w", err)
		}

		models, err := s.categoryRepo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get request categories")

			return res, fmt.Errorf("failed to get request categories: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	exist, err := s.categoryRepo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if request category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("request category not found")
	}

	if err = s.categoryRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update request category")

		return fmt.Errorf("failed to update request category: %w", err)
	}

	s.invalidate(ctx, cacheGetAllCategory, cacheCountCategory)

	return nil
}

func (s *serviceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	exist, err := s.categoryRepo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if request category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("request category not found")
	}

	items, err := s.itemRepo.Count(ctx, shared.FilterByID(id, model.FieldCategoryID, model.ItemTableName))
	if err != nil {
		return fmt.Errorf("failed to count request items: %w", err)
	}

	if items > 0 {
		return failure.Conflict("request category still has items")
	}

	if err = s.categoryRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete request category")

		return fmt.Errorf("failed to delete request category: %w", err)
	}

	s.invalidate(ctx, cacheGetAllCategory, cacheCountCategory)

	return nil
}

func (s *serviceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
	if err != nil {
		return fmt.Errorf("failed to check if request category exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("request category does not exist")
	}

	if err = s.itemRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create request item")

		return fmt.Errorf("failed to create request item: %w", err)
	}

	s.invalidate(ctx, cacheGetAllItem, cacheCountItem)

	return nil
}

func (s *serviceImpl) GetItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItems")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, filter), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetItemsResponse, err error) {
		total, err := s.itemRepo.Count(ctx, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count request items: %w", err)
		}

		models, err := s.itemRepo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get request items")

			return res, fmt.Errorf("failed to get request items: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req == (dto.UpdateItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ItemTableName)

	exist, err := s.itemRepo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if request item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("request item not found")
	}

	if err = s.itemRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update request item")

		return fmt.Errorf("failed to update request item: %w", err)
	}

	s.invalidate(ctx, cacheGetAllItem, cacheCountItem)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.ItemTableName)

	exist, err := s.itemRepo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if request item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("request item not found")
	}

	if err = s.itemRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete request item")

		return fmt.Errorf("failed to delete request item: %w", err)
	}

	s.invalidate(ctx, cacheGetAllItem, cacheCountItem)

	return nil
}

// Record stores one service request. It performs a single insert and never retries.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordRequest) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := req.UserID
	if user == constant.Empty {
		user, _ = ctx.Value(constant.ContextKeyUserID).(string)
	}

	row := req.ToModel(user)

	if err = s.repo.Insert(ctx, row); err != nil {
		log.Error().Err(err).Str("chat_message_id", req.ChatMessageID).Msg("failed to create service request")

		return res, fmt.Errorf("failed to create service request: %w", err)
	}

	res.FromModel(row)

	return res, nil
}

// GetAll lists service requests. Staff see live data, so results are never cached.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServiceRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count service requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests")

		return res, fmt.Errorf("failed to get service requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	row, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get service request: %w", err)
	}

	if row.ID == constant.Empty {
		return res, failure.NotFound("service request not found")
	}

	res.FromModel(row)

	return res, nil
}

// UpdateStatus sets any status value. Statuses are labels, not a state machine.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Status = strings.TrimSpace(req.Status)
	if req.Status == constant.Empty {
		return failure.BadRequestFromString("status is required")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if service request exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service request not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service request status")

		return fmt.Errorf("failed to update service request: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if service request exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service request not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete service request: %w", err)
	}

	return nil
}
