package service

import (
	"context"
	"fmt"
	"washly/config"
	"washly/infras/otel"
	"washly/internal/domains/servicemenu/model"
	"washly/internal/domains/servicemenu/model/dto"
	"washly/internal/domains/servicemenu/repository"
	washerModel "washly/internal/domains/washer/model"
	washerRepo "washly/internal/domains/washer/repository"
	"washly/shared"
	"washly/shared/cache"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetServiceMenu    = "service_menu:get"
	cacheGetAllServiceMenu = "service_menu:gets"
	cacheCountServiceMenu  = "service_menu:count"
)

type ServiceMenu interface {
	Create(ctx context.Context, req dto.CreateServiceMenuRequest, userID, role string) error
	GetAll(ctx context.Context, req gDto.QueryParams, activeOnly bool) (dto.GetServiceMenusResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceMenuResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceMenuRequest, id, userID, role string) error
	Delete(ctx context.Context, id, userID, role string) error
}

type serviceImpl struct {
	repo       repository.ServiceMenu
	washerRepo washerRepo.Washer
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.ServiceMenu, washerRepo washerRepo.Washer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ServiceMenu {
	return &serviceImpl{
		repo:       repo,
		washerRepo: washerRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// resolveWasher maps the caller to their washer profile. Admins may create
// unowned menu entries, washers own what they create.
func (s *serviceImpl) resolveWasher(ctx context.Context, userID, role string) (string, error) {
	if role == constant.RoleAdmin {
		return constant.Empty, nil
	}

	washer, err := s.washerRepo.Get(ctx, shared.FilterByID(userID, washerModel.FieldUserID, washerModel.TableName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get washer profile: %w", err)
	}

	if washer.ID == constant.Empty {
		return constant.Empty, failure.Forbidden("no washer profile for this account")
	}

	return washer.ID, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceMenuRequest, userID, role string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	washerID, err := s.resolveWasher(ctx, userID, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve washer for service menu")

		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(washerID, userID)); err != nil {
		log.Error().Err(err).Msg("failed to create service menu")

		return fmt.Errorf("failed to create service menu: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllServiceMenu)
	shared.InvalidateCaches(ctx, s.cache, cacheCountServiceMenu)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, activeOnly bool) (res dto.GetServiceMenusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if activeOnly {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllServiceMenu, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service menus")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service menus")

		return res, fmt.Errorf("failed to count service menus: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menus")

		return res, fmt.Errorf("failed to get service menus: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save service menus to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	menu, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menu")

		return res, fmt.Errorf("failed to get service menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return res, failure.NotFound("service menu not found")
	}

	res.FromModel(menu)

	return res, nil
}

// ownerGate rejects washers touching menu entries they do not own.
func (s *serviceImpl) ownerGate(ctx context.Context, menu model.ServiceMenu, userID, role string) error {
	if role == constant.RoleAdmin {
		return nil
	}

	washerID, err := s.resolveWasher(ctx, userID, role)
	if err != nil {
		return err
	}

	if menu.WasherID == nil || *menu.WasherID != washerID {
		return failure.Forbidden("this service menu does not belong to you")
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceMenuRequest, id, userID, role string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateServiceMenuRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	menu, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menu")

		return fmt.Errorf("failed to get service menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return failure.NotFound("service menu not found")
	}

	if err = s.ownerGate(ctx, menu, userID, role); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, userID)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service menu")

		return fmt.Errorf("failed to update service menu: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllServiceMenu)
	shared.InvalidateCaches(ctx, s.cache, cacheCountServiceMenu)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID, role string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	menu, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menu")

		return fmt.Errorf("failed to get service menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return failure.NotFound("service menu not found")
	}

	if err = s.ownerGate(ctx, menu, userID, role); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete service menu")

		return fmt.Errorf("failed to delete service menu: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllServiceMenu)
	shared.InvalidateCaches(ctx, s.cache, cacheCountServiceMenu)

	return nil
}
