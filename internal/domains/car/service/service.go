package service

import (
	"context"
	"fmt"
	"washly/config"
	"washly/infras/otel"
	"washly/internal/domains/car/model"
	"washly/internal/domains/car/model/dto"
	"washly/internal/domains/car/repository"
	"washly/shared"
	"washly/shared/cache"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCar    = "car:get"
	cacheGetAllCar = "car:gets"
	cacheCountCar  = "car:count"
)

type Car interface {
	Create(ctx context.Context, req dto.CreateCarRequest, userID string) error
	GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetCarsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCarsResponse, error)
	Get(ctx context.Context, id, userID, role string) (dto.CarResponse, error)
	Update(ctx context.Context, req dto.UpdateCarRequest, id, userID string) error
	Delete(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo  repository.Car
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Car, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Car {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByOwner(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCarRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	plateFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPlateNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.PlateNumber,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, plateFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if plate number exists")

		return fmt.Errorf("failed to check if plate number exists: %w", err)
	}

	if exists {
		return failure.Conflict("a car with this plate number is already registered")
	}

	if err = s.repo.Insert(ctx, req.ToModel(userID)); err != nil {
		log.Error().Err(err).Msg("failed to create car")

		return fmt.Errorf("failed to create car: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCar)
	shared.InvalidateCaches(ctx, s.cache, cacheCountCar)

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetCarsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.GetAll(ctx, req, filterByOwner(userID))
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCarsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCar, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cars")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars")

		return res, fmt.Errorf("failed to get cars: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save cars to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID, role string) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	car, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return res, failure.NotFound("car not found")
	}

	if role != constant.RoleAdmin && car.UserID != userID {
		return res, failure.Forbidden("this car does not belong to you")
	}

	res.FromModel(car)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCarRequest, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCarRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	car, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return failure.NotFound("car not found")
	}

	if car.UserID != userID {
		return failure.Forbidden("this car does not belong to you")
	}

	updatedFields := shared.TransformFields(req, userID)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update car")

		return fmt.Errorf("failed to update car: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCar)
	shared.InvalidateCaches(ctx, s.cache, cacheCountCar)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	car, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return failure.NotFound("car not found")
	}

	if car.UserID != userID {
		return failure.Forbidden("this car does not belong to you")
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete car")

		return fmt.Errorf("failed to delete car: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCar)
	shared.InvalidateCaches(ctx, s.cache, cacheCountCar)

	return nil
}
