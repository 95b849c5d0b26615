package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"washly/config"
	"washly/infras/otel"
	"washly/infras/s3"
	"washly/internal/domains/washer/model"
	"washly/internal/domains/washer/model/dto"
	"washly/internal/domains/washer/repository"
	"washly/shared"
	"washly/shared/cache"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllWasher = "washer:gets"
	cacheCountWasher  = "washer:count"

	kycPhotoDirectory = "washer-kyc"
)

type Washer interface {
	Register(ctx context.Context, req dto.CreateWasherRequest, userID string) error
	GetProfile(ctx context.Context, userID string) (dto.WasherResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetWashersResponse, error)
	Update(ctx context.Context, req dto.UpdateWasherRequest, userID string) error
	UploadKYCPhoto(ctx context.Context, userID string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
	ReviewKYC(ctx context.Context, req dto.ReviewKYCRequest, washerID, adminID string) error
}

type serviceImpl struct {
	repo     repository.Washer
	s3Client s3.S3
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Washer, s3Client s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Washer {
	return &serviceImpl{
		repo:     repo,
		s3Client: s3Client,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.CreateWasherRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if washer profile exists")

		return fmt.Errorf("failed to check if washer profile exists: %w", err)
	}

	if exists {
		return failure.Conflict("washer profile already exists for this account")
	}

	if err = s.repo.Insert(ctx, req.ToModel(userID)); err != nil {
		log.Error().Err(err).Msg("failed to create washer profile")

		return fmt.Errorf("failed to create washer profile: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllWasher)
	shared.InvalidateCaches(ctx, s.cache, cacheCountWasher)

	return nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.WasherResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	washer, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get washer profile")

		return res, fmt.Errorf("failed to get washer profile: %w", err)
	}

	if washer.ID == constant.Empty {
		return res, failure.NotFound("washer profile not found")
	}

	res.FromModel(washer)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetWashersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllWasher, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for washers")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count washers")

		return res, fmt.Errorf("failed to count washers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get washers")

		return res, fmt.Errorf("failed to get washers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save washers to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateWasherRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateWasherRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	washer, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get washer profile")

		return fmt.Errorf("failed to get washer profile: %w", err)
	}

	if washer.ID == constant.Empty {
		return failure.NotFound("washer profile not found")
	}

	// Availability is meaningless until KYC passes.
	if req.IsAvailable != nil && *req.IsAvailable && washer.KYCStatus != model.KYCStatusApproved {
		return failure.BadRequestFromString("washer must pass KYC review before going available")
	}

	updatedFields := shared.TransformFields(req, userID)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(washer.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update washer profile")

		return fmt.Errorf("failed to update washer profile: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllWasher)

	return nil
}

func (s *serviceImpl) UploadKYCPhoto(ctx context.Context, userID string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadKYCPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	washer, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get washer profile")

		return constant.Empty, fmt.Errorf("failed to get washer profile: %w", err)
	}

	if washer.ID == constant.Empty {
		return constant.Empty, failure.NotFound("washer profile not found")
	}

	fileName := uuid.NewString()

	url, err = s.s3Client.UploadFile(ctx, constant.Empty, kycPhotoDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload KYC photo")

		return constant.Empty, fmt.Errorf("failed to upload KYC photo: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldIDPhotoURL: url,
		// Fresh document resets the review.
		model.FieldKYCStatus: model.KYCStatusPending,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(washer.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to store KYC photo url")

		return constant.Empty, fmt.Errorf("failed to store KYC photo url: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) ReviewKYC(ctx context.Context, req dto.ReviewKYCRequest, washerID, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewKYC")
	defer scope.End()
	defer scope.TraceIfError(err)

	washer, err := s.repo.Get(ctx, shared.FilterByID(washerID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get washer")

		return fmt.Errorf("failed to get washer: %w", err)
	}

	if washer.ID == constant.Empty {
		return failure.NotFound("washer not found")
	}

	if washer.IDPhotoURL == nil {
		return failure.BadRequestFromString("washer has not submitted a KYC document")
	}

	updatedFields := shared.TransformFields(req, adminID)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(washerID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update washer KYC status")

		return fmt.Errorf("failed to update washer KYC status: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllWasher)

	return nil
}
