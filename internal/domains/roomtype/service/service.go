package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType    = "roomtype:get"
	cacheGetAllRoomType = "roomtype:gets"
	cacheCountRoomType  = "roomtype:count"

	imageDirectory = "room-types"
)

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.RoomType
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage s3.Storage
}

func New(repo repository.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage s3.Storage) RoomType {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	imageURL := constant.Empty

	if req.Image != nil {
		imageURL, err = s.storage.Upload(ctx, imageDirectory, req.Image, req.ImageFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room type image")

			return res, fmt.Errorf("failed to upload image: %w", err)
		}
	}

	roomType := req.ToModel(shared.Operator(ctx), imageURL)

	if err = s.repo.Insert(ctx, roomType); err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		s.removeImage(ctx, imageURL)

		return res, failure.FromPostgres(fmt.Errorf("failed to create room type: %w", err), "room type already exists") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	res.FromModel(roomType)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRoomTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountRoomTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room type")

		return res, nil
	}

	roomType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	res.FromModel(roomType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

// Update edits a room type and swaps its photo when a new one is uploaded.
// The old photo is removed only after the row points at the new one.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Name == constant.Empty && req.Price == nil && req.MaxGuests == nil && req.Image == nil {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	imageURL := constant.Empty

	if req.Image != nil {
		imageURL, err = s.storage.Upload(ctx, imageDirectory, req.Image, req.ImageFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room type image")

			return fmt.Errorf("failed to upload image: %w", err)
		}
	}

	updatedFields := shared.TransformFields(req, shared.Operator(ctx))
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		s.removeImage(ctx, imageURL)

		return failure.FromPostgres(fmt.Errorf("failed to update room type: %w", err), "room type already exists") // nolint:wrapcheck
	}

	if imageURL != constant.Empty {
		s.removeImage(ctx, current.Image)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room type")

		return failure.FromPostgres(fmt.Errorf("failed to delete room type: %w", err), "room type is used by rooms and cannot be deleted") // nolint:wrapcheck
	}

	s.removeImage(ctx, current.Image)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) removeImage(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	key := s.storage.ObjectKey(url)
	if key == constant.Empty {
		return
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove room type image")
	}
}

// invalidate also drops room caches since rooms embed their type's name and capacity.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
		shared.InvalidateCaches(c, s.cache, roomService.CacheGetRoom)
		shared.InvalidateCaches(c, s.cache, roomService.CacheGetAllRoom)
	}()
}
