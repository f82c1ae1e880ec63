package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	amenityModel "hotel/internal/domains/amenity/model"
	amenityRepo "hotel/internal/domains/amenity/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	"hotel/internal/domains/guestservice/model"
	"hotel/internal/domains/guestservice/model/dto"
	"hotel/internal/domains/guestservice/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuestService    = "guestservice:get"
	cacheGetAllGuestService = "guestservice:gets"
	cacheCountGuestService  = "guestservice:count"
)

type GuestService interface {
	Create(ctx context.Context, req dto.CreateGuestServiceRequest) (dto.GuestServiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestServiceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.GuestService
	guestRepo   guestRepo.Guest
	amenityRepo amenityRepo.Amenity
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.GuestService,
	guestRepo guestRepo.Guest,
	amenityRepo amenityRepo.Amenity,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) GuestService {
	return &serviceImpl{
		repo:        repo,
		guestRepo:   guestRepo,
		amenityRepo: amenityRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create records that a guest used a service. The record is dated today unless a day is given.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestServiceRequest) (res dto.GuestServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGuestService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	amenity, err := s.amenityRepo.Get(ctx, shared.FilterByID(req.ServiceID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if amenity.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	record, err := req.ToModel(shared.Operator(ctx))
	if err != nil {
		return res, failure.BadRequestFromString("used_on must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	record.GuestName = guest.Name
	record.ServiceName = amenity.Name
	record.ServicePrice = amenity.Price

	if err = s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create guest service")

		return res, failure.FromPostgres(fmt.Errorf("failed to create guest service: %w", err), "guest or service does not exist") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuestService)
		shared.InvalidateCaches(c, s.cache, cacheCountGuestService)
	}()

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllGuestServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuestService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guest services")

		return res, fmt.Errorf("failed to count guest services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest services")

		return res, fmt.Errorf("failed to get guest services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountGuestServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuestService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest service count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guest services")

		return res, fmt.Errorf("failed to count guest services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuestService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGuestService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest service")

		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest service")

		return res, fmt.Errorf("failed to get guest service: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound("guest service not found") // nolint:wrapcheck
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuestService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateGuestServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.UsedOn != constant.Empty {
		day, err := timezone.ParseDay(req.UsedOn)
		if err != nil {
			return failure.BadRequestFromString("used_on must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		req.UsedOnDay = day
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest service exists")

		return fmt.Errorf("failed to check if guest service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest service not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, shared.Operator(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest service")

		return failure.FromPostgres(fmt.Errorf("failed to update guest service: %w", err), "guest or service does not exist") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGuestService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest service exists")

		return fmt.Errorf("failed to check if guest service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest service not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest service")

		return failure.FromPostgres(fmt.Errorf("failed to delete guest service: %w", err), "guest service cannot be deleted") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuestService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuestService)
		shared.InvalidateCaches(c, s.cache, cacheCountGuestService)
	}()
}
