package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	hotelModel "hotel/internal/domains/hotel/model"
	hotelRepo "hotel/internal/domains/hotel/repository"
	positionModel "hotel/internal/domains/position/model"
	positionRepo "hotel/internal/domains/position/repository"
	"hotel/internal/domains/staff/model"
	"hotel/internal/domains/staff/model/dto"
	"hotel/internal/domains/staff/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Staff
	hotelRepo    hotelRepo.Hotel
	positionRepo positionRepo.Position
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Staff,
	hotelRepo hotelRepo.Hotel,
	positionRepo positionRepo.Position,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Staff {
	return &serviceImpl{
		repo:         repo,
		hotelRepo:    hotelRepo,
		positionRepo: positionRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.positionRepo.Exist(ctx, shared.FilterByID(req.PositionID, positionModel.FieldID, positionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if position exists")

		return res, fmt.Errorf("failed to check if position exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("position not found") // nolint:wrapcheck
	}

	hotelID, err := s.hotelID(ctx, req.HotelID)
	if err != nil {
		return res, err
	}

	record := req.ToModel(shared.Operator(ctx), hotelID)

	if err = s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create staff member")

		return res, failure.FromPostgres(fmt.Errorf("failed to create staff member: %w", err), "position does not exist") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff member count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff member")

		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateStaffRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, shared.Operator(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return failure.FromPostgres(fmt.Errorf("failed to update staff member: %w", err), "position does not exist") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete staff member")

		return failure.FromPostgres(fmt.Errorf("failed to delete staff member: %w", err), "staff member cannot be deleted") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// hotelID falls back to the hotel record when the request names none.
func (s *serviceImpl) hotelID(ctx context.Context, requested string) (string, error) {
	filter := gDto.FilterGroup{}
	if requested != constant.Empty {
		filter = shared.FilterByID(requested, hotelModel.FieldID, hotelModel.TableName)
	}

	hotel, err := s.hotelRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return constant.Empty, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return constant.Empty, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return hotel.ID, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete staff member from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()
}
