package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetHotel = "hotel:get"

// Hotel manages the single hotel record the rest of the data hangs off.
type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	Get(ctx context.Context) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest) error
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create initialises the hotel. It fails with a conflict once a hotel exists.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	if total > 0 {
		return res, failure.Conflict("hotel is already initialised") // nolint:wrapcheck
	}

	hotel := req.ToModel(shared.Operator(ctx))

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetHotel, &res)
	if err == nil {
		return res, nil
	}

	hotel, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel is not initialised") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHotel, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	hotel, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel is not initialised") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, shared.Operator(ctx))

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(hotel.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHotel); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}
	}()
}
