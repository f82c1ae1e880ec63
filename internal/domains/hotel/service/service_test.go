package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHotelService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	req := dto.CreateHotelRequest{Name: "Grand", City: "Lisbon"}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "first hotel",
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "already initialised",
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantCode: 409,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Grand", res.Name)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-1", Name: "Grand"}, nil)

	_, err := svc.Get(context.Background())
	assert.True(t, failure.IsNotFound(err))

	res, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "hotel-1", res.ID)

	time.Sleep(10 * time.Millisecond)
}
