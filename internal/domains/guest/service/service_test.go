package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	guestMocks "hotel/internal/domains/guest/mocks"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateGuestRequest{Name: "Ann Lee", Age: 34, Passport: "X1234567"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guest model.Guest) error {
						assert.Equal(t, "desk-1", guest.CreatedBy)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate passport",
			req:  dto.CreateGuestRequest{Name: "Ann Lee", Passport: "X1234567"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantCode: 409,
		},
		{
			name: "repository error",
			req:  dto.CreateGuestRequest{Name: "Ann Lee"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyOperatorID, "desk-1")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(11, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Guest{{ID: "guest-1", Name: "Ann Lee"}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Guests, 1)
}

func TestGuestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	age := 35

	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateGuestRequest{},
			setupMock: func() {},
			wantCode:  400,
		},
		{
			name: "not found",
			req:  dto.UpdateGuestRequest{Age: &age},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
		{
			name: "successful update",
			req:  dto.UpdateGuestRequest{Age: &age},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 35, req[model.FieldAge])
						assert.NotContains(t, req, model.FieldName)

						return nil
					})
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "guest-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestGuestService_DeleteWithBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

	err := svc.Delete(context.Background(), "guest-1")

	assert.Equal(t, 409, failure.GetCode(err))
	assert.Equal(t, "guest has bookings or services and cannot be deleted", err.Error())
}
