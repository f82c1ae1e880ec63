package service_test

import (
	"context"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	amenityMocks "hotel/internal/domains/amenity/mocks"
	amenityModel "hotel/internal/domains/amenity/model"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	guestServiceMocks "hotel/internal/domains/guestservice/mocks"
	"hotel/internal/domains/guestservice/model"
	"hotel/internal/domains/guestservice/model/dto"
	"hotel/internal/domains/guestservice/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGuestServiceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateGuestServiceRequest
		setupMock func(guests *guestMocks.MockGuest, amenities *amenityMocks.MockAmenity, repo *guestServiceMocks.MockGuestService)
		wantCode  int
		wantDay   string
	}{
		{
			name: "dated today by default",
			req:  dto.CreateGuestServiceRequest{GuestID: "guest-1", ServiceID: "service-1"},
			setupMock: func(guests *guestMocks.MockGuest, amenities *amenityMocks.MockAmenity, repo *guestServiceMocks.MockGuestService) {
				guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1", Name: "Ann Lee"}, nil)
				amenities.EXPECT().Get(gomock.Any(), gomock.Any()).Return(amenityModel.Amenity{ID: "service-1", Name: "Spa", Price: 30}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantDay: timezone.FormatDay(timezone.Today()),
		},
		{
			name: "explicit day",
			req:  dto.CreateGuestServiceRequest{GuestID: "guest-1", ServiceID: "service-1", UsedOn: "2025-03-02"},
			setupMock: func(guests *guestMocks.MockGuest, amenities *amenityMocks.MockAmenity, repo *guestServiceMocks.MockGuestService) {
				guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
				amenities.EXPECT().Get(gomock.Any(), gomock.Any()).Return(amenityModel.Amenity{ID: "service-1", Price: 25}, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record model.GuestService) error {
						assert.Equal(t, "2025-03-02", timezone.FormatDay(record.UsedOn))

						return nil
					})
			},
			wantDay: "2025-03-02",
		},
		{
			name: "unknown guest",
			req:  dto.CreateGuestServiceRequest{GuestID: "guest-2", ServiceID: "service-1"},
			setupMock: func(guests *guestMocks.MockGuest, _ *amenityMocks.MockAmenity, _ *guestServiceMocks.MockGuestService) {
				guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "unknown service",
			req:  dto.CreateGuestServiceRequest{GuestID: "guest-1", ServiceID: "service-2"},
			setupMock: func(guests *guestMocks.MockGuest, amenities *amenityMocks.MockAmenity, _ *guestServiceMocks.MockGuestService) {
				guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
				amenities.EXPECT().Get(gomock.Any(), gomock.Any()).Return(amenityModel.Amenity{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := guestServiceMocks.NewMockGuestService(ctrl)
			mockGuests := guestMocks.NewMockGuest(ctrl)
			mockAmenities := amenityMocks.NewMockAmenity(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			svc := service.New(mockRepo, mockGuests, mockAmenities, &config.Config{}, mockCache, mocks.NewOtel())

			tt.setupMock(mockGuests, mockAmenities, mockRepo)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDay, res.UsedOn)
		})
	}
}

func TestGuestServiceService_UpdateDay(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := guestServiceMocks.NewMockGuestService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, guestMocks.NewMockGuest(ctrl), amenityMocks.NewMockAmenity(ctrl), &config.Config{}, mockCache, mocks.NewOtel())

	err := svc.Update(context.Background(), dto.UpdateGuestServiceRequest{UsedOn: "2nd of March"}, "record-1")
	assert.Equal(t, 400, failure.GetCode(err))

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			day, ok := req[model.FieldUsedOn].(time.Time)
			assert.True(t, ok)
			assert.Equal(t, "2025-03-02", timezone.FormatDay(day))

			return nil
		})

	err = svc.Update(context.Background(), dto.UpdateGuestServiceRequest{UsedOn: "2025-03-02"}, "record-1")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
}
