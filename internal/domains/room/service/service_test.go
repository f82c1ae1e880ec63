package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom, types *roomTypeMocks.MockRoomType)
		wantCode  int
		want      dto.RoomResponse
	}{
		{
			name: "price copied from type",
			req:  dto.CreateRoomRequest{Number: "101", RoomTypeID: "type-1"},
			setupMock: func(repo *roomMocks.MockRoom, types *roomTypeMocks.MockRoomType) {
				types.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{ID: "type-1", Name: "Double", Price: 150, MaxGuests: 2}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: dto.RoomResponse{
				Number:        "101",
				RoomTypeID:    "type-1",
				TypeName:      "Double",
				MaxGuests:     2,
				Status:        string(model.StatusFree),
				PricePerNight: 150,
			},
		},
		{
			name: "unknown type",
			req:  dto.CreateRoomRequest{Number: "101", RoomTypeID: "type-2"},
			setupMock: func(_ *roomMocks.MockRoom, types *roomTypeMocks.MockRoomType) {
				types.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)
			},
			wantCode: 404,
		},
		{
			name:      "unknown status",
			req:       dto.CreateRoomRequest{Number: "101", RoomTypeID: "type-1", Status: "closed"},
			setupMock: func(*roomMocks.MockRoom, *roomTypeMocks.MockRoomType) {},
			wantCode:  400,
		},
		{
			name: "repository error",
			req:  dto.CreateRoomRequest{Number: "101", RoomTypeID: "type-1"},
			setupMock: func(repo *roomMocks.MockRoom, types *roomTypeMocks.MockRoomType) {
				types.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{ID: "type-1"}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := roomMocks.NewMockRoom(ctrl)
			mockTypes := roomTypeMocks.NewMockRoomType(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			svc := service.New(mockRepo, mockTypes, &config.Config{}, mockCache, mocks.NewOtel())

			tt.setupMock(mockRepo, mockTypes)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.want.Number, res.Number)
			assert.Equal(t, tt.want.TypeName, res.TypeName)
			assert.Equal(t, tt.want.MaxGuests, res.MaxGuests)
			assert.Equal(t, tt.want.Status, res.Status)
			assert.InDelta(t, tt.want.PricePerNight, res.PricePerNight, 0.001)
		})
	}
}

func TestRoomService_UpdateType(t *testing.T) {
	explicit := 99.0

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		wantPrice float64
	}{
		{
			name:      "new type brings its price",
			req:       dto.UpdateRoomRequest{RoomTypeID: "type-2"},
			wantPrice: 300,
		},
		{
			name:      "explicit price wins",
			req:       dto.UpdateRoomRequest{RoomTypeID: "type-2", Price: &explicit},
			wantPrice: explicit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := roomMocks.NewMockRoom(ctrl)
			mockTypes := roomTypeMocks.NewMockRoomType(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			svc := service.New(mockRepo, mockTypes, &config.Config{}, mockCache, mocks.NewOtel())

			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", RoomTypeID: "type-1", Price: 150}, nil)
			mockTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{ID: "type-2", Price: 300}, nil)
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
					assert.InDelta(t, tt.wantPrice, req[model.FieldPrice], 0.001)
					assert.Equal(t, "type-2", req[model.FieldRoomTypeID])

					return nil
				})

			assert.NoError(t, svc.Update(context.Background(), tt.req, "room-1"))

			time.Sleep(10 * time.Millisecond)
		})
	}
}
