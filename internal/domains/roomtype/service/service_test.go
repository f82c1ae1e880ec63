package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/domains/roomtype/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const imageURL = "https://cdn.example.com/hotel/room-types/new.png"

func TestRoomTypeService_Create(t *testing.T) {
	image := &multipart.FileHeader{Filename: "suite.png"}

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func(repo *roomTypeMocks.MockRoomType, storage *s3Mocks.MockStorage)
		wantErr   bool
		wantImage string
	}{
		{
			name: "without image",
			req:  dto.CreateRoomTypeRequest{Name: "Double", Price: 150, MaxGuests: 2},
			setupMock: func(repo *roomTypeMocks.MockRoomType, _ *s3Mocks.MockStorage) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "with image",
			req:  dto.CreateRoomTypeRequest{Name: "Suite", Price: 300, MaxGuests: 4, Image: image},
			setupMock: func(repo *roomTypeMocks.MockRoomType, storage *s3Mocks.MockStorage) {
				storage.EXPECT().Upload(gomock.Any(), "room-types", image, gomock.Any()).Return(imageURL, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
						assert.Equal(t, imageURL, roomType.Image)

						return nil
					})
			},
			wantImage: imageURL,
		},
		{
			name: "insert fails after upload",
			req:  dto.CreateRoomTypeRequest{Name: "Suite", Price: 300, MaxGuests: 4, Image: image},
			setupMock: func(repo *roomTypeMocks.MockRoomType, storage *s3Mocks.MockStorage) {
				storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(imageURL, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				storage.EXPECT().ObjectKey(imageURL).Return("room-types/new.png")
				storage.EXPECT().Delete(gomock.Any(), "room-types/new.png").Return(nil)
			},
			wantErr: true,
		},
		{
			name: "upload fails",
			req:  dto.CreateRoomTypeRequest{Name: "Suite", Price: 300, MaxGuests: 4, Image: image},
			setupMock: func(_ *roomTypeMocks.MockRoomType, storage *s3Mocks.MockStorage) {
				storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
			mockStorage := s3Mocks.NewMockStorage(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), mockStorage)

			tt.setupMock(mockRepo, mockStorage)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantImage, res.Image)
			assert.Equal(t, tt.req.MaxGuests, res.MaxGuests)
		})
	}
}

func TestRoomTypeService_UpdateReplacesImage(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockStorage := s3Mocks.NewMockStorage(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), mockStorage)

	oldURL := "https://cdn.example.com/hotel/room-types/old.png"

	gomock.InOrder(
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "type-1", Image: oldURL}, nil),
		mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(imageURL, nil),
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, imageURL, req[model.FieldImage])

				return nil
			}),
		mockStorage.EXPECT().ObjectKey(oldURL).Return("room-types/old.png"),
		mockStorage.EXPECT().Delete(gomock.Any(), "room-types/old.png").Return(nil),
	)

	err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{Image: &multipart.FileHeader{Filename: "new.png"}}, "type-1")
	assert.NoError(t, err)

	err = svc.Update(context.Background(), dto.UpdateRoomTypeRequest{}, "type-1")
	assert.Equal(t, 400, failure.GetCode(err))

	time.Sleep(10 * time.Millisecond)
}
