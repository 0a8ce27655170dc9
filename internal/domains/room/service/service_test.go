package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hoangfish/HotelSystemFull/config"
	kafkaMocks "github.com/hoangfish/HotelSystemFull/infras/kafka/mocks"
	"github.com/hoangfish/HotelSystemFull/infras/otel/mocks"
	s3Mocks "github.com/hoangfish/HotelSystemFull/infras/s3/mocks"
	roomMocks "github.com/hoangfish/HotelSystemFull/internal/domains/room/mocks"
	"github.com/hoangfish/HotelSystemFull/internal/domains/room/model"
	"github.com/hoangfish/HotelSystemFull/internal/domains/room/model/dto"
	"github.com/hoangfish/HotelSystemFull/internal/domains/room/service"
	cacheMocks "github.com/hoangfish/HotelSystemFull/shared/cache/mocks"
	gDto "github.com/hoangfish/HotelSystemFull/shared/dto"
	"github.com/hoangfish/HotelSystemFull/shared/failure"
)

type roomServiceMocks struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	kafka *kafkaMocks.MockClient
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	ctrl := gomock.NewController(t)

	m := roomServiceMocks{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	// Cache writes and invalidations run on goroutines, so the calls may
	// land after the test body returns. Same for published events.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "hotel-assets"
	cfg.Kafka.Topic.BookingEvents = "hotel.booking.events"

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3, m.kafka)

	return svc, m
}

func validRoomRequest() dto.CreateRoomRequest {
	return dto.CreateRoomRequest{
		RoomID:      "room-101",
		RoomNumber:  "101",
		BedCount:    2,
		RoomType:    model.TypeDouble,
		Price:       150,
		Description: "Double room with a sea view",
		Image:       "https://cdn.example.com/rooms/101.jpg",
		Guests:      2,
		Area:        "32m2",
	}
}

func storedRoom() model.Room {
	return model.Room{
		ID:          "room-101",
		RoomNumber:  "101",
		Status:      model.StatusAvailable,
		BedCount:    2,
		RoomType:    model.TypeDouble,
		Price:       150,
		Description: "Double room with a sea view",
		Image:       "https://cdn.example.com/rooms/101.jpg",
		Guests:      2,
		Area:        "32m2",
	}
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "room-101", room.ID)
						assert.Equal(t, model.StatusAvailable, room.Status)

						return nil
					})
			},
		},
		{
			name: "roomId or roomNumber already exists",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert failure",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			res, err := svc.Create(context.Background(), validRoomRequest())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "room-101", res.RoomID)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, model.StatusAvailable, res.Status)
		})
	}
}

func TestRoomService_CreateBulk(t *testing.T) {
	svc, m := newRoomService(t)

	valid := validRoomRequest()

	invalid := validRoomRequest()
	invalid.RoomID = ""

	taken := validRoomRequest()
	taken.RoomID = "room-102"
	taken.RoomNumber = "102"

	broken := validRoomRequest()
	broken.RoomID = "room-103"
	broken.RoomNumber = "103"

	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	res, err := svc.CreateBulk(context.Background(), dto.BulkCreateRoomsRequest{
		Rooms: []dto.CreateRoomRequest{valid, invalid, taken, broken},
	})

	assert.NoError(t, err)
	assert.Len(t, res.Created, 1)
	assert.Equal(t, "room-101", res.Created[0].RoomID)
	assert.Len(t, res.Errors, 3)
	assert.Contains(t, res.Errors[0], "room at index 1 is invalid")
	assert.Contains(t, res.Errors[1], "room at index 2 has roomId or roomNumber already exists")
	assert.Contains(t, res.Errors[2], "room at index 3 failed to save")
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit skips the repository",
			setupMock: func(m roomServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res := value.(*dto.RoomResponse)
						res.FromModel(storedRoom())

						return nil
					})
			},
		},
		{
			name: "cache miss falls back to the repository",
			setupMock: func(m roomServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRoom(), nil)
			},
		},
		{
			name: "room not found",
			setupMock: func(m roomServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			res, err := svc.Get(context.Background(), "room-101")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "room-101", res.RoomID)
			assert.Equal(t, "101", res.RoomNumber)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, m := newRoomService(t)

	// Both the list and the count start with a cache miss.
	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{storedRoom()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
	assert.Equal(t, "room-101", res.Rooms[0].RoomID)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestRoomService_SetStatus(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful status update",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusBooked, fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "room not found",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			err := svc.SetStatus(context.Background(), "room-101", model.StatusBooked)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Book(t *testing.T) {
	req := dto.BookRoomRequest{RoomID: "room-101", UserID: "guest-1"}

	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "available room gets booked",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRoom(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusBooked, fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "room not found",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room is already booked",
			setupMock: func(m roomServiceMocks) {
				booked := storedRoom()
				booked.Status = model.StatusBooked

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booked, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			res, err := svc.Book(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "room-101", res.RoomID)
			assert.Equal(t, "101", res.RoomNumber)
		})
	}
}

func TestRoomService_UploadImage(t *testing.T) {
	fileHeader := &multipart.FileHeader{Filename: "front-view.png"}

	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "upload replaces the previous image",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRoom(), nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), "hotel-assets", model.EntityName, gomock.Any(), fileHeader, gomock.Any()).
					Return("https://cdn.example.com/rooms/new.png", nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.s3.EXPECT().
					GetObjectNameFromURL("hotel-assets", storedRoom().Image).
					Return("101.jpg")

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "hotel-assets", model.EntityName, "101.jpg").
					Return(nil)
			},
		},
		{
			name: "database failure rolls back the uploaded object",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRoom(), nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), "hotel-assets", model.EntityName, gomock.Any(), fileHeader, gomock.Any()).
					Return("https://cdn.example.com/rooms/new.png", nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "hotel-assets", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "room not found",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			res, err := svc.UploadImage(context.Background(), "room-101", nil, fileHeader)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/rooms/new.png", res.Image)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m roomServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			err := svc.Delete(context.Background(), "room-101")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
