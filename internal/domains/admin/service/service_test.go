package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/infras/jwt"
	jwtMocks "github.com/hoangfish/HotelSystemFull/infras/jwt/mocks"
	"github.com/hoangfish/HotelSystemFull/infras/otel/mocks"
	adminMocks "github.com/hoangfish/HotelSystemFull/internal/domains/admin/mocks"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model/dto"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/service"
	guestMocks "github.com/hoangfish/HotelSystemFull/internal/domains/guest/mocks"
	guestModel "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	cacheMocks "github.com/hoangfish/HotelSystemFull/shared/cache/mocks"
	"github.com/hoangfish/HotelSystemFull/shared/failure"
	"github.com/hoangfish/HotelSystemFull/shared/password"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"
)

type adminServiceMocks struct {
	repo      *adminMocks.MockAdmin
	guestRepo *guestMocks.MockGuest
	cache     *cacheMocks.MockRedisCache
	jwt       *jwtMocks.MockJWT
}

func newAdminService(t *testing.T) (service.Admin, adminServiceMocks) {
	ctrl := gomock.NewController(t)

	m := adminServiceMocks{
		repo:      adminMocks.NewMockAdmin(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
	}

	// Cache writes and invalidations run on goroutines after the call returns.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.guestRepo, cfg, m.cache, mocks.NewOtel(), m.jwt)

	return svc, m
}

func mirrorWith(snapshots ...model.GuestSnapshot) model.Admin {
	return model.Admin{
		ID:        "admin-1",
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Phone:     "0898765432",
		GuestList: model.SnapshotList(snapshots),
	}
}

func bookingOn(code, roomID string, checkIn time.Time) guestModel.Booking {
	return guestModel.Booking{
		BookingCode:  code,
		RoomID:       roomID,
		RoomNumber:   "101",
		Price:        150,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
		Status:       guestModel.BookingStatusBooked,
	}
}

func TestAdminService_Register(t *testing.T) {
	req := dto.RegisterAdminRequest{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Phone:     "0898765432",
		Password:  "secret123",
	}

	t.Run("successful registration", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AdminID)
	})

	t.Run("duplicate email or phone", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAdminService_Login(t *testing.T) {
	hashed, err := password.Hash("secret123")
	assert.NoError(t, err)

	admin := mirrorWith()
	admin.Password = hashed

	t.Run("successful login", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
		m.jwt.EXPECT().
			GenerateTokenPair("admin-1", "admin@example.com", "admin").
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		res, err := svc.Login(context.Background(), dto.LoginAdminRequest{
			EmailOrPhone: "admin@example.com",
			Password:     "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin-1", res.AdminID)
		assert.Equal(t, "access", res.AccessToken)
	})

	t.Run("unknown identity", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginAdminRequest{
			EmailOrPhone: "nobody@example.com",
			Password:     "secret123",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)

		_, err := svc.Login(context.Background(), dto.LoginAdminRequest{
			EmailOrPhone: "admin@example.com",
			Password:     "wrong",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAdminService_QueryGuests(t *testing.T) {
	today := timezone.Today()

	lan := model.GuestSnapshot{
		UserID:    "guest-1",
		FirstName: "Lan",
		LastName:  "Pham",
		Email:     "lan@example.com",
		Bookings:  guestModel.BookingList{bookingOn("BK-1", "room-101", today)},
	}

	minh := model.GuestSnapshot{
		UserID:    "guest-2",
		FirstName: "Minh",
		LastName:  "Tran",
		Email:     "minh@example.com",
		Bookings:  guestModel.BookingList{bookingOn("BK-2", "room-202", today.AddDate(0, 0, 5))},
	}

	empty := model.GuestSnapshot{
		UserID:    "guest-3",
		FirstName: "Hoa",
		LastName:  "Le",
		Email:     "hoa@example.com",
		Bookings:  guestModel.BookingList{},
	}

	tests := []struct {
		name      string
		req       dto.QueryGuestsRequest
		wantUsers []string
	}{
		{
			name:      "no filter still excludes guests without bookings",
			req:       dto.QueryGuestsRequest{},
			wantUsers: []string{"guest-1", "guest-2"},
		},
		{
			name:      "room id matches as case-insensitive substring",
			req:       dto.QueryGuestsRequest{RoomID: "ROOM-1"},
			wantUsers: []string{"guest-1"},
		},
		{
			name:      "check-in date matches the exact calendar day",
			req:       dto.QueryGuestsRequest{CheckInDate: timezone.Format(today, "2006-01-02")},
			wantUsers: []string{"guest-1"},
		},
		{
			name:      "booker matches against the full name",
			req:       dto.QueryGuestsRequest{Booker: "minh tr"},
			wantUsers: []string{"guest-2"},
		},
		{
			name:      "booker match with no surviving bookings is excluded",
			req:       dto.QueryGuestsRequest{Booker: "hoa"},
			wantUsers: []string{},
		},
		{
			name: "filters combine",
			req: dto.QueryGuestsRequest{
				Booker:      "lan",
				RoomID:      "room-101",
				CheckInDate: timezone.Format(today, "2006-01-02"),
			},
			wantUsers: []string{"guest-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAdminService(t)

			m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			m.repo.EXPECT().GetMirror(gomock.Any()).Return(mirrorWith(lan, minh, empty), nil)

			res, err := svc.QueryGuests(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Len(t, res.Guests, len(tt.wantUsers))

			for i, userID := range tt.wantUsers {
				assert.Equal(t, userID, res.Guests[i].UserID)
			}
		})
	}

	t.Run("empty mirror rebuilds from the guest ledger", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().GetMirror(gomock.Any()).Return(mirrorWith(), nil)

		guests := []guestModel.Guest{
			{
				ID:        "guest-1",
				FirstName: "Lan",
				LastName:  "Pham",
				Bookings:  guestModel.BookingList{bookingOn("BK-1", "room-101", today)},
			},
		}

		m.guestRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(guests, nil)
		m.repo.EXPECT().UpdateGuestList(gomock.Any(), "admin-1", gomock.Len(1)).Return(nil)

		res, err := svc.QueryGuests(context.Background(), dto.QueryGuestsRequest{})

		assert.NoError(t, err)
		assert.Len(t, res.Guests, 1)
		assert.Equal(t, "guest-1", res.Guests[0].UserID)
	})

	t.Run("no admin registered", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().GetMirror(gomock.Any()).Return(model.Admin{}, nil)

		_, err := svc.QueryGuests(context.Background(), dto.QueryGuestsRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAdminService_PatchBookingList(t *testing.T) {
	today := timezone.Today()

	t.Run("patches a mirrored guest", func(t *testing.T) {
		svc, m := newAdminService(t)

		snapshot := model.GuestSnapshot{UserID: "guest-1", Bookings: guestModel.BookingList{}}
		m.repo.EXPECT().GetMirror(gomock.Any()).Return(mirrorWith(snapshot), nil)

		updated := guestModel.BookingList{bookingOn("BK-1", "room-101", today)}

		m.repo.EXPECT().
			UpdateGuestList(gomock.Any(), "admin-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, list model.SnapshotList) error {
				assert.Len(t, list, 1)
				assert.Len(t, list[0].Bookings, 1)
				assert.Equal(t, "BK-1", list[0].Bookings[0].BookingCode)

				return nil
			})

		err := svc.PatchBookingList(context.Background(), "guest-1", updated)

		assert.NoError(t, err)
	})

	t.Run("unmirrored guest is skipped", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().GetMirror(gomock.Any()).Return(mirrorWith(), nil)

		err := svc.PatchBookingList(context.Background(), "guest-404", guestModel.BookingList{})

		assert.NoError(t, err)
	})
}

func TestAdminService_UpsertGuestSnapshot(t *testing.T) {
	t.Run("appends a new guest", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.repo.EXPECT().GetMirror(gomock.Any()).Return(mirrorWith(), nil)
		m.repo.EXPECT().UpdateGuestList(gomock.Any(), "admin-1", gomock.Len(1)).Return(nil)

		err := svc.UpsertGuestSnapshot(context.Background(), model.GuestSnapshot{UserID: "guest-1"})

		assert.NoError(t, err)
	})

	t.Run("replaces an existing guest", func(t *testing.T) {
		svc, m := newAdminService(t)

		existing := model.GuestSnapshot{UserID: "guest-1", FirstName: "Old"}
		m.repo.EXPECT().GetMirror(gomock.Any()).Return(mirrorWith(existing), nil)

		m.repo.EXPECT().
			UpdateGuestList(gomock.Any(), "admin-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, list model.SnapshotList) error {
				assert.Len(t, list, 1)
				assert.Equal(t, "New", list[0].FirstName)

				return nil
			})

		err := svc.UpsertGuestSnapshot(context.Background(), model.GuestSnapshot{UserID: "guest-1", FirstName: "New"})

		assert.NoError(t, err)
	})
}
