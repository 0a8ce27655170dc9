package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Admin=MockAdminService

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/infras/jwt"
	"github.com/hoangfish/HotelSystemFull/infras/otel"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model/dto"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/repository"
	guestModel "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	guestRepo "github.com/hoangfish/HotelSystemFull/internal/domains/guest/repository"
	"github.com/hoangfish/HotelSystemFull/shared"
	"github.com/hoangfish/HotelSystemFull/shared/cache"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	gDto "github.com/hoangfish/HotelSystemFull/shared/dto"
	"github.com/hoangfish/HotelSystemFull/shared/failure"
	"github.com/hoangfish/HotelSystemFull/shared/password"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheQueryGuests = "admin:guests"
)

// Admin owns the denormalized guest mirror. Every caller goes through this
// service, nothing else reads or writes the admin aggregate.
type Admin interface {
	Register(ctx context.Context, req dto.RegisterAdminRequest) (dto.RegisterAdminResponse, error)
	Login(ctx context.Context, req dto.LoginAdminRequest) (dto.LoginAdminResponse, error)
	EnsureSynced(ctx context.Context) error
	UpsertGuestSnapshot(ctx context.Context, snapshot model.GuestSnapshot) error
	PatchBookingList(ctx context.Context, userID string, bookings guestModel.BookingList) error
	QueryGuests(ctx context.Context, req dto.QueryGuestsRequest) (dto.QueryGuestsResponse, error)
}

type serviceImpl struct {
	repo       repository.Admin
	guestRepo  guestRepo.Guest
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.Admin, guestRepo guestRepo.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwtService jwt.JWT) Admin {
	return &serviceImpl{
		repo:       repo,
		guestRepo:  guestRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwtService,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterAdminRequest) (res dto.RegisterAdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, identityFilter(req.Email, req.Phone))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return res, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email or phone number already in use") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := req.ToModel(hashedPassword)
	if err = s.repo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	res.AdminID = admin.ID

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginAdminRequest) (res dto.LoginAdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, identityFilter(req.EmailOrPhone, req.EmailOrPhone))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.Unauthorized("email or phone not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("admin_id", admin.ID).Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized("incorrect password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Email, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(admin, tokenPair)

	return res, nil
}

// EnsureSynced rebuilds the mirror from the guest ledger when the snapshot
// list is empty. A populated mirror is left alone.
func (s *serviceImpl) EnsureSynced(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureSynced")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.mirror(ctx)
	if err != nil {
		return err
	}

	if len(admin.GuestList) > 0 {
		return nil
	}

	_, err = s.rebuild(ctx, admin)

	return err
}

// UpsertGuestSnapshot replaces the mirror entry for the guest, or appends
// one when the guest has never been mirrored.
func (s *serviceImpl) UpsertGuestSnapshot(ctx context.Context, snapshot model.GuestSnapshot) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertGuestSnapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.mirror(ctx)
	if err != nil {
		return err
	}

	if idx := admin.GuestList.IndexOf(snapshot.UserID); idx >= 0 {
		admin.GuestList[idx] = snapshot
	} else {
		admin.GuestList = append(admin.GuestList, snapshot)
	}

	return s.saveGuestList(ctx, admin)
}

// PatchBookingList overwrites the mirrored booking list of a single guest.
// A guest that is not mirrored yet is skipped, the next login or rebuild
// picks it up.
func (s *serviceImpl) PatchBookingList(ctx context.Context, userID string, bookings guestModel.BookingList) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PatchBookingList")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.mirror(ctx)
	if err != nil {
		return err
	}

	idx := admin.GuestList.IndexOf(userID)
	if idx < 0 {
		log.Info().Str("user_id", userID).Msg("guest not mirrored yet, skipping booking list patch")

		return nil
	}

	admin.GuestList[idx].Bookings = bookings

	return s.saveGuestList(ctx, admin)
}

// QueryGuests filters the mirrored snapshots. Guests whose filtered booking
// list comes out empty are always excluded, even without any filter set.
func (s *serviceImpl) QueryGuests(ctx context.Context, req dto.QueryGuestsRequest) (res dto.QueryGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueryGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheQueryGuests, req.Booker, req.RoomID, req.CheckInDate)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for admin guest query")

		return res, nil
	}

	admin, err := s.mirror(ctx)
	if err != nil {
		return res, err
	}

	if len(admin.GuestList) == 0 {
		admin, err = s.rebuild(ctx, admin)
		if err != nil {
			return res, err
		}
	}

	filtered := make([]model.GuestSnapshot, 0, len(admin.GuestList))

	for _, snapshot := range admin.GuestList {
		bookings := filterBookings(snapshot.Bookings, req.RoomID, req.CheckInDate)

		if req.Booker != constant.Empty {
			fullName := strings.ToLower(snapshot.FirstName + " " + snapshot.LastName)
			if !strings.Contains(fullName, strings.ToLower(req.Booker)) {
				continue
			}
		}

		if len(bookings) == 0 {
			continue
		}

		snapshot.Bookings = bookings
		filtered = append(filtered, snapshot)
	}

	res.FromModels(filtered)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admin guest query to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) mirror(ctx context.Context) (model.Admin, error) {
	admin, err := s.repo.GetMirror(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get mirror aggregate")

		return admin, fmt.Errorf("failed to get mirror aggregate: %w", err)
	}

	if admin.ID == constant.Empty {
		return admin, failure.NotFound("admin not found") // nolint:wrapcheck
	}

	return admin, nil
}

func (s *serviceImpl) rebuild(ctx context.Context, admin model.Admin) (model.Admin, error) {
	guests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load guests for mirror rebuild")

		return admin, fmt.Errorf("failed to load guests for mirror rebuild: %w", err)
	}

	admin.GuestList = make(model.SnapshotList, len(guests))
	for i, guest := range guests {
		admin.GuestList[i] = model.SnapshotFromGuest(guest)
	}

	if err := s.saveGuestList(ctx, admin); err != nil {
		return admin, err
	}

	log.Info().Int("guests", len(guests)).Msg("mirror rebuilt from guest ledger")

	return admin, nil
}

func (s *serviceImpl) saveGuestList(ctx context.Context, admin model.Admin) error {
	if err := s.repo.UpdateGuestList(ctx, admin.ID, admin.GuestList); err != nil {
		log.Error().Err(err).Msg("failed to save guest snapshot list")

		return fmt.Errorf("failed to save guest snapshot list: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheQueryGuests)
	}()

	return nil
}

func filterBookings(bookings guestModel.BookingList, roomID, checkInDate string) guestModel.BookingList {
	out := bookings

	if roomID != constant.Empty {
		matched := guestModel.BookingList{}

		for _, booking := range out {
			if strings.Contains(strings.ToLower(booking.RoomID), strings.ToLower(roomID)) {
				matched = append(matched, booking)
			}
		}

		out = matched
	}

	if checkInDate != constant.Empty {
		matched := guestModel.BookingList{}

		for _, booking := range out {
			if timezone.Format(booking.CheckInDate, constant.DateOnlyFormat) == checkInDate {
				matched = append(matched, booking)
			}
		}

		out = matched
	}

	return out
}

func identityFilter(email, phone string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    phone,
				Table:    model.TableName,
			},
		},
	}
}
