package service

import (
	"context"
	"fmt"

	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/infras/jwt"
	"github.com/hoangfish/HotelSystemFull/infras/otel"
	adminModel "github.com/hoangfish/HotelSystemFull/internal/domains/admin/model"
	adminService "github.com/hoangfish/HotelSystemFull/internal/domains/admin/service"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/model/dto"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/repository"
	"github.com/hoangfish/HotelSystemFull/shared"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	gDto "github.com/hoangfish/HotelSystemFull/shared/dto"
	"github.com/hoangfish/HotelSystemFull/shared/failure"
	"github.com/hoangfish/HotelSystemFull/shared/password"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	Register(ctx context.Context, req dto.RegisterGuestRequest) (dto.RegisterGuestResponse, error)
	Login(ctx context.Context, req dto.LoginGuestRequest) (dto.LoginGuestResponse, error)
	GetBookings(ctx context.Context, userID string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo       repository.Guest
	admin      adminService.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.Guest, admin adminService.Admin, cfg *config.Config, otel otel.Otel, jwtService jwt.JWT) Guest {
	return &serviceImpl{
		repo:       repo,
		admin:      admin,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwtService,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterGuestRequest) (res dto.RegisterGuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, identityFilter(req.Email, req.Phone))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email or phone number already in use") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	guest := req.ToModel(hashedPassword)
	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	s.mirrorGuest(ctx, guest)

	res.UserID = guest.ID

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginGuestRequest) (res dto.LoginGuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, identityFilter(req.EmailOrPhone, req.EmailOrPhone))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.Unauthorized("email or phone number not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, guest.Password); err != nil {
		log.Warn().Str("user_id", guest.ID).Msg("guest login attempt with wrong password")

		return res, failure.Unauthorized("incorrect password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(guest.ID, guest.Email, constant.RoleGuest)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.mirrorGuest(ctx, guest)

	res.FromModel(guest, tokenPair)

	return res, nil
}

func (s *serviceImpl) GetBookings(ctx context.Context, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModels(guest.Bookings)

	return res, nil
}

// mirrorGuest pushes the guest's snapshot into the admin mirror. The mirror
// is best effort, a failure is logged and the operation still succeeds.
func (s *serviceImpl) mirrorGuest(ctx context.Context, guest model.Guest) {
	if err := s.admin.UpsertGuestSnapshot(ctx, adminModel.SnapshotFromGuest(guest)); err != nil {
		log.Warn().Err(err).Str("user_id", guest.ID).Msg("mirror out of sync with guest ledger")
	}
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
