package admin

import (
	"net/http"

	"github.com/hoangfish/HotelSystemFull/infras/otel"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model/dto"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/service"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	"github.com/hoangfish/HotelSystemFull/shared/validator"
	"github.com/hoangfish/HotelSystemFull/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamBooker      = "booker"
	queryParamRoomID      = "room_id"
	queryParamCheckInDate = "check_in_date"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/guests", handler.GetGuests)
	})
}

// Register handles admin registration.
// @Summary Register a new admin
// @Description Register a new admin with the provided details.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RegisterAdminRequest true "Register Admin Request"
// @Success 201 {object} response.Data[dto.RegisterAdminResponse] "Admin registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterAdminRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles admin login.
// @Summary Login an admin
// @Description Login an admin with an email address or phone number.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginAdminRequest true "Login Admin Request"
// @Success 200 {object} response.Data[dto.LoginAdminResponse] "Admin logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginAdminRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuests retrieves guest snapshots from the mirror, filtered by booking.
// @Summary Get guests with bookings
// @Description Retrieve guest snapshots whose bookings match the filters.
// @Description Guests without a matching booking are excluded.
// @Tags Admin
// @Accept json
// @Produce json
// @Param booker query string false "Filter by guest name (substring, case-insensitive)"
// @Param room_id query string false "Filter by room ID (substring, case-insensitive)"
// @Param check_in_date query string false "Filter by check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.QueryGuestsResponse] "List of guests"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	req := dto.QueryGuestsRequest{
		Booker:      r.URL.Query().Get(queryParamBooker),
		RoomID:      r.URL.Query().Get(queryParamRoomID),
		CheckInDate: r.URL.Query().Get(queryParamCheckInDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.QueryGuests(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to query guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
