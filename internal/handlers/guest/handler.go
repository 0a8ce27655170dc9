package guest

import (
	"net/http"

	"github.com/hoangfish/HotelSystemFull/infras/otel"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/model/dto"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/service"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	"github.com/hoangfish/HotelSystemFull/shared/validator"
	"github.com/hoangfish/HotelSystemFull/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/logout", handler.Logout)
		routerGroup.Get("/{id}/bookings", handler.GetBookings)
	})
}

// Register handles guest registration.
// @Summary Register a new guest
// @Description Register a new guest with the provided details.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.RegisterGuestRequest true "Register Guest Request"
// @Success 201 {object} response.Data[dto.RegisterGuestResponse] "Guest registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles guest login.
// @Summary Login a guest
// @Description Login a guest with an email address or phone number.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.LoginGuestRequest true "Login Guest Request"
// @Success 200 {object} response.Data[dto.LoginGuestResponse] "Guest logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout acknowledges a guest logout. Tokens are stateless, the client
// discards them on its side.
// @Summary Logout a guest
// @Description Logout the currently authenticated guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Guest logged out successfully"
// @Router /v1/guests/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest logged out: " + user)

	response.WithMessage(w, http.StatusOK, "Guest logged out successfully")
}

// GetBookings retrieves the booking list of a guest.
// @Summary Get a guest's bookings
// @Description Retrieve all bookings owned by a guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetBookings(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
