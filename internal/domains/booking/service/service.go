package service

import (
	"context"
	"fmt"

	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/infras/kafka"
	"github.com/hoangfish/HotelSystemFull/infras/otel"
	adminService "github.com/hoangfish/HotelSystemFull/internal/domains/admin/service"
	"github.com/hoangfish/HotelSystemFull/internal/domains/booking/model/dto"
	guestModel "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	guestDto "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model/dto"
	guestRepo "github.com/hoangfish/HotelSystemFull/internal/domains/guest/repository"
	roomModel "github.com/hoangfish/HotelSystemFull/internal/domains/room/model"
	roomRepo "github.com/hoangfish/HotelSystemFull/internal/domains/room/repository"
	"github.com/hoangfish/HotelSystemFull/shared"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	"github.com/hoangfish/HotelSystemFull/shared/failure"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	stepLedger   = "ledger"
	stepRegistry = "registry"
	stepMirror   = "mirror"
)

// Booking is the lifecycle engine. It owns the ordered write sequence
// across the guest ledger, the room registry, and the admin mirror.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Transition(ctx context.Context, req dto.TransitionRequest) (dto.TransitionResponse, error)
}

type serviceImpl struct {
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	admin     adminService.Admin
	kafka     kafka.Client
	cfg       *config.Config
	otel      otel.Otel
}

func New(guestRepo guestRepo.Guest, roomRepo roomRepo.Room, admin adminService.Admin, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		admin:     admin,
		kafka:     kafka,
		cfg:       cfg,
		otel:      otel,
	}
}

// sagaStep is one write in the cross-aggregate sequence. Critical steps
// abort the operation on failure. A non-critical step failure is logged
// as an inconsistency and queued for reconciliation instead.
type sagaStep struct {
	name     string
	critical bool
	run      func(ctx context.Context) error
}

func (s *serviceImpl) runSaga(ctx context.Context, bookingCode string, steps []sagaStep) error {
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			if step.critical {
				return err
			}

			log.Warn().
				Err(err).
				Str("step", step.name).
				Str("booking_code", bookingCode).
				Msg("inconsistency: mirror lags behind guest ledger")

			s.queueReconciliation(ctx, bookingCode, step.name, err)
		}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkInDate, err := timezone.Parse(constant.DateOnlyFormat, req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("checkInDate must be a date in YYYY-MM-DD form") // nolint:wrapcheck
	}

	checkOutDate, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequestFromString("checkOutDate must be a date in YYYY-MM-DD form") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(req.UserID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	bookingCode := req.BookingCode
	if bookingCode == constant.Empty {
		bookingCode = uuid.NewString()
	}

	if existing := guest.Bookings.Find(bookingCode); existing != nil {
		return res, failure.Conflict("bookingCode already exists") // nolint:wrapcheck
	}

	// Room number and price are frozen into the booking here. Later room
	// edits must not rewrite history.
	booking := guestModel.Booking{
		BookingCode:  bookingCode,
		RoomID:       room.ID,
		RoomNumber:   room.RoomNumber,
		Price:        room.Price,
		CheckInDate:  checkInDate,
		CheckOutDate: checkOutDate,
		IsCheckIn:    false,
		IsCheckOut:   false,
		Status:       guestModel.BookingStatusBooked,
	}

	updated := append(guestModel.BookingList{}, guest.Bookings...)
	updated = append(updated, booking)

	steps := []sagaStep{
		{
			name:     stepLedger,
			critical: true,
			run: func(ctx context.Context) error {
				return s.guestRepo.UpdateBookings(ctx, guest.ID, guest.Version, updated)
			},
		},
	}

	if s.cfg.App.Booking.LockRoomOnCreate {
		steps = append(steps, sagaStep{
			name:     stepRegistry,
			critical: true,
			run: func(ctx context.Context) error {
				return s.setRoomStatus(ctx, room.ID, roomModel.StatusBooked, guest.ID)
			},
		})
	}

	steps = append(steps, sagaStep{
		name: stepMirror,
		run: func(ctx context.Context) error {
			return s.admin.PatchBookingList(ctx, guest.ID, updated)
		},
	})

	if err = s.runSaga(ctx, bookingCode, steps); err != nil {
		return res, err
	}

	s.publishLifecycleEvent(ctx, "booking.created", bookingCode, guest.ID, room.ID)

	res.Bookings = make([]guestDto.BookingResponse, len(updated))
	for i, b := range updated {
		res.Bookings[i].FromModel(b)
	}

	return res, nil
}

func (s *serviceImpl) Transition(ctx context.Context, req dto.TransitionRequest) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.resolveGuest(ctx, req)
	if err != nil {
		return res, err
	}

	booking := guest.Bookings.Find(req.BookingCode)
	if booking == nil {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	updated, releaseRoom, err := s.applyAction(req.Action, *booking, guest.Bookings)
	if err != nil {
		return res, err
	}

	steps := []sagaStep{
		{
			name:     stepLedger,
			critical: true,
			run: func(ctx context.Context) error {
				return s.guestRepo.UpdateBookings(ctx, guest.ID, guest.Version, updated)
			},
		},
	}

	if releaseRoom {
		steps = append(steps, sagaStep{
			name:     stepRegistry,
			critical: true,
			run: func(ctx context.Context) error {
				return s.setRoomStatus(ctx, room.ID, roomModel.StatusAvailable, guest.ID)
			},
		})
	}

	steps = append(steps, sagaStep{
		name: stepMirror,
		run: func(ctx context.Context) error {
			return s.admin.PatchBookingList(ctx, guest.ID, updated)
		},
	})

	if err = s.runSaga(ctx, req.BookingCode, steps); err != nil {
		return res, err
	}

	s.publishLifecycleEvent(ctx, "booking."+req.Action, req.BookingCode, guest.ID, room.ID)

	res.BookingCode = req.BookingCode
	res.Action = req.Action
	res.RoomID = room.ID

	return res, nil
}

// applyAction enforces the date rules and returns the rewritten booking
// list plus whether the room goes back to available. Dates compare at
// calendar-day granularity in the application timezone.
func (s *serviceImpl) applyAction(action string, booking guestModel.Booking, bookings guestModel.BookingList) (guestModel.BookingList, bool, error) {
	today := timezone.Today()
	checkInDay := timezone.DateOnly(booking.CheckInDate)
	checkOutDay := timezone.DateOnly(booking.CheckOutDate)

	switch action {
	case dto.ActionCancel:
		// Cancelling is only allowed strictly before the check-in day.
		if !today.Before(checkInDay) {
			return nil, false, failure.UnprocessableEntity("cannot cancel a booking on or after the check-in date") // nolint:wrapcheck
		}

		return bookings.Remove(booking.BookingCode), true, nil

	case dto.ActionCheckIn:
		if today.Before(checkInDay) {
			return nil, false, failure.UnprocessableEntity("cannot check in before the check-in date") // nolint:wrapcheck
		}

		// Re-checking in is a no-op confirmation.
		booking.IsCheckIn = true

		return replaceBooking(bookings, booking), false, nil

	case dto.ActionCheckOut:
		if !booking.IsCheckIn {
			return nil, false, failure.UnprocessableEntity("cannot check out before checking in") // nolint:wrapcheck
		}

		if today.After(checkOutDay) {
			return nil, false, failure.UnprocessableEntity("cannot check out after the check-out date") // nolint:wrapcheck
		}

		booking.IsCheckOut = true

		return replaceBooking(bookings, booking), true, nil

	default:
		return nil, false, failure.BadRequestFromString("invalid action") // nolint:wrapcheck
	}
}

func (s *serviceImpl) resolveGuest(ctx context.Context, req dto.TransitionRequest) (guestModel.Guest, error) {
	var (
		guest guestModel.Guest
		err   error
	)

	if req.UserID != constant.Empty {
		guest, err = s.guestRepo.Get(ctx, shared.FilterByID(req.UserID, guestModel.FieldID, guestModel.TableName))
	} else {
		guest, err = s.guestRepo.GetByBookingCode(ctx, req.BookingCode)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return guest, nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, roomID, status, actor string) error {
	updatedFields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err := s.roomRepo.Update(ctx, updatedFields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

// queueReconciliation records a failed mirror write so an out-of-band
// consumer can replay it, instead of silently dropping the divergence.
func (s *serviceImpl) queueReconciliation(ctx context.Context, bookingCode, step string, cause error) {
	go func() {
		c := context.WithoutCancel(ctx)

		task := kafka.Message{
			Key: bookingCode,
			Value: map[string]any{
				"bookingCode": bookingCode,
				"step":        step,
				"reason":      cause.Error(),
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.MirrorReconcile, task); err != nil {
			log.Error().Err(err).Str("booking_code", bookingCode).Msg("failed to queue mirror reconciliation task")
		}
	}()
}

func (s *serviceImpl) publishLifecycleEvent(ctx context.Context, event, bookingCode, userID, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		msg := kafka.Message{
			Key: bookingCode,
			Value: map[string]any{
				"event":       event,
				"bookingCode": bookingCode,
				"userId":      userID,
				"roomId":      roomID,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, msg); err != nil {
			log.Warn().Err(err).Str("event", event).Msg("failed to publish booking lifecycle event")
		}
	}()
}

func replaceBooking(bookings guestModel.BookingList, booking guestModel.Booking) guestModel.BookingList {
	out := append(guestModel.BookingList{}, bookings...)

	for i := range out {
		if out[i].BookingCode == booking.BookingCode {
			out[i] = booking

			break
		}
	}

	return out
}
